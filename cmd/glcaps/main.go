package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"
	"golang.org/x/term"

	gldispatch "github.com/openbindings/gl-dispatch"
	"github.com/openbindings/gl-dispatch/binding"
	"github.com/openbindings/gl-dispatch/gl"
	"github.com/openbindings/gl-dispatch/nametable"
	"github.com/openbindings/gl-dispatch/platform"
	"github.com/openbindings/gl-dispatch/wasmctx"
)

func main() {
	var (
		libPath     = flag.String("lib", "", "Shared library to resolve against (e.g. libGL.so.1)")
		wasmPath    = flag.String("wasm", "", "Wasm module whose exports form the surface")
		namesPath   = flag.String("names", "", "File with one entry-point name per line (default: built-in GL sample surface)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		jsonOut     = flag.Bool("json", false, "Emit per-entry-point status as JSON")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *libPath == "" && *wasmPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: glcaps -lib <library> [-names file] [-json | -i]")
		fmt.Fprintln(os.Stderr, "       glcaps -wasm <file.wasm> [-names file] [-json | -i]")
		os.Exit(1)
	}

	if *jsonOut && *interactive {
		fmt.Fprintln(os.Stderr, "Error: -json and -i are mutually exclusive")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		binding.SetLogger(logger)
	}

	if *interactive && !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: -i requires a terminal")
		os.Exit(1)
	}

	if err := run(*libPath, *wasmPath, *namesPath, *jsonOut, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(libPath, wasmPath, namesPath string, jsonOut, interactive bool) error {
	table, err := loadTable(namesPath)
	if err != nil {
		return err
	}

	gc, source, cleanup, err := openContext(libPath, wasmPath)
	if err != nil {
		return err
	}
	defer cleanup()

	set := binding.New(table)
	if err := binding.Load(set, gc); err != nil {
		return fmt.Errorf("load entry points: %w", err)
	}

	if interactive {
		return runInteractive(set, gc, source)
	}
	if jsonOut {
		return writeJSON(os.Stdout, set, source)
	}
	return report(os.Stdout, set, source)
}

// openContext picks the address source. The returned cleanup is safe to
// call exactly once.
func openContext(libPath, wasmPath string) (gldispatch.Context, string, func(), error) {
	if libPath != "" {
		lib, err := platform.Open(libPath)
		if err != nil {
			return nil, "", nil, err
		}
		return lib, libPath, func() { lib.Close() }, nil
	}

	ctx := context.Background()
	data, err := os.ReadFile(wasmPath)
	if err != nil {
		return nil, "", nil, fmt.Errorf("read file: %w", err)
	}

	rt := wazero.NewRuntime(ctx)
	mod, err := rt.Instantiate(ctx, data)
	if err != nil {
		rt.Close(ctx)
		return nil, "", nil, fmt.Errorf("instantiate module: %w", err)
	}

	return wasmctx.New(mod), wasmPath, func() { rt.Close(ctx) }, nil
}

// loadTable reads a name list file, or falls back to the built-in GL
// sample surface.
func loadTable(path string) (*nametable.Table, error) {
	if path == "" {
		return gl.Table(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("names file %q is empty", path)
	}

	return nametable.New(names), nil
}

// capsEntry is one entry point's status in the JSON output.
type capsEntry struct {
	Name     string `json:"name"`
	Resolved bool   `json:"resolved"`
	Address  uint64 `json:"address,omitempty"`
}

// capsReport is the machine-readable form of a loaded binding set.
type capsReport struct {
	Source      string      `json:"source"`
	Total       int         `json:"total"`
	Resolved    int         `json:"resolved"`
	Unsupported int         `json:"unsupported"`
	Entries     []capsEntry `json:"entries"`
}

// buildReport snapshots every slot of the set.
func buildReport(set *binding.Set, source string) capsReport {
	table := set.Table()

	r := capsReport{
		Source:  source,
		Total:   table.Len(),
		Entries: make([]capsEntry, 0, table.Len()),
	}
	for i := 0; i < table.Len(); i++ {
		addr := set.Addr(i)
		e := capsEntry{
			Name:     table.Name(i),
			Resolved: addr.IsValid(),
			Address:  uint64(addr),
		}
		if e.Resolved {
			r.Resolved++
		} else {
			r.Unsupported++
		}
		r.Entries = append(r.Entries, e)
	}
	return r
}

func writeJSON(w io.Writer, set *binding.Set, source string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildReport(set, source))
}

func report(w io.Writer, set *binding.Set, source string) error {
	r := buildReport(set, source)

	fmt.Fprintf(w, "Source: %s\n", r.Source)
	fmt.Fprintf(w, "Entry points: %d\n", r.Total)
	fmt.Fprintf(w, "Resolved: %d\n", r.Resolved)
	fmt.Fprintf(w, "Unsupported: %d\n", r.Unsupported)

	if r.Unsupported > 0 {
		fmt.Fprintf(w, "\nUnsupported entry points:\n")
		for _, e := range r.Entries {
			if !e.Resolved {
				fmt.Fprintf(w, "  %s\n", e.Name)
			}
		}
	}

	return nil
}
