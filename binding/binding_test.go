package binding

import (
	stderrors "errors"
	"sync"
	"testing"

	gldispatch "github.com/openbindings/gl-dispatch"
	"github.com/openbindings/gl-dispatch/errors"
	"github.com/openbindings/gl-dispatch/nametable"
)

// fakeContext wraps a resolver map: name -> address. Names absent from
// the map resolve to the unsupported sentinel.
type fakeContext struct {
	addrs map[string]gldispatch.Addr
}

func (c *fakeContext) ProcResolver() gldispatch.Resolver {
	return gldispatch.ResolverFunc(func(name []byte) gldispatch.Addr {
		return c.addrs[string(name[:len(name)-1])] // strip NUL
	})
}

// nilResolverContext claims to be a context but has no resolver.
type nilResolverContext struct{}

func (nilResolverContext) ProcResolver() gldispatch.Resolver { return nil }

func testTable() *nametable.Table {
	return nametable.New([]string{"glClear", "glFlush", "glGetError", "glViewport"})
}

func TestSet_FreshSlotsUnresolved(t *testing.T) {
	set := New(testTable())

	if set.IsLoaded() {
		t.Error("fresh set reports loaded")
	}
	for i := 0; i < set.Len(); i++ {
		if addr := set.Addr(i); addr != gldispatch.AddrNone {
			t.Errorf("Addr(%d) = %#x before load, want AddrNone", i, addr)
		}
	}
}

func TestLoad_SelectiveResolution(t *testing.T) {
	set := New(testTable())
	gc := &fakeContext{addrs: map[string]gldispatch.Addr{"glFlush": 0xCAFE}}

	if err := Load(set, gc); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if !set.IsLoaded() {
		t.Error("set not marked loaded")
	}

	slot, _ := set.Table().Lookup("glFlush")
	for i := 0; i < set.Len(); i++ {
		want := gldispatch.AddrNone
		if i == slot {
			want = 0xCAFE
		}
		if got := set.Addr(i); got != want {
			t.Errorf("Addr(%d) = %#x, want %#x", i, got, want)
		}
		if got := set.HasAddr(i); got != (i == slot) {
			t.Errorf("HasAddr(%d) = %v", i, got)
		}
	}
}

func TestLoad_NoContext(t *testing.T) {
	set := New(testTable())

	err := Load(set, nil)
	if !stderrors.Is(err, errors.NoContext("")) {
		t.Fatalf("Load(nil context) = %v, want no_context error", err)
	}

	err = Load(set, nilResolverContext{})
	if !stderrors.Is(err, errors.NoContext("")) {
		t.Fatalf("Load(nil resolver) = %v, want no_context error", err)
	}

	// Failure must not mutate anything.
	if set.IsLoaded() {
		t.Error("failed load marked the set loaded")
	}
	for i := 0; i < set.Len(); i++ {
		if set.Addr(i) != gldispatch.AddrNone {
			t.Errorf("failed load mutated slot %d", i)
		}
	}
}

func TestLoad_FailureDoesNotClobberPreviousLoad(t *testing.T) {
	set := New(testTable())
	gc := &fakeContext{addrs: map[string]gldispatch.Addr{"glClear": 0x1000}}

	if err := Load(set, gc); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if err := Load(set, nil); err == nil {
		t.Fatal("Load(nil) succeeded")
	}

	slot, _ := set.Table().Lookup("glClear")
	if set.Addr(slot) != 0x1000 {
		t.Error("failed reload clobbered previously cached address")
	}
}

func TestLoad_Idempotent(t *testing.T) {
	gc := &fakeContext{addrs: map[string]gldispatch.Addr{
		"glClear":    0x1000,
		"glGetError": 0x2000,
	}}

	once := New(testTable())
	if err := Load(once, gc); err != nil {
		t.Fatal(err)
	}

	twice := New(testTable())
	if err := Load(twice, gc); err != nil {
		t.Fatal(err)
	}
	if err := Load(twice, gc); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < once.Len(); i++ {
		if once.Addr(i) != twice.Addr(i) {
			t.Errorf("slot %d diverges after double load: %#x vs %#x", i, once.Addr(i), twice.Addr(i))
		}
	}
}

func TestLoad_Reload(t *testing.T) {
	set := New(testTable())

	if err := Load(set, &fakeContext{addrs: map[string]gldispatch.Addr{"glClear": 0x1000}}); err != nil {
		t.Fatal(err)
	}
	// Context switch: a different driver resolves a different surface.
	if err := Load(set, &fakeContext{addrs: map[string]gldispatch.Addr{"glFlush": 0x2000}}); err != nil {
		t.Fatal(err)
	}

	clear, _ := set.Table().Lookup("glClear")
	flush, _ := set.Table().Lookup("glFlush")
	if set.Addr(clear) != gldispatch.AddrNone {
		t.Error("stale address survived reload")
	}
	if set.Addr(flush) != 0x2000 {
		t.Error("reload did not pick up new context's address")
	}
}

func TestShared_ObservesOwnerLoad(t *testing.T) {
	owner := New(testTable())
	alias := Shared(owner)

	if alias.IsLoaded() {
		t.Error("alias of unloaded owner reports loaded")
	}

	gc := &fakeContext{addrs: map[string]gldispatch.Addr{"glViewport": 0xBEEF}}
	if err := Load(owner, gc); err != nil {
		t.Fatal(err)
	}

	if !alias.IsLoaded() {
		t.Error("alias does not observe owner's load")
	}
	for i := 0; i < owner.Len(); i++ {
		if owner.Addr(i) != alias.Addr(i) {
			t.Errorf("slot %d diverges between owner and alias", i)
		}
	}
}

func TestShared_PanicsOnNilOwner(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Shared(nil) did not panic")
		}
	}()
	Shared(nil)
}

func TestLoad_FilterApplied(t *testing.T) {
	set := New(testTable())
	// Resolver that returns a known-unreliable placeholder for glFlush.
	gc := &fakeContext{addrs: map[string]gldispatch.Addr{
		"glClear": 0x1000,
		"glFlush": 2,
	}}

	filter := func(name []byte, addr gldispatch.Addr) gldispatch.Addr {
		if addr <= 3 {
			return gldispatch.AddrNone
		}
		return addr
	}

	if err := Load(set, gc, WithFilter(filter)); err != nil {
		t.Fatal(err)
	}

	if !set.Supports("glClear") {
		t.Error("filter squashed a valid address")
	}
	if set.Supports("glFlush") {
		t.Error("placeholder address survived the filter")
	}
}

func TestSupports(t *testing.T) {
	set := New(testTable())
	gc := &fakeContext{addrs: map[string]gldispatch.Addr{"glClear": 0x1000}}

	if set.Supports("glClear") {
		t.Error("Supports true before load")
	}

	if err := Load(set, gc); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"glClear", true},
		{"glFlush", false},        // resolved to zero
		{"glCreateShader", false}, // not in the table at all
	}
	for _, tt := range tests {
		if got := set.Supports(tt.name); got != tt.want {
			t.Errorf("Supports(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAddr_PanicsOutOfRange(t *testing.T) {
	set := New(testTable())

	for _, i := range []int{-1, set.Len(), set.Len() + 10} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Addr(%d) did not panic", i)
				}
			}()
			set.Addr(i)
		}()
	}
}

// TestConcurrentReadsDuringLoad hammers reads from several goroutines
// while the set is repeatedly reloaded. Run with -race; the property is
// that reads never crash and only observe values some load wrote.
func TestConcurrentReadsDuringLoad(t *testing.T) {
	set := New(testTable())
	gcA := &fakeContext{addrs: map[string]gldispatch.Addr{"glClear": 0x1111, "glFlush": 0x2222}}
	gcB := &fakeContext{addrs: map[string]gldispatch.Addr{"glClear": 0x3333}}

	valid := map[gldispatch.Addr]bool{
		gldispatch.AddrNone: true,
		0x1111:              true,
		0x2222:              true,
		0x3333:              true,
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				for i := 0; i < set.Len(); i++ {
					if addr := set.Addr(i); !valid[addr] {
						t.Errorf("torn or foreign address %#x at slot %d", addr, i)
						return
					}
				}
			}
		}()
	}

	for n := 0; n < 50; n++ {
		gc := gcA
		if n%2 == 1 {
			gc = gcB
		}
		if err := Load(set, gc); err != nil {
			t.Fatal(err)
		}
	}
	close(stop)
	wg.Wait()
}

func BenchmarkAddr(b *testing.B) {
	set := New(testTable())
	gc := &fakeContext{addrs: map[string]gldispatch.Addr{"glClear": 0x1000}}
	if err := Load(set, gc); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = set.Addr(i % set.Len())
	}
}

func BenchmarkLoad(b *testing.B) {
	names := make([]string, 512)
	for i := range names {
		names[i] = "glEntry" + string(rune('A'+i%26)) + string(rune('a'+(i/26)%26))
	}
	set := New(nametable.New(names))
	gc := &fakeContext{addrs: map[string]gldispatch.Addr{names[3]: 0x1000}}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := Load(set, gc); err != nil {
			b.Fatal(err)
		}
	}
}
