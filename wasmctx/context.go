package wasmctx

import (
	"context"
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero/api"

	gldispatch "github.com/openbindings/gl-dispatch"
)

// Context is a software rendering context backed by a wazero module's
// exports. It implements gldispatch.Context and gldispatch.Caller.
// Safe for concurrent use.
type Context struct {
	mod api.Module

	mu    sync.Mutex
	fns   []api.Function             // fns[addr-1] = resolved function
	addrs map[string]gldispatch.Addr // name -> minted address
}

// New wraps an instantiated wazero module. The module's exported
// function names are the entry-point names the context supports.
func New(mod api.Module) *Context {
	return &Context{
		mod:   mod,
		addrs: make(map[string]gldispatch.Addr),
	}
}

// ProcResolver implements gldispatch.Context. It returns nil once the
// underlying module has been closed, which the loader reports as a
// missing context.
func (c *Context) ProcResolver() gldispatch.Resolver {
	if c.mod == nil || c.mod.IsClosed() {
		return nil
	}
	return gldispatch.ResolverFunc(c.resolve)
}

func (c *Context) resolve(name []byte) gldispatch.Addr {
	export := string(name[:len(name)-1]) // strip NUL

	c.mu.Lock()
	defer c.mu.Unlock()

	if addr, ok := c.addrs[export]; ok {
		return addr
	}

	fn := c.mod.ExportedFunction(export)
	if fn == nil {
		c.addrs[export] = gldispatch.AddrNone
		return gldispatch.AddrNone
	}

	c.fns = append(c.fns, fn)
	addr := gldispatch.Addr(len(c.fns)) // 1-based, 0 stays the sentinel
	c.addrs[export] = addr
	return addr
}

// Call implements gldispatch.Caller by invoking the wazero function the
// address was minted for.
func (c *Context) Call(ctx context.Context, addr gldispatch.Addr, args ...uint64) ([]uint64, error) {
	c.mu.Lock()
	var fn api.Function
	if addr >= 1 && int(addr) <= len(c.fns) {
		fn = c.fns[addr-1]
	}
	c.mu.Unlock()

	if fn == nil {
		return nil, fmt.Errorf("wasmctx: no function at address %#x", uintptr(addr))
	}
	return fn.Call(ctx, args...)
}
