package gldispatch

import "context"

// Addr is a resolved native entry-point address. The zero value means
// "unresolved" before a load completes and "unsupported by the active
// context" after.
type Addr uintptr

// AddrNone is the unresolved/unsupported sentinel.
const AddrNone Addr = 0

// IsValid reports whether the address refers to a resolved entry point.
func (a Addr) IsValid() bool { return a != AddrNone }

// Resolver maps an entry-point name to its native address for one
// rendering context. The name is a NUL-terminated view into the packed
// name table; implementations must not retain it past the call. A zero
// return means the context does not support the entry point.
//
// Some platform resolvers return small non-zero placeholders (1, 2) for
// unsupported functions instead of zero. The loader passes such values
// through unchanged; see AddrFilter.
type Resolver interface {
	Resolve(name []byte) Addr
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name []byte) Addr

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(name []byte) Addr { return f(name) }

// Context represents an active native rendering context. It is passed
// explicitly to load operations rather than read from process-global
// state so tests can inject a fake.
//
// ProcResolver returns nil when the context is not (or no longer)
// usable for resolution; the loader reports that as a configuration
// error.
type Context interface {
	ProcResolver() Resolver
}

// AddrFilter post-processes resolved addresses during a load. It exists
// for platforms whose resolvers emit unreliable placeholder values for
// unsupported entry points: return AddrNone to mark the entry point
// unsupported, or the address (possibly corrected) to keep it. The name
// is the same NUL-terminated table view handed to the Resolver.
type AddrFilter func(name []byte, addr Addr) Addr

// Caller invokes a resolved entry point. The core never calls through
// an address itself; consumers of the cache provide a Caller appropriate
// to where the addresses came from (a wasm function table, a cgo
// trampoline). Arguments and results use the raw 64-bit representation
// of the underlying ABI.
type Caller interface {
	Call(ctx context.Context, addr Addr, args ...uint64) ([]uint64, error)
}
