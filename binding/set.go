package binding

import (
	"sync"
	"sync/atomic"

	gldispatch "github.com/openbindings/gl-dispatch"
	"github.com/openbindings/gl-dispatch/errors"
	"github.com/openbindings/gl-dispatch/nametable"
)

// store is the storage actually holding resolved addresses. Owned Sets
// allocate one; delegating Sets alias the owner's. The mutex is the
// single synchronization token for the whole delegation group.
type store struct {
	table  *nametable.Table
	addrs  []uintptr
	loaded atomic.Bool
	mu     sync.Mutex
}

// Set caches resolved entry-point addresses for one API surface. Every
// slot starts at the unresolved sentinel; after a completed Load, a zero
// slot means the active context does not support that entry point.
//
// Reads are safe from any goroutine at any time, including while a Load
// is in progress on another goroutine.
type Set struct {
	s *store
}

// New creates a Set with its own private cache, sized to the table.
func New(t *nametable.Table) *Set {
	return &Set{s: &store{
		table: t,
		addrs: make([]uintptr, t.Len()),
	}}
}

// Shared creates a Set delegating to owner's cache. Both observe the
// same resolution results; only the owner should be passed to Load.
// Used when one API surface aliases another (a superset profile reusing
// the base surface's resolution). Panics on a nil owner.
func Shared(owner *Set) *Set {
	if owner == nil || owner.s == nil {
		panic("binding: Shared called with nil owner")
	}
	return &Set{s: owner.s}
}

// Table returns the name table this Set was built from.
func (s *Set) Table() *nametable.Table {
	return s.s.table
}

// Len returns the number of slots, equal to the table length.
func (s *Set) Len() int {
	return len(s.s.addrs)
}

// Addr returns the cached address for slot i. It never blocks: the read
// is a single atomic load. Before any Load completes it returns
// gldispatch.AddrNone for every slot. Panics if i is out of range.
func (s *Set) Addr(i int) gldispatch.Addr {
	if i < 0 || i >= len(s.s.addrs) {
		panic(errors.OutOfRangeMessage(i, len(s.s.addrs)))
	}
	return gldispatch.Addr(atomic.LoadUintptr(&s.s.addrs[i]))
}

// HasAddr reports whether slot i holds a usable address. Panics if i
// is out of range.
func (s *Set) HasAddr(i int) bool {
	return s.Addr(i) != gldispatch.AddrNone
}

// IsLoaded reports whether a Load has completed on this Set (or its
// delegation owner). It distinguishes "slot is zero because nothing was
// ever resolved" from "slot is zero because the context lacks the
// function".
func (s *Set) IsLoaded() bool {
	return s.s.loaded.Load()
}

// Supports reports whether the named entry point resolved to a usable
// address. It is the capability check behind "is function X available
// in the active context": false before any Load, false for names not in
// the table, false for confirmed-unsupported entry points.
func (s *Set) Supports(name string) bool {
	if !s.s.loaded.Load() {
		return false
	}
	i, ok := s.s.table.Lookup(name)
	if !ok {
		return false
	}
	return atomic.LoadUintptr(&s.s.addrs[i]) != 0
}

// setAddr writes slot i. Loader-only; the caller must hold s.s.mu.
func (s *Set) setAddr(i int, addr gldispatch.Addr) {
	if i < 0 || i >= len(s.s.addrs) {
		panic(errors.OutOfRangeMessage(i, len(s.s.addrs)))
	}
	atomic.StoreUintptr(&s.s.addrs[i], uintptr(addr))
}
