package dispatch

import (
	gldispatch "github.com/openbindings/gl-dispatch"
	"github.com/openbindings/gl-dispatch/binding"
	"github.com/openbindings/gl-dispatch/errors"
)

// Front exposes a binding set to generated wrapper code. Safe for
// concurrent use; every method is a lock-free read against the set.
type Front struct {
	set *binding.Set
}

// New creates a Front over the given set.
func New(set *binding.Set) *Front {
	return &Front{set: set}
}

// Set returns the underlying binding set.
func (f *Front) Set() *binding.Set {
	return f.set
}

// Addr returns the resolved address for slot i.
//
// It fails with a not_loaded configuration error if no load has
// completed on the set, and with an unsupported capability error naming
// the entry point if the slot resolved to zero. Panics if i is out of
// range, as the slot constants are generated alongside the table.
func (f *Front) Addr(i int) (gldispatch.Addr, error) {
	addr := f.set.Addr(i)
	if addr.IsValid() {
		return addr, nil
	}
	name := f.set.Table().Name(i)
	if !f.set.IsLoaded() {
		return gldispatch.AddrNone, errors.NotLoaded(name)
	}
	return gldispatch.AddrNone, errors.Unsupported(name)
}

// Require returns the slot for an entry-point name, failing with the
// same taxonomy as Addr when the name is unavailable. Diagnostic and
// capability-probing code uses it; generated wrappers use their slot
// constants directly.
func (f *Front) Require(name string) (int, error) {
	i, ok := f.set.Table().Lookup(name)
	if !ok {
		return 0, errors.Unsupported(name)
	}
	if _, err := f.Addr(i); err != nil {
		return 0, err
	}
	return i, nil
}

// Supports reports whether the named entry point is available in the
// active context. False before any load completes.
func (f *Front) Supports(name string) bool {
	return f.set.Supports(name)
}
