// Package binding implements the per-instance address cache for one API
// surface and the bulk loader that populates it.
//
// # Main Types
//
//   - Set: array of resolved addresses parallel to a nametable.Table,
//     either owning its storage or delegating to another Set
//   - Load: resolves every table slot through the active context's
//     resolver and fills the cache in one pass
//
// # Thread Safety
//
// Load holds the owning Set's lock for the whole walk; slot reads are
// lock-free atomic loads and may overlap a Load. A reader overlapping a
// Load can observe a mix of old and new addresses but never a torn one.
// Delegating Sets share the owner's storage and lock, so only the owner
// ever loads.
//
// # Example
//
//	set := binding.New(table)
//	if err := binding.Load(set, activeContext); err != nil {
//	    return err // no active context
//	}
//	addr := set.Addr(slot)
package binding
