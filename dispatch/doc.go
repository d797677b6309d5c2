// Package dispatch is the read side of the binding cache: the slot
// lookups a generated wrapper performs on every call, plus capability
// queries for feature-detection code.
//
// The front distinguishes two zero-address situations the cache itself
// cannot tell apart at the slot level:
//
//   - the set was never loaded: a configuration error, the process
//     skipped its initialization step;
//   - the set is loaded and the slot is zero: the active context
//     genuinely lacks that entry point, reported as a capability-absence error
//     naming the entry point, so callers can degrade gracefully.
//
// The front does not validate non-zero addresses. Platforms whose
// resolvers emit placeholder values handle that with an AddrFilter at
// load time or extra checks in the wrapper layer.
package dispatch
