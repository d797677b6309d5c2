// Package gldispatch provides the entry-point resolution and dispatch
// cache underneath a generated native graphics API binding.
//
// A graphics API exposes hundreds of named entry points whose addresses
// are only known once a native rendering context exists. This library
// stores the complete set of names in one packed table, resolves them in
// bulk through a context-supplied resolver, and caches the resulting
// addresses per binding set so that individual calls are a single indexed
// read with no allocation.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	gldispatch/          Root package with Addr, Resolver, Context and Caller contracts
//	├── nametable/       Immutable packed name table built once per API surface
//	├── binding/         Per-instance address cache and the bulk entry-point loader
//	├── dispatch/        Slot reads and capability queries for generated wrappers
//	├── gl/              Sample generated-style API surface over the dispatch front
//	├── wasmctx/         Software context backed by a wazero module's exports
//	├── platform/        OS shims exposing shared-library symbols as a Resolver
//	├── errors/          Structured error types distinguishing configuration,
//	│                    capability-absence and programming errors
//	└── cmd/glcaps/      Interactive capability inspector
//
// # Quick Start
//
// Build a table for an API surface, bind a set against the active
// context, and dispatch through it:
//
//	table := nametable.New(gl.Names())
//	set := binding.New(table)
//
//	if err := binding.Load(set, activeContext); err != nil {
//	    log.Fatal(err) // no active context
//	}
//
//	front := dispatch.New(set)
//	addr, err := front.Addr(gl.SlotClearColor)
//
// # Thread Safety
//
// Tables are immutable and safe to share. A Set's addresses are written
// only by Load under the owning set's lock; reads are lock-free atomic
// loads, so dispatch never blocks on a concurrent reload. Readers that
// overlap a Load may observe a mix of old and new slot values but never
// a torn address.
//
// # Unsupported Entry Points
//
// A resolved address of zero means the active context does not support
// that entry point. The dispatch front reports this lazily, when the
// function is actually called, as a capability-absence error distinct
// from configuration faults. Some native resolvers return small non-zero
// placeholder addresses for unsupported functions; install an AddrFilter
// at load time to squash the values your platform is known to emit.
package gldispatch
