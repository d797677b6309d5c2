// Package wasmctx adapts a wazero module into a rendering context for
// the binding layer: entry points resolve to the module's exported
// functions, and calls dispatch through wazero instead of native code.
//
// This is the software backend story. A GL-shaped wasm module (a
// rasterizer compiled to wasm, or a stub surface in tests) exports
// functions under the native entry-point names; Resolve hands back a
// dense index into the context's function table as the address, with
// zero kept as the unsupported sentinel like everywhere else. The same
// Context then serves as the gldispatch.Caller that invokes a resolved
// address.
//
// Addresses minted here are table indices, not machine pointers, so
// they are only meaningful to this Context's Call. That mirrors the
// native rule that resolved addresses must not be trusted across
// contexts.
package wasmctx
