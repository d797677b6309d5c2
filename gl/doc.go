// Package gl is a deliberately small, generated-style slice of an
// OpenGL-shaped API surface over the dispatch core.
//
// A real binding generates one slot constant, one name-table entry and
// one typed wrapper per entry point, hundreds of times over; this
// package keeps just enough of that catalogue to exercise the whole
// pipeline (packed table, bulk load, slot dispatch, capability
// absence) without burying the interesting code under mechanical
// output.
//
// Wrappers return the library's structured errors: an unloaded set
// surfaces as a configuration error, an entry point the context lacks
// as a capability-absence error naming the function.
package gl
