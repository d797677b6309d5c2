// Package platform supplies raw entry-point addresses from operating
// system shared libraries. It contains no resolution or caching logic;
// it only turns a loaded library into a gldispatch.Context whose
// resolver is the OS symbol lookup (dlsym on unix, GetProcAddress on
// windows).
//
// The unix lookup passes the packed table's NUL-terminated name bytes
// straight to dlsym, so bulk loading an API surface performs no string
// conversion per entry point.
//
// Note that a shared library is the simplest address source: GL
// implementations additionally gate extension symbols behind
// context-specific lookups (glXGetProcAddress, wglGetProcAddress, and
// friends). Wire those the same way, as a Resolver over the opaque OS
// call; they are deliberately outside this package.
package platform
