// Package nametable stores the entry-point names of one API surface in
// a single packed byte buffer with a parallel offset index.
//
// A Table is built once at initialization from the statically known name
// list and is immutable afterwards; every binding set for the same API
// surface shares one Table by reference. Packing all names back-to-back,
// each NUL-terminated, lets a resolver read a name directly out of the
// buffer by offset without any per-lookup string construction.
//
// Layout for the list ["glClear", "glFlush"]:
//
//	names:   g l C l e a r \0 g l F l u s h \0
//	offsets: 0 8
//
// Construction is deterministic: the same input order always produces
// identical bytes.
package nametable
