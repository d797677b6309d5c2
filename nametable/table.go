package nametable

import "fmt"

// Table is the immutable packed name table for one API surface.
// Safe for concurrent use.
type Table struct {
	names   []byte
	offsets []int32
	slots   map[string]int
}

// New builds a Table from the ordered, duplicate-free list of entry-point
// names. It panics on an empty or duplicate name: the list is fixed at
// compile time, so either is a construction bug, not a runtime condition.
func New(names []string) *Table {
	size := 0
	for _, n := range names {
		size += len(n) + 1 // NUL terminator
	}

	t := &Table{
		names:   make([]byte, 0, size),
		offsets: make([]int32, 0, len(names)),
		slots:   make(map[string]int, len(names)),
	}

	for i, n := range names {
		if n == "" {
			panic(fmt.Sprintf("nametable: empty name at slot %d", i))
		}
		if prev, dup := t.slots[n]; dup {
			panic(fmt.Sprintf("nametable: duplicate name %q at slots %d and %d", n, prev, i))
		}
		t.slots[n] = i
		t.offsets = append(t.offsets, int32(len(t.names)))
		t.names = append(t.names, n...)
		t.names = append(t.names, 0)
	}

	return t
}

// Len returns the number of entry points in the table.
func (t *Table) Len() int {
	return len(t.offsets)
}

// Offset returns the byte offset of slot i's name in the packed buffer.
func (t *Table) Offset(i int) int {
	t.check(i)
	return int(t.offsets[i])
}

// NameBytes returns slot i's name as a NUL-terminated view into the
// packed buffer. The returned slice aliases the table and must not be
// modified; it is the form resolvers consume, so a lookup allocates
// nothing.
func (t *Table) NameBytes(i int) []byte {
	t.check(i)
	start := int(t.offsets[i])
	end := t.end(i)
	return t.names[start : end+1 : end+1]
}

// Name returns slot i's name as a string.
func (t *Table) Name(i int) string {
	t.check(i)
	return string(t.names[int(t.offsets[i]):t.end(i)])
}

// Lookup returns the slot for a name, or false if the table does not
// contain it.
func (t *Table) Lookup(name string) (int, bool) {
	i, ok := t.slots[name]
	return i, ok
}

// Size returns the packed buffer length in bytes, terminators included.
func (t *Table) Size() int {
	return len(t.names)
}

// end returns the index of slot i's NUL terminator.
func (t *Table) end(i int) int {
	if i+1 < len(t.offsets) {
		return int(t.offsets[i+1]) - 1
	}
	return len(t.names) - 1
}

func (t *Table) check(i int) {
	if i < 0 || i >= len(t.offsets) {
		panic(fmt.Sprintf("nametable: slot %d out of range (table length %d)", i, len(t.offsets)))
	}
}
