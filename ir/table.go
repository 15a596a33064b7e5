package ir

import "slices"

// Table is an ordered key->value mapping keyed by Value, kept sorted in
// Compare order. A table built from a slice is in array mode: its keys are
// the implicit positions 0..n-1 and it serializes without keys.
//
// Tables are shared, mutable state: every Value wrapping a Table aliases
// the same underlying entries. The package provides no locking; callers
// mutating a shared table from more than one goroutine must synchronize
// externally.
type Table struct {
	// entries are heap-allocated so that pointers handed out by At stay
	// valid while later inserts reslice entries.
	entries []*tableEntry
	isArray bool
}

type tableEntry struct {
	key Value
	val Value
}

// KeyVal is one entry of a map-mode table snapshot.
type KeyVal struct {
	Key Value
	Val Value
}

// NewTable returns an empty map-mode table.
func NewTable() *Table {
	return &Table{}
}

// TableFromMap builds a map-mode table from m. Entry order follows the
// Value order of the keys, not map iteration order.
func TableFromMap(m map[Value]Value) *Table {
	t := &Table{}
	for k, v := range m {
		t.Put(k, v)
	}
	return t
}

// TableFromSlice builds an array-mode table whose keys are the positions
// of vs in input order.
func TableFromSlice(vs []Value) *Table {
	t := &Table{isArray: true}
	t.entries = make([]*tableEntry, len(vs))
	for i, v := range vs {
		t.entries[i] = &tableEntry{key: FromInt(int32(i)), val: v}
	}
	return t
}

// IsArray reports whether the table is in array mode.
func (t *Table) IsArray() bool { return t.isArray }

func (t *Table) Len() int { return len(t.entries) }

func (t *Table) search(key Value) (int, bool) {
	return slices.BinarySearchFunc(t.entries, key, func(e *tableEntry, k Value) int {
		return Compare(e.key, k)
	})
}

// At returns a mutable reference to the value stored under key, inserting
// a default Value (the integer 0) first if the key is absent. The pointer
// stays valid across later inserts but aliases the table's state: writes
// through it are visible to every holder of the table.
func (t *Table) At(key Value) *Value {
	i, ok := t.search(key)
	if !ok {
		t.entries = slices.Insert(t.entries, i, &tableEntry{key: key})
	}
	return &t.entries[i].val
}

// Get looks up key without mutating the table.
func (t *Table) Get(key Value) (Value, bool) {
	i, ok := t.search(key)
	if !ok {
		return Value{}, false
	}
	return t.entries[i].val, true
}

// Put sets the value stored under key.
func (t *Table) Put(key, val Value) {
	*t.At(key) = val
}

// Append adds v at the next free index of an array-mode table. It panics
// on a map-mode table.
func (t *Table) Append(v Value) {
	if !t.isArray {
		panic("ir: Append on map-mode table")
	}
	t.entries = append(t.entries, &tableEntry{key: FromInt(int32(len(t.entries))), val: v})
}

// Slice returns the array-mode snapshot: values in index order. It returns
// nil for a map-mode table.
func (t *Table) Slice() []Value {
	if !t.isArray {
		return nil
	}
	vs := make([]Value, len(t.entries))
	for i, e := range t.entries {
		vs[i] = e.val
	}
	return vs
}

// Entries returns the full ordered mapping snapshot, table keys included,
// in Value key order.
func (t *Table) Entries() []KeyVal {
	kvs := make([]KeyVal, len(t.entries))
	for i, e := range t.entries {
		kvs[i] = KeyVal{Key: e.key, Val: e.val}
	}
	return kvs
}
