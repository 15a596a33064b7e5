package ir

import (
	"cmp"
	"reflect"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Values of different types order by Type rank. Within a type, scalars
// order naturally. Table-typed values order by identity: two values
// aliasing the same Table compare equal, and distinct tables have an
// unspecified but stable relative order, regardless of content.
func Compare(a, b Value) int {
	if a.typ != b.typ {
		return cmp.Compare(a.typ, b.typ)
	}
	switch a.typ {
	case IntType:
		return cmp.Compare(a.i, b.i)
	case FloatType:
		return cmp.Compare(a.f, b.f)
	case BoolType:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case StringType:
		return strings.Compare(a.s, b.s)
	case TableType:
		return cmp.Compare(tableID(a.t), tableID(b.t))
	}
	return 0
}

// Equal reports whether a and b hold equal content, with the same
// identity rule for tables as Compare.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

// tableID gives each table a stable identity for ordering. The address is
// as good as any total order here since the relative order of distinct
// tables is unspecified.
func tableID(t *Table) uintptr {
	return reflect.ValueOf(t).Pointer()
}
