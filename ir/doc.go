// Package ir provides the value model for the netvent format.
//
// # Overview
//
// A netvent document is a tree of values. The package defines two types:
//
//   - Value: a closed tagged union over int, float, bool, string, and table
//   - Table: an ordered key->value mapping that can also represent a dense
//     array
//
// Values are small and copied by value. A table-typed Value holds a shared
// reference to its Table: copying the Value aliases the same Table, and
// mutation through any alias is visible to all holders.
//
// # Creating Values
//
// Use constructor functions to create values:
//
//	v := ir.FromString("hello")
//	n := ir.FromInt(42)
//	b := ir.FromBool(true)
//	arr := ir.FromSlice([]ir.Value{ir.FromInt(1), ir.FromInt(2)})
//	obj := ir.FromTable(ir.NewTable())
//
// The zero Value is the integer 0; the format has no distinct null.
//
// # Ordering
//
// Values are totally ordered by Compare: first by type (Int < Float < Bool <
// String < Table), then by natural order within a type. Two table-typed
// values compare by identity, not content: structurally equal tables built
// separately are unequal and have an unspecified (but stable) relative
// order. Table iteration and serialization follow this order, so encoded
// objects are always key-sorted.
//
// # Related Packages
//
//   - github.com/netvent-format/go-netvent/parse - Parse text to values
//   - github.com/netvent-format/go-netvent/encode - Encode values to text
package ir
