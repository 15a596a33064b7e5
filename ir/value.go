package ir

import "fmt"

// Value is a closed tagged union over the five netvent types. The zero
// Value is the integer 0, which is also the format's null. Scalar values
// are owned by value; a table-typed Value shares its Table with every
// copy of itself.
type Value struct {
	typ Type
	i   int32
	f   float32
	b   bool
	s   string
	t   *Table
}

func FromInt(v int32) Value {
	return Value{typ: IntType, i: v}
}

func FromFloat(v float32) Value {
	return Value{typ: FloatType, f: v}
}

func FromBool(v bool) Value {
	return Value{typ: BoolType, b: v}
}

func FromString(v string) Value {
	return Value{typ: StringType, s: v}
}

// FromTable wraps t in a Value. The Value aliases t; it does not copy.
// It panics if t is nil.
func FromTable(t *Table) Value {
	if t == nil {
		panic("ir: FromTable called with nil table")
	}
	return Value{typ: TableType, t: t}
}

// FromSlice builds an array-mode table value with indices assigned by
// position.
func FromSlice(vs []Value) Value {
	return FromTable(TableFromSlice(vs))
}

// FromMap builds a map-mode table value from m.
func FromMap(m map[Value]Value) Value {
	return FromTable(TableFromMap(m))
}

func (v Value) Type() Type { return v.typ }

func (v Value) IsInt() bool    { return v.typ == IntType }
func (v Value) IsFloat() bool  { return v.typ == FloatType }
func (v Value) IsBool() bool   { return v.typ == BoolType }
func (v Value) IsString() bool { return v.typ == StringType }
func (v Value) IsTable() bool  { return v.typ == TableType }

// The As accessors assume the caller has checked the type; calling the
// wrong accessor is a contract violation and panics.

func (v Value) AsInt() int32 {
	v.check(IntType)
	return v.i
}

func (v Value) AsFloat() float32 {
	v.check(FloatType)
	return v.f
}

func (v Value) AsBool() bool {
	v.check(BoolType)
	return v.b
}

func (v Value) AsString() string {
	v.check(StringType)
	return v.s
}

func (v Value) AsTable() *Table {
	v.check(TableType)
	return v.t
}

func (v Value) check(want Type) {
	if v.typ != want {
		panic(fmt.Sprintf("ir: As%s called on %s value", want, v.typ))
	}
}
