package ir

import "fmt"

// Type identifies the active member of a Value. The declaration order is
// load-bearing: Compare ranks values of different types by Type order.
type Type int

const (
	IntType Type = iota
	FloatType
	BoolType
	StringType
	TableType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		IntType:    "Int",
		FloatType:  "Float",
		BoolType:   "Bool",
		StringType: "String",
		TableType:  "Table",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Int":    IntType,
		"Float":  FloatType,
		"Bool":   BoolType,
		"String": StringType,
		"Table":  TableType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		IntType,
		FloatType,
		BoolType,
		StringType,
		TableType,
	}
}

func (t Type) IsLeaf() bool {
	return t != TableType
}
