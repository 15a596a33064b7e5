package encode

import (
	"io"
	"strconv"

	"github.com/netvent-format/go-netvent/ir"
)

type EncState struct {
	pretty bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the canonical text form of v to w.
//
// Int encodes as decimal digits, Float as fixed one-decimal, Bool as
// true/false, String wrapped in double quotes with no escaping (a string
// containing '"' or "//" is not round-trippable; that is a documented
// limitation of the format), and tables as bracketed element lists with
// pairs in key order and no trailing comma.
func Encode(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(v, w, es)
}

func encode(v ir.Value, w io.Writer, es *EncState) error {
	switch v.Type() {
	case ir.IntType:
		return writeColored(w, es, v.Type(), ValueColor, strconv.FormatInt(int64(v.AsInt()), 10))
	case ir.FloatType:
		return writeColored(w, es, v.Type(), ValueColor, strconv.FormatFloat(float64(v.AsFloat()), 'f', 1, 32))
	case ir.BoolType:
		return writeColored(w, es, v.Type(), ValueColor, strconv.FormatBool(v.AsBool()))
	case ir.StringType:
		return writeColored(w, es, v.Type(), ValueColor, `"`+v.AsString()+`"`)
	case ir.TableType:
		return encodeTable(v.AsTable(), w, es)
	}
	return nil
}

func encodeTable(t *ir.Table, w io.Writer, es *EncState) error {
	open, end := "{", "}"
	if t.IsArray() {
		open, end = "[", "]"
	}
	if err := writeColored(w, es, ir.TableType, SepColor, open); err != nil {
		return err
	}
	sep := ","
	if es.pretty {
		sep = ", "
	}
	for i, kv := range t.Entries() {
		if i > 0 {
			if err := writeColored(w, es, ir.TableType, SepColor, sep); err != nil {
				return err
			}
		}
		if !t.IsArray() {
			if err := encodeKey(kv.Key, w, es); err != nil {
				return err
			}
			eq := "="
			if es.pretty {
				eq = " = "
			}
			if err := writeColored(w, es, ir.TableType, SepColor, eq); err != nil {
				return err
			}
		}
		if err := encode(kv.Val, w, es); err != nil {
			return err
		}
	}
	return writeColored(w, es, ir.TableType, SepColor, end)
}

func encodeKey(k ir.Value, w io.Writer, es *EncState) error {
	// keys render exactly like values, only colored as fields
	if es.Color == nil {
		return encode(k, w, es)
	}
	keyES := &EncState{
		pretty: es.pretty,
		Color: func(t ir.Type, _ ColorAttr, s string) string {
			return es.Color(t, FieldColor, s)
		},
	}
	return encode(k, w, keyES)
}

func writeColored(w io.Writer, es *EncState, t ir.Type, attr ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, attr, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
