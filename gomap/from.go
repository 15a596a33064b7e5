package gomap

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/netvent-format/go-netvent/ir"
)

var (
	valueType = reflect.TypeOf(ir.Value{})
	tableType = reflect.TypeOf((*ir.Table)(nil))
)

// Encode converts a Go value to a netvent value. Scalars map onto the
// value types, slices and arrays onto array-mode tables, maps and structs
// onto map-mode tables. A nil pointer or interface encodes as the
// format's null, the integer 0.
func Encode(v any) (ir.Value, error) {
	return encodeValue(reflect.ValueOf(v), "")
}

func encodeValue(rv reflect.Value, path string) (ir.Value, error) {
	if !rv.IsValid() {
		return ir.Value{}, nil
	}
	switch rv.Type() {
	case valueType:
		return rv.Interface().(ir.Value), nil
	case tableType:
		if rv.IsNil() {
			return ir.Value{}, nil
		}
		return ir.FromTable(rv.Interface().(*ir.Table)), nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ir.Value{}, nil
		}
		return encodeValue(rv.Elem(), path)
	case reflect.Bool:
		return ir.FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i < math.MinInt32 || i > math.MaxInt32 {
			return ir.Value{}, &MarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("%d overflows the 32-bit integer range", i),
			}
		}
		return ir.FromInt(int32(i)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt32 {
			return ir.Value{}, &MarshalError{
				FieldPath: path,
				Message:   fmt.Sprintf("%d overflows the 32-bit integer range", u),
			}
		}
		return ir.FromInt(int32(u)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(float32(rv.Float())), nil
	case reflect.String:
		return ir.FromString(rv.String()), nil
	case reflect.Slice, reflect.Array:
		return encodeSlice(rv, path)
	case reflect.Map:
		return encodeMap(rv, path)
	case reflect.Struct:
		return encodeStruct(rv, path)
	}
	return ir.Value{}, &MarshalError{
		FieldPath: path,
		Message:   fmt.Sprintf("unsupported type %s", rv.Type()),
	}
}

func encodeSlice(rv reflect.Value, path string) (ir.Value, error) {
	t := ir.TableFromSlice(nil)
	for i := 0; i < rv.Len(); i++ {
		ev, err := encodeValue(rv.Index(i), fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return ir.Value{}, err
		}
		t.Append(ev)
	}
	return ir.FromTable(t), nil
}

func encodeMap(rv reflect.Value, path string) (ir.Value, error) {
	t := ir.NewTable()
	iter := rv.MapRange()
	for iter.Next() {
		key, err := encodeValue(iter.Key(), path)
		if err != nil {
			return ir.Value{}, err
		}
		val, err := encodeValue(iter.Value(), joinPath(path, fmt.Sprint(iter.Key().Interface())))
		if err != nil {
			return ir.Value{}, err
		}
		t.Put(key, val)
	}
	return ir.FromTable(t), nil
}

func encodeStruct(rv reflect.Value, path string) (ir.Value, error) {
	t := ir.NewTable()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name, ok := fieldName(sf)
		if !ok {
			continue
		}
		fv, err := encodeValue(rv.Field(i), joinPath(path, name))
		if err != nil {
			return ir.Value{}, err
		}
		t.Put(ir.FromString(name), fv)
	}
	return ir.FromTable(t), nil
}

// fieldName resolves a struct field's key, honoring the netvent tag.
// Unexported fields and fields tagged "-" are skipped.
func fieldName(sf reflect.StructField) (string, bool) {
	if sf.PkgPath != "" {
		return "", false
	}
	tag := sf.Tag.Get("netvent")
	if tag == "-" {
		return "", false
	}
	if tag != "" {
		// allow future tag options after a comma
		if i := strings.IndexByte(tag, ','); i >= 0 {
			tag = tag[:i]
		}
		if tag != "" {
			return tag, true
		}
	}
	return sf.Name, true
}

func joinPath(path, elem string) string {
	if path == "" {
		return elem
	}
	return path + "." + elem
}
