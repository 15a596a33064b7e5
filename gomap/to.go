package gomap

import (
	"fmt"
	"reflect"

	"github.com/netvent-format/go-netvent/ir"
)

// Decode converts a netvent value into the Go value pointed to by dst.
// Array-mode tables decode into slices and arrays, map-mode tables into
// maps and structs, scalars into the corresponding Go kinds. Integers
// decode into float destinations; nothing else converts across types.
// Struct fields absent from the table keep their zero value, and table
// keys with no matching field are ignored.
func Decode(v ir.Value, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &UnmarshalError{Message: "destination must be a non-nil pointer"}
	}
	return decodeValue(v, rv.Elem(), "")
}

func decodeValue(v ir.Value, dst reflect.Value, path string) error {
	switch dst.Type() {
	case valueType:
		dst.Set(reflect.ValueOf(v))
		return nil
	case tableType:
		if !v.IsTable() {
			return typeMismatch(v, dst, path)
		}
		dst.Set(reflect.ValueOf(v.AsTable()))
		return nil
	}

	switch dst.Kind() {
	case reflect.Pointer:
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return decodeValue(v, dst.Elem(), path)
	case reflect.Interface:
		if dst.NumMethod() != 0 {
			return typeMismatch(v, dst, path)
		}
		av, err := toAny(v, path)
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(av))
		return nil
	case reflect.Bool:
		if !v.IsBool() {
			return typeMismatch(v, dst, path)
		}
		dst.SetBool(v.AsBool())
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !v.IsInt() {
			return typeMismatch(v, dst, path)
		}
		i := int64(v.AsInt())
		if dst.OverflowInt(i) {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("%d overflows %s", i, dst.Type())}
		}
		dst.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !v.IsInt() {
			return typeMismatch(v, dst, path)
		}
		i := v.AsInt()
		if i < 0 || dst.OverflowUint(uint64(i)) {
			return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("%d overflows %s", i, dst.Type())}
		}
		dst.SetUint(uint64(i))
		return nil
	case reflect.Float32, reflect.Float64:
		switch {
		case v.IsFloat():
			dst.SetFloat(float64(v.AsFloat()))
		case v.IsInt():
			dst.SetFloat(float64(v.AsInt()))
		default:
			return typeMismatch(v, dst, path)
		}
		return nil
	case reflect.String:
		if !v.IsString() {
			return typeMismatch(v, dst, path)
		}
		dst.SetString(v.AsString())
		return nil
	case reflect.Slice:
		return decodeSlice(v, dst, path)
	case reflect.Array:
		return decodeArray(v, dst, path)
	case reflect.Map:
		return decodeMap(v, dst, path)
	case reflect.Struct:
		return decodeStruct(v, dst, path)
	}
	return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("unsupported type %s", dst.Type())}
}

func decodeSlice(v ir.Value, dst reflect.Value, path string) error {
	if !v.IsTable() || !v.AsTable().IsArray() {
		return typeMismatch(v, dst, path)
	}
	vs := v.AsTable().Slice()
	out := reflect.MakeSlice(dst.Type(), len(vs), len(vs))
	for i, ev := range vs {
		if err := decodeValue(ev, out.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	dst.Set(out)
	return nil
}

func decodeArray(v ir.Value, dst reflect.Value, path string) error {
	if !v.IsTable() || !v.AsTable().IsArray() {
		return typeMismatch(v, dst, path)
	}
	vs := v.AsTable().Slice()
	if len(vs) != dst.Len() {
		return &UnmarshalError{
			FieldPath: path,
			Message:   fmt.Sprintf("array length %d does not fit %s", len(vs), dst.Type()),
		}
	}
	for i, ev := range vs {
		if err := decodeValue(ev, dst.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func decodeMap(v ir.Value, dst reflect.Value, path string) error {
	if !v.IsTable() {
		return typeMismatch(v, dst, path)
	}
	out := reflect.MakeMap(dst.Type())
	for _, kv := range v.AsTable().Entries() {
		key := reflect.New(dst.Type().Key()).Elem()
		if err := decodeValue(kv.Key, key, joinPath(path, "<key>")); err != nil {
			return err
		}
		val := reflect.New(dst.Type().Elem()).Elem()
		if err := decodeValue(kv.Val, val, joinPath(path, fmt.Sprint(key.Interface()))); err != nil {
			return err
		}
		out.SetMapIndex(key, val)
	}
	dst.Set(out)
	return nil
}

func decodeStruct(v ir.Value, dst reflect.Value, path string) error {
	if !v.IsTable() {
		return typeMismatch(v, dst, path)
	}
	tbl := v.AsTable()
	rt := dst.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name, ok := fieldName(sf)
		if !ok {
			continue
		}
		fv, ok := tbl.Get(ir.FromString(name))
		if !ok {
			continue
		}
		if err := decodeValue(fv, dst.Field(i), joinPath(path, name)); err != nil {
			return err
		}
	}
	return nil
}

// toAny maps a value onto untyped Go data for interface destinations.
// Map-mode tables become map[any]any, so their keys must be leaf values:
// a table-typed key would produce an unhashable Go map key.
func toAny(v ir.Value, path string) (any, error) {
	switch v.Type() {
	case ir.IntType:
		return v.AsInt(), nil
	case ir.FloatType:
		return v.AsFloat(), nil
	case ir.BoolType:
		return v.AsBool(), nil
	case ir.StringType:
		return v.AsString(), nil
	case ir.TableType:
		t := v.AsTable()
		if t.IsArray() {
			out := make([]any, 0, t.Len())
			for i, ev := range t.Slice() {
				av, err := toAny(ev, fmt.Sprintf("%s[%d]", path, i))
				if err != nil {
					return nil, err
				}
				out = append(out, av)
			}
			return out, nil
		}
		out := make(map[any]any, t.Len())
		for _, kv := range t.Entries() {
			if !kv.Key.Type().IsLeaf() {
				return nil, &UnmarshalError{
					FieldPath: joinPath(path, "<key>"),
					Message:   fmt.Sprintf("cannot use %s key as an untyped map key", kv.Key.Type()),
				}
			}
			key, err := toAny(kv.Key, joinPath(path, "<key>"))
			if err != nil {
				return nil, err
			}
			val, err := toAny(kv.Val, joinPath(path, fmt.Sprint(key)))
			if err != nil {
				return nil, err
			}
			out[key] = val
		}
		return out, nil
	}
	return nil, nil
}

func typeMismatch(v ir.Value, dst reflect.Value, path string) error {
	return &UnmarshalError{
		FieldPath: path,
		Message:   fmt.Sprintf("cannot decode %s value into %s", v.Type(), dst.Type()),
	}
}
