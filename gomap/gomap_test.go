package gomap

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/netvent-format/go-netvent/encode"
	"github.com/netvent-format/go-netvent/ir"
	"github.com/netvent-format/go-netvent/parse"
)

type shot struct {
	X         int32   `netvent:"x"`
	Y         float32 `netvent:"y"`
	GunActive bool    `netvent:"gun_active"`
	Player    string  `netvent:"player_name"`
	internal  int
	Skipped   string `netvent:"-"`
}

func TestEncodeStruct(t *testing.T) {
	v, err := Encode(shot{X: 10, Y: 0.5, GunActive: true, Player: "this person", internal: 9, Skipped: "no"})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"gun_active"=true,"player_name"="this person","x"=10,"y"=0.5}`
	if got := encode.MustString(v); got != want {
		t.Errorf("encoded = %q, want %q", got, want)
	}
}

func TestStructRoundTrip(t *testing.T) {
	in := shot{X: -3, Y: 1.5, GunActive: false, Player: "p1"}
	v, err := Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	var out shot
	if err := Decode(v, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out, cmp.AllowUnexported(shot{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		out  string
	}{
		{"nil", nil, "0"},
		{"bool", true, "true"},
		{"int", 7, "7"},
		{"int64", int64(1 << 20), "1048576"},
		{"uint8", uint8(255), "255"},
		{"float64", 2.25, "2.2"},
		{"string", "hi", `"hi"`},
		{"slice", []int{1, 2}, "[1,2]"},
		{"map", map[string]int{"b": 2, "a": 1}, `{"a"=1,"b"=2}`},
		{"nested", map[string][]bool{"f": {true, false}}, `{"f"=[true,false]}`},
		{"value passthrough", ir.FromFloat(0.5), "0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Encode(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := encode.MustString(v); got != tt.out {
				t.Errorf("encoded = %q, want %q", got, tt.out)
			}
		})
	}
}

func TestEncodeOverflow(t *testing.T) {
	_, err := Encode(int64(1) << 40)
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("err = %v, want MarshalError", err)
	}
}

func TestEncodeUnsupported(t *testing.T) {
	_, err := Encode(struct{ C chan int }{})
	var me *MarshalError
	if !errors.As(err, &me) {
		t.Fatalf("err = %v, want MarshalError", err)
	}
	if me.FieldPath != "C" {
		t.Errorf("FieldPath = %q, want %q", me.FieldPath, "C")
	}
}

func TestDecodeSliceAndMap(t *testing.T) {
	v, err := Encode(map[string][]int{"xs": {1, 2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	var out map[string][]int
	if err := Decode(v, &out); err != nil {
		t.Fatal(err)
	}
	want := map[string][]int{"xs": {1, 2, 3}}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeIntoAny(t *testing.T) {
	v, err := Encode(map[string]any{"n": 1, "f": 0.5, "s": "x"})
	if err != nil {
		t.Fatal(err)
	}
	var out any
	if err := Decode(v, &out); err != nil {
		t.Fatal(err)
	}
	want := map[any]any{"f": float32(0.5), "n": int32(1), "s": "x"}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeIntAcceptedByFloat(t *testing.T) {
	var f float64
	if err := Decode(ir.FromInt(4), &f); err != nil {
		t.Fatal(err)
	}
	if f != 4 {
		t.Errorf("f = %v, want 4", f)
	}
}

func TestDecodeTypeMismatch(t *testing.T) {
	var s string
	err := Decode(ir.FromInt(1), &s)
	var ue *UnmarshalError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UnmarshalError", err)
	}
}

func TestDecodeNeedsPointer(t *testing.T) {
	var s string
	if err := Decode(ir.FromString("x"), s); err == nil {
		t.Fatalf("Decode into non-pointer did not fail")
	}
}

func TestDecodeTableKeyIntoAny(t *testing.T) {
	// {[1]=2} is legal in the grammar (any value can key a pair), but a
	// table cannot become an untyped Go map key; that must surface as an
	// UnmarshalError, not a panic
	v, err := parse.Value("{[1]=2}")
	if err != nil {
		t.Fatal(err)
	}
	var out any
	err = Decode(v, &out)
	var ue *UnmarshalError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UnmarshalError", err)
	}
}

func TestDecodeNestedTableKeyIntoAny(t *testing.T) {
	tbl := ir.NewTable()
	tbl.Put(ir.FromSlice([]ir.Value{ir.FromInt(1)}), ir.FromInt(2))
	v := ir.FromSlice([]ir.Value{ir.FromTable(tbl)})
	var out any
	err := Decode(v, &out)
	var ue *UnmarshalError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UnmarshalError", err)
	}
}

func TestDecodeMapKeyErrorPath(t *testing.T) {
	tbl := ir.NewTable()
	tbl.Put(ir.FromInt(1), ir.FromString("v"))
	var out map[string]string
	err := Decode(ir.FromTable(tbl), &out)
	var ue *UnmarshalError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UnmarshalError", err)
	}
	if !strings.Contains(ue.FieldPath, "<key>") {
		t.Errorf("FieldPath = %q, want a <key> segment", ue.FieldPath)
	}
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	tbl := ir.NewTable()
	tbl.Put(ir.FromString("x"), ir.FromInt(5))
	tbl.Put(ir.FromString("unknown"), ir.FromString("ignored"))
	var out shot
	if err := Decode(ir.FromTable(tbl), &out); err != nil {
		t.Fatal(err)
	}
	if out.X != 5 {
		t.Errorf("X = %d, want 5", out.X)
	}
}
