package ir

import "testing"

func TestTypeTextRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s): %v", typ, err)
		}
		var got Type
		if err := got.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", d, err)
		}
		if got != typ {
			t.Errorf("round trip %s = %s", typ, got)
		}
	}
	var got Type
	if err := got.UnmarshalText([]byte("Blob")); err == nil {
		t.Errorf("UnmarshalText(\"Blob\") did not fail")
	}
}

func TestTypeIsLeaf(t *testing.T) {
	for _, typ := range Types() {
		leaf := typ != TableType
		if typ.IsLeaf() != leaf {
			t.Errorf("%s.IsLeaf() = %v, want %v", typ, typ.IsLeaf(), leaf)
		}
	}
}
