// Package encode encodes netvent values to their canonical text form.
//
// # Usage
//
//	// Encode to canonical text
//	v := ir.FromSlice([]ir.Value{ir.FromInt(1), ir.FromInt(2)})
//	err := encode.Encode(v, w)
//
//	// Convenience string forms
//	s := encode.MustString(v)           // "[1,2]"
//	s = encode.MustString(v, encode.Pretty()) // "[1, 2]"
//
//	// Colorized output for human inspection
//	err = encode.Encode(v, os.Stdout, encode.AutoColors(os.Stdout))
//
// The canonical form is compact: no whitespace, object pairs in key order,
// floats fixed to one decimal. Pretty output adds spaces after commas and
// around '=' and still parses back to an equal value; colorized output is
// for display only and is not parseable.
//
// # Related Packages
//
//   - github.com/netvent-format/go-netvent/ir - value model
//   - github.com/netvent-format/go-netvent/parse - parse text to values
package encode
