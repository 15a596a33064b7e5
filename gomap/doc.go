// Package gomap provides encoding and decoding between Go values and
// netvent values.
//
// # Usage
//
//	// Encode a Go value
//	type Shot struct {
//	    X         int32   `netvent:"x"`
//	    Y         float32 `netvent:"y"`
//	    GunActive bool    `netvent:"gun_active"`
//	}
//	v, err := gomap.Encode(Shot{X: 1, Y: 0.5, GunActive: true})
//
//	// Decode back into a Go value
//	var shot Shot
//	err = gomap.Decode(v, &shot)
//
// Structs and maps become map-mode tables, slices and arrays become
// array-mode tables, and scalars map onto the corresponding value types.
// Integers must fit the format's signed 32-bit range. Only exported struct
// fields are processed; a `netvent:"-"` tag skips a field and any other
// tag value renames it.
//
// # Related Packages
//
//   - github.com/netvent-format/go-netvent/ir - value model
package gomap
