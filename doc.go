// Package netvent implements the netvent event envelope: a line-oriented
// text form pairing an event name with a set of named values, intended as
// a lighter-weight alternative to JSON for typed event data.
//
// An encoded event is the serialized event name on the first line followed
// by one "key value" line per data entry, in sorted key order:
//
//	"shoot"
//	gun_active true
//	player_name "this person"
//	x 0
//	y 0.1
//
// Decoding strips // comments to end of line, drops blank and #-prefixed
// lines, and is permissive about malformed lines: a data line without a
// space after its key, or without value text, is skipped. A value fragment
// that is present but malformed (an unclosed bracket, say) is still a
// fatal decode error.
//
// The value model and the text grammar for individual values live in the
// ir, parse and encode packages; this package is a thin convenience layer
// over them.
package netvent
