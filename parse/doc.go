// Package parse parses netvent text into values.
//
// # Usage
//
//	v, err := parse.Value(`{"a"=1,"b"=[1,2]}`)
//	if err != nil {
//	    return err
//	}
//	tbl, err := parse.Table(`[1,2,3,]`)
//
// Value tries the input as, in order: a number (float when the fragment
// contains a '.', integer otherwise), a boolean literal, a quoted string,
// a table, and finally an unquoted string. The unquoted-string fallback is
// deliberate leniency: bare identifiers parse as strings rather than
// failing.
//
// Inside tables, commas split elements only at bracket depth zero, so
// nested tables may contain commas. A trailing comma before the closing
// bracket is legal. The depth counter is a single integer that does not
// pair bracket kinds, so interior interleavings like [{1,2],3} are not
// rejected; only the outermost open/close characters are checked. That
// leniency is part of the format, not an oversight to tighten.
//
// # Related Packages
//
//   - github.com/netvent-format/go-netvent/ir - value model
//   - github.com/netvent-format/go-netvent/encode - encode values to text
package parse
