package netvent

import (
	"maps"
	"slices"
	"strings"

	"github.com/netvent-format/go-netvent/debug"
	"github.com/netvent-format/go-netvent/encode"
	"github.com/netvent-format/go-netvent/ir"
	"github.com/netvent-format/go-netvent/parse"
)

const cutset = " \t"

// EncodeEvent renders an event as netvent text: the serialized name on
// the first line, then one "key value" line per data entry in sorted key
// order.
func EncodeEvent(name ir.Value, data map[string]ir.Value) string {
	var sb strings.Builder
	sb.WriteString(encode.MustString(name))
	sb.WriteByte('\n')
	for _, key := range slices.Sorted(maps.Keys(data)) {
		sb.WriteString(key)
		sb.WriteByte(' ')
		sb.WriteString(encode.MustString(data[key]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DecodeEvent parses netvent text back into an event name and its data.
//
// The first surviving line after comment stripping is the event name; each
// later surviving line is split on its first space into key and value
// text. Lines with no space after the key, or with blank value text, are
// skipped. A value fragment that fails to parse aborts the decode.
func DecodeEvent(text string) (ir.Value, map[string]ir.Value, error) {
	data := map[string]ir.Value{}
	var name ir.Value

	sawName := false
	for _, raw := range strings.Split(text, "\n") {
		line := stripComment(raw)
		if line == "" || line[0] == '#' {
			continue
		}
		if !sawName {
			v, err := parse.Value(line)
			if err != nil {
				return ir.Value{}, nil, err
			}
			name = v
			sawName = true
			continue
		}
		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			if debug.Event() {
				debug.Printf("netvent: skipping line with no value: %q", line)
			}
			continue
		}
		key := line[:sp]
		valText := strings.Trim(line[sp:], cutset)
		if valText == "" {
			if debug.Event() {
				debug.Printf("netvent: skipping line with blank value: %q", line)
			}
			continue
		}
		v, err := parse.Value(valText)
		if err != nil {
			return ir.Value{}, nil, err
		}
		data[key] = v
	}
	return name, data, nil
}

// stripComment trims surrounding blanks and removes a // comment through
// end of line.
func stripComment(line string) string {
	line = strings.Trim(line, cutset)
	if i := strings.Index(line, "//"); i >= 0 {
		line = strings.TrimRight(line[:i], cutset)
	}
	return line
}
