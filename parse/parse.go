package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/netvent-format/go-netvent/debug"
	"github.com/netvent-format/go-netvent/ir"
)

const cutset = " \t"

// Value parses one text fragment into a value.
//
// Dispatch is an ordered chain of attempts, not a tokenizer: numeric
// first (float when the fragment contains a '.', integer otherwise), then
// the boolean literals, then a quoted string, then a table when the
// fragment starts with '[' or '{', and otherwise the whole fragment is an
// unquoted string. Only empty input and malformed tables fail.
func Value(s string) (ir.Value, error) {
	if s == "" {
		return ir.Value{}, ErrEmptyInput
	}

	if strings.ContainsRune(s, '.') {
		if f, err := strconv.ParseFloat(s, 32); err == nil {
			return ir.FromFloat(float32(f)), nil
		}
	} else if i, err := strconv.ParseInt(s, 10, 32); err == nil {
		return ir.FromInt(int32(i)), nil
	}

	switch s {
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return ir.FromString(s[1 : len(s)-1]), nil
	}

	if s[0] == '[' || s[0] == '{' {
		t, err := Table(s)
		if err != nil {
			return ir.Value{}, err
		}
		return ir.FromTable(t), nil
	}

	// lenient fallback: bare identifiers are strings
	return ir.FromString(s), nil
}

// Table parses a bracketed fragment into a table. The fragment must start
// with '[' or '{' and end with the matching close bracket.
func Table(s string) (*ir.Table, error) {
	if s == "" {
		return nil, ErrEmptyInput
	}
	if debug.Parse() {
		debug.Printf("parse: table %q", s)
	}
	switch s[0] {
	case '[':
		if len(s) < 2 || s[len(s)-1] != ']' {
			return nil, fmt.Errorf("%w: unterminated array", ErrMalformed)
		}
		return parseArray(s[1 : len(s)-1])
	case '{':
		if len(s) < 2 || s[len(s)-1] != '}' {
			return nil, fmt.Errorf("%w: unterminated object", ErrMalformed)
		}
		return parseObject(s[1 : len(s)-1])
	}
	return nil, fmt.Errorf("%w: %q does not start a table", ErrUnknownForm, rune(s[0]))
}

func parseArray(content string) (*ir.Table, error) {
	t := ir.TableFromSlice(nil)
	for _, seg := range splitTop(content) {
		seg = strings.Trim(seg, cutset)
		if seg == "" {
			// trailing comma
			continue
		}
		v, err := Value(seg)
		if err != nil {
			return nil, err
		}
		t.Append(v)
	}
	return t, nil
}

func parseObject(content string) (*ir.Table, error) {
	t := ir.NewTable()
	for _, seg := range splitTop(content) {
		seg = strings.Trim(seg, cutset)
		if seg == "" {
			continue
		}
		eq := strings.IndexByte(seg, '=')
		if eq < 0 {
			return nil, fmt.Errorf("%w in %q", ErrMissingSeparator, seg)
		}
		keyText := strings.Trim(seg[:eq], cutset)
		valText := strings.Trim(seg[eq+1:], cutset)
		if keyText == "" || valText == "" {
			continue
		}
		key, err := Value(keyText)
		if err != nil {
			return nil, err
		}
		val, err := Value(valText)
		if err != nil {
			return nil, err
		}
		t.Put(key, val)
	}
	return t, nil
}

// splitTop splits content on commas at bracket depth zero. The depth
// counter is a single integer: any '[' or '{' raises it, any ']' or '}'
// lowers it, without pairing kinds. The final segment is always emitted,
// even when empty.
func splitTop(content string) []string {
	var segs []string
	depth, start := 0, 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case ',':
			if depth == 0 {
				segs = append(segs, content[start:i])
				start = i + 1
			}
		}
	}
	return append(segs, content[start:])
}
