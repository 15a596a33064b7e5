package encode

import (
	"bytes"

	"github.com/netvent-format/go-netvent/ir"
)

// MustString returns the encoded form of v as a string. Encoding to a
// buffer cannot fail, so there is no error to return.
func MustString(v ir.Value, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
