package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse            = errors.New("parse error")
	ErrEmptyInput       = fmt.Errorf("%w: empty input", ErrParse)
	ErrMalformed        = fmt.Errorf("%w: malformed structure", ErrParse)
	ErrMissingSeparator = fmt.Errorf("%w: missing '='", ErrParse)
	ErrUnknownForm      = fmt.Errorf("%w: unknown form", ErrParse)
)
