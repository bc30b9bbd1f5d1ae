package codec

import (
	"errors"
	"fmt"
)

// ErrMalformedValue is wrapped by every ValueError.
var ErrMalformedValue = errors.New("malformed value")

// ErrUnsupportedType is returned for fields whose Go type has no wire form.
var ErrUnsupportedType = errors.New("unsupported field type")

// ValueError reports a wire value whose shape does not match the field.
type ValueError struct {
	Field string // dotted path of the offending value
	Want  string // expected shape, e.g. "4 numbers"
	Got   any
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("codec: %s: expected %s, got %s", e.Field, e.Want, describe(e.Got))
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

func malformed(field, want string, got any) error {
	return &ValueError{Field: field, Want: want, Got: got, Err: ErrMalformedValue}
}

func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case []any:
		return fmt.Sprintf("array of %d", len(t))
	case map[string]any:
		return fmt.Sprintf("object with %d keys", len(t))
	default:
		return fmt.Sprintf("%T", v)
	}
}
