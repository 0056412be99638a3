package ledger

import "errors"

var (
	// ErrUnsupportedValue is returned when ObjectCache.Store receives a value
	// that is not a scalar.
	ErrUnsupportedValue = errors.New("ledger: unsupported value type")

	// ErrInvalidUTF8 is returned by GetString when the stored bytes are not
	// valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("ledger: value is not valid UTF-8")
)
