package ledger

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Converter turns raw stored bytes into a typed value.
type Converter[T any] func([]byte) (T, error)

// checkScalar reports whether v can be stored by ObjectCache.
func checkScalar(v any) error {
	switch v.(type) {
	case string, []byte, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func parseString(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

func parseInt(b []byte) (int64, error) {
	return strconv.ParseInt(string(b), 10, 64)
}

func parseFloat(b []byte) (float64, error) {
	return strconv.ParseFloat(string(b), 64)
}

func parseBytes(b []byte) ([]byte, error) {
	return b, nil
}

func parseUint(b []byte) (uint64, error) {
	return strconv.ParseUint(string(b), 10, 64)
}

// parseBool accepts the "1"/"0" the store writes for bools, as well as
// true/false.
func parseBool(b []byte) (bool, error) {
	return strconv.ParseBool(string(b))
}
