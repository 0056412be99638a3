package ledger

import (
	"bytes"
	"encoding/json"
	"math"
)

// Args is an argument tuple. History records an Args value element by
// element; any other argument value is recorded as a one-element tuple.
type Args []any

// Codec serializes invocation arguments and results for call history.
// Encodings must be deterministic so identical calls record identical text.
type Codec interface {
	EncodeArgs(args any) (string, error)
	EncodeResult(result any) (string, error)
}

// JSONCodec records arguments as a JSON array and results as plain JSON.
//
//	Store("foo")  -> input ["foo"], output "3b8f..."
//	Store(42)     -> input [42]
//
// Map keys are sorted, HTML characters are left unescaped, and []byte values
// appear as base64 strings. Non-finite floats, which JSON cannot represent,
// are recorded as the strings "+Inf", "-Inf" and "NaN".
type JSONCodec struct{}

var _ Codec = JSONCodec{}

func (JSONCodec) EncodeArgs(args any) (string, error) {
	tuple, ok := args.(Args)
	if !ok {
		tuple = Args{args}
	}
	elems := make([]any, len(tuple))
	for i, v := range tuple {
		elems[i] = finite(v)
	}
	return encodeJSON(elems)
}

func (JSONCodec) EncodeResult(result any) (string, error) {
	return encodeJSON(finite(result))
}

func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// finite replaces a non-finite float scalar with its text form.
func finite(v any) any {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	default:
		return v
	}
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return v
}
