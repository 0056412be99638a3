package ledger

import (
	"context"
	"log/slog"
)

const (
	inputsSuffix  = ":inputs"
	outputsSuffix = ":outputs"
)

// InputsKey returns the list key holding recorded arguments for name.
func InputsKey(name string) string { return name + inputsSuffix }

// OutputsKey returns the list key holding recorded results for name.
func OutputsKey(name string) string { return name + outputsSuffix }

// RecordHistory returns middleware that appends the encoded arguments to the
// operation's inputs list before it runs and the encoded result to its
// outputs list after it succeeds.
//
// A failed invocation keeps its input record and gets no output, so the
// inputs list may be one entry longer than the outputs list per failure.
func RecordHistory[A, R any](s Store, codec Codec) Middleware[A, R] {
	return recordHistory[A, R](s, codec, nil)
}

func recordHistory[A, R any](s Store, codec Codec, logger *slog.Logger) Middleware[A, R] {
	if codec == nil {
		codec = JSONCodec{}
	}
	return func(next Operation[A, R]) Operation[A, R] {
		name := next.Name()
		inKey, outKey := InputsKey(name), OutputsKey(name)

		return wrap(next, func(ctx context.Context, args A) (R, error) {
			var zero R

			in, err := codec.EncodeArgs(args)
			if err != nil {
				return zero, err
			}
			if err := s.RPush(ctx, inKey, in); err != nil {
				return zero, err
			}

			result, err := next.Invoke(ctx, args)
			if err != nil {
				if logger != nil {
					logger.WarnContext(ctx, "recorded call failed", "operation", name, "input", in, "error", err)
				}
				return zero, err
			}

			out, err := codec.EncodeResult(result)
			if err != nil {
				return zero, err
			}
			if err := s.RPush(ctx, outKey, out); err != nil {
				return zero, err
			}

			if logger != nil {
				logger.DebugContext(ctx, "recorded call", "operation", name, "input", in, "output", out)
			}
			return result, nil
		})
	}
}

// History is the recorded inputs and outputs of one operation, in
// invocation order.
type History struct {
	Inputs  []string
	Outputs []string
}

// LoadHistory reads the complete inputs and outputs lists for name.
// The two reads are separate commands, so concurrent writers may land
// between them.
func LoadHistory(ctx context.Context, s Store, name string) (History, error) {
	inputs, err := s.LRange(ctx, InputsKey(name), 0, -1)
	if err != nil {
		return History{}, err
	}
	outputs, err := s.LRange(ctx, OutputsKey(name), 0, -1)
	if err != nil {
		return History{}, err
	}
	return History{Inputs: inputs, Outputs: outputs}, nil
}
