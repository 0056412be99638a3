package ledger

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/bjaus/ledger"

// DefaultTracer returns the tracer registered with the global otel provider.
func DefaultTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// Trace returns middleware that runs each invocation inside a span named
// after the operation. Failed invocations mark the span as an error.
func Trace[A, R any](tracer trace.Tracer) Middleware[A, R] {
	if tracer == nil {
		tracer = DefaultTracer()
	}
	return func(next Operation[A, R]) Operation[A, R] {
		name := next.Name()
		return wrap(next, func(ctx context.Context, args A) (R, error) {
			ctx, span := tracer.Start(ctx, name)
			defer span.End()

			result, err := next.Invoke(ctx, args)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return result, err
		})
	}
}

// traced returns Trace middleware when t is set, nil otherwise. Chain skips
// nil middleware.
func traced[A, R any](t trace.Tracer) Middleware[A, R] {
	if t == nil {
		return nil
	}
	return Trace[A, R](t)
}
