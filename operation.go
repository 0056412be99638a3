package ledger

import "context"

// Operation is a named unit of work that middleware can wrap.
// Name is the qualified operation name used as the key namespace for
// counters and history.
type Operation[A, R any] interface {
	Name() string
	Invoke(ctx context.Context, args A) (R, error)
}

// Middleware wraps an Operation. Implementations must keep the inner
// operation's name and return its error unchanged.
type Middleware[A, R any] func(Operation[A, R]) Operation[A, R]

type funcOperation[A, R any] struct {
	name string
	fn   func(context.Context, A) (R, error)
}

// NewOperation returns an Operation named name that calls fn.
func NewOperation[A, R any](name string, fn func(context.Context, A) (R, error)) Operation[A, R] {
	return &funcOperation[A, R]{name: name, fn: fn}
}

func (o *funcOperation[A, R]) Name() string { return o.name }

func (o *funcOperation[A, R]) Invoke(ctx context.Context, args A) (R, error) {
	return o.fn(ctx, args)
}

// wrap builds an Operation that keeps inner's name and runs fn instead.
func wrap[A, R any](inner Operation[A, R], fn func(context.Context, A) (R, error)) Operation[A, R] {
	return &funcOperation[A, R]{name: inner.Name(), fn: fn}
}

// Chain applies mws to op so that the first middleware is the outermost:
// Chain(op, a, b) invokes a(b(op)).
func Chain[A, R any](op Operation[A, R], mws ...Middleware[A, R]) Operation[A, R] {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] != nil {
			op = mws[i](op)
		}
	}
	return op
}
