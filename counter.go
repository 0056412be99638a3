package ledger

import "context"

// CountCalls returns middleware that increments the counter named after the
// operation before every invocation.
//
// The increment persists even if the operation fails. If the increment
// itself fails, the operation is not run and the store error is returned.
func CountCalls[A, R any](s Store) Middleware[A, R] {
	return func(next Operation[A, R]) Operation[A, R] {
		key := next.Name()
		return wrap(next, func(ctx context.Context, args A) (R, error) {
			if _, err := s.Incr(ctx, key); err != nil {
				var zero R
				return zero, err
			}
			return next.Invoke(ctx, args)
		})
	}
}

// CallCount returns how many times the operation called name was invoked
// through CountCalls. Operations never invoked report 0.
func CallCount(ctx context.Context, s Store, name string) (int64, error) {
	return readCounter(ctx, s, name)
}
