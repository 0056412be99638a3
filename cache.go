package ledger

import (
	"context"
)

// ObjectCache stores scalar values under random keys.
// Every Store call is counted and recorded in the call history.
type ObjectCache struct {
	store   Store
	storeOp Operation[any, string]
	opts    options
}

// NewObjectCache creates an ObjectCache over s.
// It holds no state of its own; any number of caches may share a store.
func NewObjectCache(s Store, opts ...Option) *ObjectCache {
	o := buildOptions(opts)
	c := &ObjectCache{store: s, opts: o}

	op := NewOperation(o.namespace+".Store", c.set)
	c.storeOp = Chain(op,
		traced[any, string](o.tracer),
		CountCalls[any, string](s),
		recordHistory[any, string](s, o.codec, o.logger),
	)
	return c
}

func (c *ObjectCache) set(ctx context.Context, value any) (string, error) {
	key := c.opts.keyFn()
	if err := c.store.Set(ctx, key, value); err != nil {
		return "", err
	}
	return key, nil
}

// Store writes value under a freshly generated key and returns the key.
// The value must be a string, []byte, bool, integer, or float; anything else
// is rejected with ErrUnsupportedValue before any store command is issued.
func (c *ObjectCache) Store(ctx context.Context, value any) (string, error) {
	if err := checkScalar(value); err != nil {
		return "", err
	}
	return c.storeOp.Invoke(ctx, value)
}

// Get returns the raw bytes stored under key.
// Returns false if the key does not exist; an empty stored value is
// returned as empty bytes and true.
func (c *ObjectCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.store.Get(ctx, key)
}

// GetAs reads key and converts the raw bytes with conv.
// Converter errors are returned as-is. A missing key returns false and does
// not call conv.
func GetAs[T any](ctx context.Context, c *ObjectCache, key string, conv Converter[T]) (T, bool, error) {
	var zero T

	raw, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}

	v, err := conv(raw)
	if err != nil {
		return zero, true, err
	}
	return v, true, nil
}

// GetString reads key as UTF-8 text.
func (c *ObjectCache) GetString(ctx context.Context, key string) (string, bool, error) {
	return GetAs(ctx, c, key, parseString)
}

// GetInt reads key as a base-10 integer.
func (c *ObjectCache) GetInt(ctx context.Context, key string) (int64, bool, error) {
	return GetAs(ctx, c, key, parseInt)
}

// GetUint reads key as a base-10 unsigned integer.
func (c *ObjectCache) GetUint(ctx context.Context, key string) (uint64, bool, error) {
	return GetAs(ctx, c, key, parseUint)
}

// GetBool reads key as a boolean. Stored bools read back from "1" and "0".
func (c *ObjectCache) GetBool(ctx context.Context, key string) (bool, bool, error) {
	return GetAs(ctx, c, key, parseBool)
}

// GetFloat reads key as a floating-point number.
func (c *ObjectCache) GetFloat(ctx context.Context, key string) (float64, bool, error) {
	return GetAs(ctx, c, key, parseFloat)
}

// GetBytes reads key without conversion. It is Get under a typed name.
func (c *ObjectCache) GetBytes(ctx context.Context, key string) ([]byte, bool, error) {
	return GetAs(ctx, c, key, parseBytes)
}

// StoreName returns the qualified name Store calls are counted and recorded
// under.
func (c *ObjectCache) StoreName() string {
	return c.storeOp.Name()
}

// StoreCalls returns how many times Store has been invoked against the
// backing store, by any ObjectCache sharing the same namespace.
func (c *ObjectCache) StoreCalls(ctx context.Context) (int64, error) {
	return CallCount(ctx, c.store, c.StoreName())
}

// Replay returns the recorded Store history.
func (c *ObjectCache) Replay(ctx context.Context) (Calls, error) {
	return Replay(ctx, c.store, c.StoreName())
}
