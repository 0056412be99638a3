package ledger

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultPageTTL is how long a fetched page stays cached.
	DefaultPageTTL = 10 * time.Second

	// DefaultNamespace prefixes the qualified names of ObjectCache operations.
	DefaultNamespace = "ObjectCache"
)

type options struct {
	namespace    string
	keyFn        func() string
	codec        Codec
	ttl          time.Duration
	singleFlight bool
	logger       *slog.Logger
	tracer       trace.Tracer
	stats        *Stats
	onHit        func(url string)
	onMiss       func(url string)
}

func defaultOptions() options {
	return options{
		namespace: DefaultNamespace,
		keyFn:     uuid.NewString,
		codec:     JSONCodec{},
		ttl:       DefaultPageTTL,
		logger:    slog.New(slog.DiscardHandler),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures an ObjectCache or a PageCache.
// Options that do not apply to a cache are ignored by it.
type Option func(*options)

// WithNamespace sets the prefix of ObjectCache operation names.
// The store operation is recorded as "<namespace>.Store".
func WithNamespace(ns string) Option {
	return func(o *options) {
		if ns != "" {
			o.namespace = ns
		}
	}
}

// WithKeyFunc sets the function generating ObjectCache keys.
// The default produces random UUIDv4 strings.
func WithKeyFunc(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.keyFn = fn
		}
	}
}

// WithCodec sets the serialization used for call history.
func WithCodec(c Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithTTL sets how long PageCache keeps a fetched page.
func WithTTL(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.ttl = d
		}
	}
}

// WithSingleFlight makes PageCache coalesce concurrent misses for the same
// URL within this process into a single fetch.
// Access counting still happens once per caller. The shared fetch keeps
// the first caller's context values but not its cancellation or deadline,
// so one caller giving up does not fail the others.
func WithSingleFlight() Option {
	return func(o *options) {
		o.singleFlight = true
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTracer wraps every cache operation in a span from t.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// WithStats records PageCache hits, misses, and fetches into s.
func WithStats(s *Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

// OnHit sets a callback invoked when PageCache serves a cached page.
func OnHit(fn func(url string)) Option {
	return func(o *options) {
		o.onHit = fn
	}
}

// OnMiss sets a callback invoked when PageCache has to fetch a page.
func OnMiss(fn func(url string)) Option {
	return func(o *options) {
		o.onMiss = fn
	}
}
