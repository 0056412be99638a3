package ledger

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	accessPrefix = "count:"
	pagePrefix   = "cache:"
)

// AccessKey returns the counter key for url.
func AccessKey(url string) string { return accessPrefix + url }

// PageKey returns the cached content key for url.
func PageKey(url string) string { return pagePrefix + url }

// PageCache fetches pages through a Fetcher, caches them for a fixed TTL,
// and counts every access per URL.
type PageCache struct {
	store Store
	get   Operation[string, string]
	opts  options
}

// NewPageCache creates a PageCache over s that fetches misses with f.
func NewPageCache(s Store, f Fetcher, opts ...Option) *PageCache {
	o := buildOptions(opts)
	c := &PageCache{store: s, opts: o}

	var group *singleflight.Group
	if o.singleFlight {
		group = new(singleflight.Group)
	}

	fetch := NewOperation("PageCache.Get", f.Fetch)
	c.get = Chain(fetch,
		traced[string, string](o.tracer),
		CountAccess(s),
		cachePage(s, o.ttl, group, c.lookedUp),
		c.observeFetch,
	)
	return c
}

// Get returns the content of url, from the cache when a live entry exists
// and from the Fetcher otherwise. Every call increments the access counter
// for url, hit or miss.
func (c *PageCache) Get(ctx context.Context, url string) (string, error) {
	return c.get.Invoke(ctx, url)
}

// AccessCount returns how many times url has been requested.
func (c *PageCache) AccessCount(ctx context.Context, url string) (int64, error) {
	return readCounter(ctx, c.store, AccessKey(url))
}

// Cached returns the cached content of url without fetching or counting.
func (c *PageCache) Cached(ctx context.Context, url string) (string, bool, error) {
	b, ok, err := c.store.Get(ctx, PageKey(url))
	if err != nil || !ok {
		return "", false, err
	}
	return string(b), true, nil
}

// lookedUp reports the outcome of a cache check to the configured stats,
// hooks, and logger.
func (c *PageCache) lookedUp(ctx context.Context, url string, hit bool) {
	if hit {
		c.opts.stats.hit()
		c.opts.logger.DebugContext(ctx, "page cache hit", "url", url)
		if c.opts.onHit != nil {
			c.opts.onHit(url)
		}
		return
	}
	c.opts.stats.miss()
	c.opts.logger.DebugContext(ctx, "page cache miss", "url", url)
	if c.opts.onMiss != nil {
		c.opts.onMiss(url)
	}
}

// observeFetch sits between the cache check and the Fetcher, so it only runs
// when a fetch actually happens.
func (c *PageCache) observeFetch(next Operation[string, string]) Operation[string, string] {
	return wrap(next, func(ctx context.Context, url string) (string, error) {
		content, err := next.Invoke(ctx, url)
		if err != nil {
			c.opts.logger.WarnContext(ctx, "page fetch failed", "url", url, "error", err)
			return "", err
		}
		c.opts.stats.fetch()
		c.opts.logger.DebugContext(ctx, "page fetched", "url", url, "ttl", c.opts.ttl)
		return content, nil
	})
}

// CountAccess returns middleware that increments the access counter for the
// requested URL on every call, before anything else runs.
func CountAccess(s Store) Middleware[string, string] {
	return func(next Operation[string, string]) Operation[string, string] {
		return wrap(next, func(ctx context.Context, url string) (string, error) {
			if _, err := s.Incr(ctx, AccessKey(url)); err != nil {
				return "", err
			}
			return next.Invoke(ctx, url)
		})
	}
}

// CachePage returns middleware that serves a live cached copy of the URL when
// one exists and otherwise invokes the inner operation and caches its result
// for ttl. Failed fetches are not cached.
//
// Concurrent misses for the same URL each run the inner operation and each
// write the cache; the last write wins.
func CachePage(s Store, ttl time.Duration) Middleware[string, string] {
	return cachePage(s, ttl, nil, nil)
}

// cachePage is CachePage with an optional single-flight group coalescing
// misses per URL and an optional callback told whether each lookup hit.
// Callers that join another caller's fetch share its result and its error.
// The shared fetch runs detached from the leader's cancellation, so the
// leader waits for it even if its own context is done.
func cachePage(s Store, ttl time.Duration, group *singleflight.Group, lookedUp func(context.Context, string, bool)) Middleware[string, string] {
	return func(next Operation[string, string]) Operation[string, string] {
		fetch := func(ctx context.Context, url string) (string, error) {
			content, err := next.Invoke(ctx, url)
			if err != nil {
				return "", err
			}
			if err := s.SetEX(ctx, PageKey(url), content, ttl); err != nil {
				return "", err
			}
			return content, nil
		}

		return wrap(next, func(ctx context.Context, url string) (string, error) {
			b, ok, err := s.Get(ctx, PageKey(url))
			if err != nil {
				return "", err
			}
			if lookedUp != nil {
				lookedUp(ctx, url, ok)
			}
			if ok {
				return string(b), nil
			}

			if group == nil {
				return fetch(ctx, url)
			}
			// joined callers must not inherit the leader's cancellation
			fetchCtx := context.WithoutCancel(ctx)
			v, err, _ := group.Do(url, func() (any, error) {
				return fetch(fetchCtx, url)
			})
			if err != nil {
				return "", err
			}
			return v.(string), nil
		})
	}
}
