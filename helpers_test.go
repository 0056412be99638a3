package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var errStore = errors.New("store error")

func newMiniredisStore(mr *miniredis.Miniredis) *RedisStore {
	return NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

// newTestStore starts a miniredis server for t and returns a store over it.
func newTestStore(t testing.TB) *RedisStore {
	t.Helper()
	s := newMiniredisStore(miniredis.RunT(t))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// faultStore fails the named commands and passes everything else through.
type faultStore struct {
	Store
	fail map[string]error
}

func newFaultStore(s Store) *faultStore {
	return &faultStore{Store: s, fail: make(map[string]error)}
}

func (f *faultStore) failOn(cmd string, err error) {
	f.fail[cmd] = err
}

func (f *faultStore) Set(ctx context.Context, key string, value any) error {
	if err := f.fail["SET"]; err != nil {
		return err
	}
	return f.Store.Set(ctx, key, value)
}

func (f *faultStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := f.fail["GET"]; err != nil {
		return nil, false, err
	}
	return f.Store.Get(ctx, key)
}

func (f *faultStore) Incr(ctx context.Context, key string) (int64, error) {
	if err := f.fail["INCR"]; err != nil {
		return 0, err
	}
	return f.Store.Incr(ctx, key)
}

func (f *faultStore) RPush(ctx context.Context, key string, values ...string) error {
	if err := f.fail["RPUSH"]; err != nil {
		return err
	}
	return f.Store.RPush(ctx, key, values...)
}

func (f *faultStore) SetEX(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := f.fail["SETEX"]; err != nil {
		return err
	}
	return f.Store.SetEX(ctx, key, value, ttl)
}

// countingFetcher returns "<body>:<url>" and counts calls per URL.
type countingFetcher struct {
	mu    sync.Mutex
	body  string
	err   error
	calls map[string]int
}

func newCountingFetcher(body string) *countingFetcher {
	return &countingFetcher{body: body, calls: make(map[string]int)}
}

func (f *countingFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[url]++
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("%s:%s", f.body, url), nil
}

func (f *countingFetcher) count(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

// sequentialKeys returns a key function producing k1, k2, ...
func sequentialKeys() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("k%d", n)
	}
}
