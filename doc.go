// Package ledger instruments operations against a Redis-compatible key-value
// store with call counting, call history, and replay, and provides a
// page cache that meters every access.
//
// # Overview
//
// All state lives in the store. The types in this package hold only a
// handle to it, so any number of them may be created over the same store,
// in one process or many. Individual store commands are atomic; the
// sequences this package issues around a call are not.
//
// # Connecting
//
// Connect dials Redis, checks it with PING and, unless disabled, flushes the
// selected database:
//
//	ctx := context.Background()
//
//	cfg, err := ledger.LoadConfig()
//	if err != nil {
//		return err
//	}
//
//	store, err := ledger.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
// The flush runs on every Connect. Treat it as a cold start, not a no-op.
//
// # Operations and Middleware
//
// An Operation is a named function. Middleware wraps an Operation without
// changing its name, arguments, result, or error:
//
//	op := ledger.NewOperation("Users.Rename", rename)
//	op = ledger.Chain(op,
//		ledger.CountCalls[RenameArgs, string](store),
//		ledger.RecordHistory[RenameArgs, string](store, ledger.JSONCodec{}),
//	)
//
// The first middleware passed to Chain is the outermost. CountCalls
// increments the counter keyed by the operation name before the call;
// RecordHistory appends to "<name>:inputs" before and "<name>:outputs"
// after a successful call.
//
// # Replay
//
// Replay pairs recorded inputs and outputs by position:
//
//	ledger.ReplayTo(ctx, os.Stdout, store, "Users.Rename")
//
//	Users.Rename was called 2 times:
//	Users.Rename(*["ann","anna"]) -> "ok"
//	Users.Rename(*["bob","rob"]) -> "ok"
//
// A call that failed or is still running has an input but no output. It is
// included in the count and left out of the lines.
//
// # Object Cache
//
// ObjectCache stores scalars under random UUID keys. Store is counted and
// recorded:
//
//	cache := ledger.NewObjectCache(store)
//
//	key, err := cache.Store(ctx, "foo")
//	s, ok, err := cache.GetString(ctx, key)
//
// Get and the typed getters report a missing key with false and a nil
// error, never with a zero value that looks stored.
//
// # Page Cache
//
// PageCache counts every request for a URL, serves a cached copy for ten
// seconds after a fetch, and fetches again once the copy expires:
//
//	pages := ledger.NewPageCache(store, &ledger.HTTPFetcher{})
//	body, err := pages.Get(ctx, "http://example.com")
//	hits, err := pages.AccessCount(ctx, "http://example.com")
//
// Concurrent misses each fetch unless WithSingleFlight is set, which
// coalesces them within the process.
//
// # Errors
//
// Store, fetch, and converter errors are returned unchanged. Nothing is
// retried.
package ledger
