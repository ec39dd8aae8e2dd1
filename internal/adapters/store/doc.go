// Package store groups the ports.ListRepository backends. Each sub-package
// owns one document store:
//
//   - memory: in-process maps, for tests and local runs
//   - mongo: one MongoDB document per list with embedded todos
//   - postgres: lists, todos and counters tables over pgxpool
//   - redisstore: hashes and sets with INCR sequences
//   - firestorestore: list documents with a todos subcollection
//
// instrumented wraps any of them with tracing, metrics, rate limiting and a
// circuit breaker. storetest holds the behavior suite every backend passes.
// Connect selects and opens the configured backend at startup.
package store
