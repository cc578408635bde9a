// Package workspace holds the per-visitor UI state of the dashboard: which
// modal is open with what values and errors, and the page and row selection
// of each table.
//
// Visitors are identified by a random, HMAC-signed cookie issued by
// Middleware. State is kept in a Store, either MemoryStore for a single
// process or RedisStore when several instances serve the same visitors.
package workspace
