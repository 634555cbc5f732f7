// Package postgres provides PostgreSQL implementations of the persistence
// interfaces in internal/store, the mapping from PostgreSQL error codes to
// store errors, and the embedded goose migrations that create the schema.
//
// Stores are constructed over a store.DBTX and run unchanged on a pool or
// inside a transaction obtained through WithTx.
package postgres
