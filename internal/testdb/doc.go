// Package testdb provides utilities for tests that need a real PostgreSQL
// database. Tests call GetTestDBWithT, which skips when no database URL is
// configured and otherwise returns a migrated connection, then isolate their
// writes with WithTx or clear tables with ResetTestData.
package testdb
