// Package testutils provides helpers shared by HTTP-level tests: a real JWT
// service with a fixed test secret, bearer header construction, and an
// in-memory slog handler for asserting on log output.
package testutils
