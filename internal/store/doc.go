// Package store defines the persistence contracts for courses, students and
// API users, the error taxonomy every implementation reports through, and a
// transaction helper shared by the services.
//
// Implementations live under internal/platform; they accept a DBTX so the
// same code runs against a connection pool or an open transaction.
package store
