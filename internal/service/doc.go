// Package service contains the application use cases: enrolling, updating and
// removing students, managing courses, and registering and authenticating API
// users.
//
// Services validate client input with the rules in internal/domain, resolve
// the records those rules depend on through the interfaces in internal/store,
// and run every write inside a single transaction so that uniqueness
// pre-checks and the write itself observe the same state. A unique index
// remains the final authority: a duplicate that slips past a pre-check
// surfaces as a store duplicate error, not a validation error.
package service
