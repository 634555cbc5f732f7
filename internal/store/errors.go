package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrStudentNotFound, ErrCourseNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a student with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUpdateFailed is matched by any StoreError from an update.
	ErrUpdateFailed = errors.New("update failed")

	// ErrDeleteFailed is matched by any StoreError from a delete.
	ErrDeleteFailed = errors.New("delete failed")

	// ErrTransactionFailed is returned when a transaction cannot be started
	// or committed.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrStudentNotFound indicates that the requested student does not exist in the store.
	ErrStudentNotFound = fmt.Errorf("%w: student", ErrNotFound)

	// ErrCourseNotFound indicates that the requested course does not exist in the store.
	ErrCourseNotFound = fmt.Errorf("%w: course", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a student with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrCourseCodeExists indicates that a course with the given code already exists.
	ErrCourseCodeExists = fmt.Errorf("%w: course code", ErrDuplicate)

	// ErrCourseNameExists indicates that a course with the given name already exists.
	ErrCourseNameExists = fmt.Errorf("%w: course name", ErrDuplicate)

	// ErrUsernameExists indicates that an account with the given username already exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// Every entity-specific not found error wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
// Every entity-specific duplicate error wraps ErrDuplicate.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// operationErrors maps a store operation to the sentinel its failures wrap.
var operationErrors = map[string]error{
	"update": ErrUpdateFailed,
	"delete": ErrDeleteFailed,
}

// StoreError records which write on which entity failed. It matches both the
// operation's sentinel (ErrUpdateFailed for "update", ErrDeleteFailed for
// "delete") and the underlying error under errors.Is.
type StoreError struct {
	Entity    string // "student", "course", "user"
	Operation string // "create", "update", "delete"
	Err       error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s failed", e.Operation, e.Entity)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Operation, e.Entity, e.Err)
}

// Unwrap exposes the operation sentinel and the wrapped error.
func (e *StoreError) Unwrap() []error {
	var errs []error
	if sentinel, ok := operationErrors[e.Operation]; ok {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewStoreError wraps err as a failed operation on entity.
func NewStoreError(entity, operation string, err error) *StoreError {
	return &StoreError{Entity: entity, Operation: operation, Err: err}
}
