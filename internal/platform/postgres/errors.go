package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/roster-api/internal/store"
)

// PostgreSQL error codes
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// Unique constraint names declared by the migrations.
const (
	constraintStudentEmail = "students_email_key"
	constraintCourseCode   = "courses_course_code_key"
	constraintCourseName   = "courses_course_name_key"
	constraintUsername     = "users_username_key"
)

// uniqueConstraintErrors maps a unique constraint to the store error that
// names the clashing column.
var uniqueConstraintErrors = map[string]error{
	constraintStudentEmail: store.ErrEmailExists,
	constraintCourseCode:   store.ErrCourseCodeExists,
	constraintCourseName:   store.ErrCourseNameExists,
	constraintUsername:     store.ErrUsernameExists,
}

// MapError maps a database error to an appropriate store error, wrapping the
// original for debugging. Unique violations on known constraints map to the
// entity-specific duplicate error.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			if specific, ok := uniqueConstraintErrors[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%w: %v", specific, err)
			}
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case foreignKeyViolationCode:
			return fmt.Errorf(
				"%w: foreign key violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case checkViolationCode:
			return fmt.Errorf(
				"%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case notNullViolationCode:
			return fmt.Errorf(
				"%w: not null violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ColumnName,
				err,
			)
		}
	}

	return err
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign key constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// IsCheckConstraintViolation checks if the given error is a PostgreSQL check constraint violation.
func IsCheckConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == checkViolationCode
}

// IsNotNullViolation checks if the given error is a PostgreSQL not null constraint violation.
func IsNotNullViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == notNullViolationCode
}

// writeFailure logs a failed INSERT, UPDATE or DELETE on entity and returns
// it as a store.StoreError around the mapped error. Constraint violations are
// caller mistakes and log at WARN; anything else logs at ERROR.
func writeFailure(log *slog.Logger, entity, op string, id uuid.UUID, err error) error {
	idAttr := slog.String(entity+"_id", id.String())
	switch {
	case IsUniqueViolation(err):
		log.Warn("unique violation during "+entity+" "+op, idAttr)
	case IsForeignKeyViolation(err), IsCheckConstraintViolation(err), IsNotNullViolation(err):
		log.Warn("constraint violation during "+entity+" "+op, idAttr,
			slog.String("error", err.Error()))
	default:
		log.Error("failed to "+op+" "+entity, idAttr,
			slog.String("error", err.Error()))
	}
	return store.NewStoreError(entity, op, MapError(err))
}

// CheckRowsAffected returns notFound when an UPDATE or DELETE touched no rows.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if notFound == nil {
			return store.ErrNotFound
		}
		return notFound
	}
	return nil
}
