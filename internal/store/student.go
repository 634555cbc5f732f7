package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/domain"
)

// StudentStore defines the interface for student data persistence.
//
// Reads that return a single student or a list of students resolve the
// enrolled course into Student.Course. ListByCourseID does not, as its
// callers already hold the course.
type StudentStore interface {
	// Create saves a new student to the store.
	// Returns ErrEmailExists if the email is already taken and
	// ErrCourseNotFound if the referenced course does not exist.
	Create(ctx context.Context, student *domain.Student) error

	// GetByID retrieves a student by their unique ID.
	// Returns ErrStudentNotFound if the student does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)

	// GetByEmail retrieves a student by their exact email address.
	// Returns ErrStudentNotFound if no student has that email.
	GetByEmail(ctx context.Context, email string) (*domain.Student, error)

	// List returns every student ordered by enrolment.
	List(ctx context.Context) ([]*domain.Student, error)

	// ListByCourseCode returns the students enrolled in the course with the
	// given code. An unknown code yields an empty list.
	ListByCourseCode(ctx context.Context, code string) ([]*domain.Student, error)

	// ListByCourseID returns the students enrolled in a course, oldest first.
	ListByCourseID(ctx context.Context, courseID uuid.UUID) ([]*domain.Student, error)

	// Update persists every mutable field of an existing student.
	// Returns ErrStudentNotFound if the student does not exist and
	// ErrEmailExists if the new email is already taken.
	Update(ctx context.Context, student *domain.Student) error

	// Delete removes a student by ID.
	// Returns ErrStudentNotFound if the student does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new StudentStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) StudentStore
}
