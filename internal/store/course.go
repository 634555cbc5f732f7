package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/domain"
)

// CourseStore defines the interface for course data persistence.
type CourseStore interface {
	// Create saves a new course to the store.
	// Returns ErrCourseCodeExists or ErrCourseNameExists if a unique column clashes.
	Create(ctx context.Context, course *domain.Course) error

	// GetByID retrieves a course by its unique ID.
	// Returns ErrCourseNotFound if the course does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)

	// GetByCode retrieves a course by its course code.
	// Returns ErrCourseNotFound if no course has that code.
	GetByCode(ctx context.Context, code string) (*domain.Course, error)

	// GetByName retrieves a course by its exact course name.
	// Returns ErrCourseNotFound if no course has that name.
	GetByName(ctx context.Context, name string) (*domain.Course, error)

	// List returns every course ordered by creation time.
	List(ctx context.Context) ([]*domain.Course, error)

	// Delete removes a course and, through the foreign key cascade, every
	// student enrolled in it. Returns ErrCourseNotFound if the course does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new CourseStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CourseStore
}
