package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/phrazzld/roster-api/internal/platform/logger"
	"github.com/phrazzld/roster-api/internal/store"
)

const courseColumns = `id, course_name, course_code, description, duration_months, created_at, updated_at`

// PostgresCourseStore implements the store.CourseStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCourseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCourseStore creates a new PostgreSQL implementation of the CourseStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCourseStore(db store.DBTX, logger *slog.Logger) *PostgresCourseStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCourseStore{
		db:     db,
		logger: logger.With(slog.String("component", "course_store")),
	}
}

// Ensure PostgresCourseStore implements store.CourseStore interface
var _ store.CourseStore = (*PostgresCourseStore)(nil)

// WithTx implements store.CourseStore.WithTx
func (s *PostgresCourseStore) WithTx(tx *sql.Tx) store.CourseStore {
	return &PostgresCourseStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.CourseStore.Create
func (s *PostgresCourseStore) Create(ctx context.Context, course *domain.Course) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := course.Validate(); err != nil {
		log.Warn("course validation failed during create",
			slog.String("error", err.Error()),
			slog.String("course_id", course.ID.String()))
		return err
	}

	query := `
		INSERT INTO courses (` + courseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		course.ID,
		course.CourseName,
		course.CourseCode,
		course.Description,
		course.DurationMonths,
		course.CreatedAt,
		course.UpdatedAt,
	)
	if err != nil {
		return writeFailure(log, "course", "create", course.ID, err)
	}

	log.Info("course created successfully",
		slog.String("course_id", course.ID.String()),
		slog.String("course_code", course.CourseCode))
	return nil
}

// GetByID implements store.CourseStore.GetByID
func (s *PostgresCourseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	return s.getOne(ctx, "id", id)
}

// GetByCode implements store.CourseStore.GetByCode
func (s *PostgresCourseStore) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	return s.getOne(ctx, "course_code", code)
}

// GetByName implements store.CourseStore.GetByName
func (s *PostgresCourseStore) GetByName(ctx context.Context, name string) (*domain.Course, error) {
	return s.getOne(ctx, "course_name", name)
}

// getOne loads the single course whose column equals value. column is one of
// a fixed set of identifiers chosen by this file, never client input.
func (s *PostgresCourseStore) getOne(ctx context.Context, column string, value any) (*domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + courseColumns + ` FROM courses WHERE ` + column + ` = $1`

	var c domain.Course
	err := s.db.QueryRowContext(ctx, query, value).Scan(
		&c.ID,
		&c.CourseName,
		&c.CourseCode,
		&c.Description,
		&c.DurationMonths,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("course not found", slog.String("lookup", column))
			return nil, store.ErrCourseNotFound
		}
		log.Error("failed to get course",
			slog.String("lookup", column),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &c, nil
}

// List implements store.CourseStore.List
func (s *PostgresCourseStore) List(ctx context.Context) ([]*domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list courses", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	courses := []*domain.Course{}
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(
			&c.ID,
			&c.CourseName,
			&c.CourseCode,
			&c.Description,
			&c.DurationMonths,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			log.Error("failed to scan course row", slog.String("error", err.Error()))
			return nil, err
		}
		courses = append(courses, &c)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return courses, nil
}

// Delete implements store.CourseStore.Delete
// Enrolled students are removed by the ON DELETE CASCADE foreign key.
func (s *PostgresCourseStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return writeFailure(log, "course", "delete", id, err)
	}

	if err := CheckRowsAffected(result, store.ErrCourseNotFound); err != nil {
		log.Debug("course not found for deletion", slog.String("course_id", id.String()))
		return err
	}

	log.Info("course deleted successfully", slog.String("course_id", id.String()))
	return nil
}
