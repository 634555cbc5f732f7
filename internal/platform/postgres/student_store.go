package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/phrazzld/roster-api/internal/platform/logger"
	"github.com/phrazzld/roster-api/internal/store"
)

const studentColumns = `s.id, s.name, s.age, s.email, s.phone_number, s.address,
	s.enrollment_date, s.course_id, s.created_at, s.updated_at`

const studentWithCourseQuery = `
	SELECT ` + studentColumns + `,
		c.id, c.course_name, c.course_code, c.description, c.duration_months, c.created_at, c.updated_at
	FROM students s
	JOIN courses c ON c.id = s.course_id
`

// PostgresStudentStore implements the store.StudentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresStudentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStudentStore creates a new PostgreSQL implementation of the StudentStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresStudentStore(db store.DBTX, logger *slog.Logger) *PostgresStudentStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStudentStore{
		db:     db,
		logger: logger.With(slog.String("component", "student_store")),
	}
}

// Ensure PostgresStudentStore implements store.StudentStore interface
var _ store.StudentStore = (*PostgresStudentStore)(nil)

// WithTx implements store.StudentStore.WithTx
func (s *PostgresStudentStore) WithTx(tx *sql.Tx) store.StudentStore {
	return &PostgresStudentStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.StudentStore.Create
// A foreign key violation means the course vanished after it was resolved
// and is reported as store.ErrCourseNotFound.
func (s *PostgresStudentStore) Create(ctx context.Context, student *domain.Student) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := student.Validate(); err != nil {
		log.Warn("student validation failed during create",
			slog.String("error", err.Error()),
			slog.String("student_id", student.ID.String()))
		return err
	}

	query := `
		INSERT INTO students (id, name, age, email, phone_number, address,
			enrollment_date, course_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		student.ID,
		student.Name,
		student.Age,
		student.Email,
		nullString(student.PhoneNumber),
		nullString(student.Address),
		student.EnrollmentDate,
		student.CourseID,
		student.CreatedAt,
		student.UpdatedAt,
	)
	if err != nil {
		return s.writeError(log, "create", student, err)
	}

	log.Info("student created successfully",
		slog.String("student_id", student.ID.String()),
		slog.String("course_id", student.CourseID.String()))
	return nil
}

// Update implements store.StudentStore.Update
func (s *PostgresStudentStore) Update(ctx context.Context, student *domain.Student) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := student.Validate(); err != nil {
		log.Warn("student validation failed during update",
			slog.String("error", err.Error()),
			slog.String("student_id", student.ID.String()))
		return err
	}

	query := `
		UPDATE students
		SET name = $1, age = $2, email = $3, phone_number = $4, address = $5,
			course_id = $6, updated_at = $7
		WHERE id = $8
	`
	result, err := s.db.ExecContext(ctx, query,
		student.Name,
		student.Age,
		student.Email,
		nullString(student.PhoneNumber),
		nullString(student.Address),
		student.CourseID,
		student.UpdatedAt,
		student.ID,
	)
	if err != nil {
		return s.writeError(log, "update", student, err)
	}

	if err := CheckRowsAffected(result, store.ErrStudentNotFound); err != nil {
		log.Debug("student not found for update", slog.String("student_id", student.ID.String()))
		return err
	}

	log.Info("student updated successfully", slog.String("student_id", student.ID.String()))
	return nil
}

func (s *PostgresStudentStore) writeError(log *slog.Logger, op string, student *domain.Student, err error) error {
	if IsForeignKeyViolation(err) {
		log.Warn("foreign key violation during student "+op,
			slog.String("student_id", student.ID.String()),
			slog.String("course_id", student.CourseID.String()))
		return store.NewStoreError("student", op,
			fmt.Errorf("%w: course with ID %s", store.ErrCourseNotFound, student.CourseID))
	}
	return writeFailure(log, "student", op, student.ID, err)
}

// GetByID implements store.StudentStore.GetByID
func (s *PostgresStudentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	return s.getOne(ctx, `WHERE s.id = $1`, id)
}

// GetByEmail implements store.StudentStore.GetByEmail
func (s *PostgresStudentStore) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	return s.getOne(ctx, `WHERE s.email = $1`, email)
}

func (s *PostgresStudentStore) getOne(ctx context.Context, where string, arg any) (*domain.Student, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, studentWithCourseQuery+where, arg)
	student, err := scanStudentWithCourse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("student not found")
			return nil, store.ErrStudentNotFound
		}
		log.Error("failed to get student", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return student, nil
}

// List implements store.StudentStore.List
func (s *PostgresStudentStore) List(ctx context.Context) ([]*domain.Student, error) {
	return s.list(ctx, studentWithCourseQuery+`ORDER BY s.created_at, s.id`, true)
}

// ListByCourseCode implements store.StudentStore.ListByCourseCode
func (s *PostgresStudentStore) ListByCourseCode(ctx context.Context, code string) ([]*domain.Student, error) {
	return s.list(ctx, studentWithCourseQuery+`WHERE c.course_code = $1 ORDER BY s.created_at, s.id`, true, code)
}

// ListByCourseID implements store.StudentStore.ListByCourseID
func (s *PostgresStudentStore) ListByCourseID(ctx context.Context, courseID uuid.UUID) ([]*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.course_id = $1 ORDER BY s.created_at, s.id`
	return s.list(ctx, query, false, courseID)
}

func (s *PostgresStudentStore) list(ctx context.Context, query string, withCourse bool, args ...any) ([]*domain.Student, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query students", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	students := []*domain.Student{}
	for rows.Next() {
		var (
			student *domain.Student
			err     error
		)
		if withCourse {
			student, err = scanStudentWithCourse(rows)
		} else {
			student, err = scanStudent(rows)
		}
		if err != nil {
			log.Error("failed to scan student row", slog.String("error", err.Error()))
			return nil, err
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed students", slog.Int("count", len(students)))
	return students, nil
}

// Delete implements store.StudentStore.Delete
func (s *PostgresStudentStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return writeFailure(log, "student", "delete", id, err)
	}

	if err := CheckRowsAffected(result, store.ErrStudentNotFound); err != nil {
		log.Debug("student not found for deletion", slog.String("student_id", id.String()))
		return err
	}

	log.Info("student deleted successfully", slog.String("student_id", id.String()))
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func studentDest(st *domain.Student, phone, address *sql.NullString) []any {
	return []any{
		&st.ID,
		&st.Name,
		&st.Age,
		&st.Email,
		phone,
		address,
		&st.EnrollmentDate,
		&st.CourseID,
		&st.CreatedAt,
		&st.UpdatedAt,
	}
}

func scanStudent(row rowScanner) (*domain.Student, error) {
	var (
		st             domain.Student
		phone, address sql.NullString
	)
	if err := row.Scan(studentDest(&st, &phone, &address)...); err != nil {
		return nil, err
	}
	st.PhoneNumber = stringPtr(phone)
	st.Address = stringPtr(address)
	return &st, nil
}

func scanStudentWithCourse(row rowScanner) (*domain.Student, error) {
	var (
		st             domain.Student
		c              domain.Course
		phone, address sql.NullString
	)
	dest := append(studentDest(&st, &phone, &address),
		&c.ID,
		&c.CourseName,
		&c.CourseCode,
		&c.Description,
		&c.DurationMonths,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	st.PhoneNumber = stringPtr(phone)
	st.Address = stringPtr(address)
	st.Course = &c
	return &st, nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
