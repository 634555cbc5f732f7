package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/phrazzld/roster-api/internal/store"
)

// StudentService provides student record operations.
type StudentService interface {
	// CreateStudent validates in and enrols a new student. The enrollment date
	// is today's date in UTC.
	CreateStudent(ctx context.Context, in domain.StudentInput) (*domain.Student, error)

	// GetStudent retrieves a student, with their course, by ID.
	GetStudent(ctx context.Context, id uuid.UUID) (*domain.Student, error)

	// GetStudentByEmail retrieves a student, with their course, by exact email.
	GetStudentByEmail(ctx context.Context, email string) (*domain.Student, error)

	// ListStudents returns every student with their course.
	ListStudents(ctx context.Context) ([]*domain.Student, error)

	// ListStudentsByCourseCode returns the students enrolled in the course with
	// the given code, or an empty list if no course has it.
	ListStudentsByCourseCode(ctx context.Context, code string) ([]*domain.Student, error)

	// ReplaceStudent overwrites a student with a full set of fields.
	// Optional fields absent from in keep their stored values.
	ReplaceStudent(ctx context.Context, id uuid.UUID, in domain.StudentInput) (*domain.Student, error)

	// PatchStudent updates only the fields present in in.
	PatchStudent(ctx context.Context, id uuid.UUID, in domain.StudentInput) (*domain.Student, error)

	// DeleteStudent removes a student.
	DeleteStudent(ctx context.Context, id uuid.UUID) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students store.StudentStore
	courses  store.CourseStore
	db       *sql.DB
	now      func() time.Time
	logger   *slog.Logger
}

// StudentServiceOption customizes a StudentService.
type StudentServiceOption func(*studentServiceImpl)

// WithClock replaces the clock used to stamp enrollment dates and timestamps.
func WithClock(now func() time.Time) StudentServiceOption {
	return func(s *studentServiceImpl) {
		s.now = now
	}
}

// NewStudentService creates a new StudentService.
func NewStudentService(
	students store.StudentStore,
	courses store.CourseStore,
	db *sql.DB,
	logger *slog.Logger,
	opts ...StudentServiceOption,
) (StudentService, error) {
	if students == nil {
		return nil, fmt.Errorf("student store cannot be nil")
	}
	if courses == nil {
		return nil, fmt.Errorf("course store cannot be nil")
	}
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &studentServiceImpl{
		students: students,
		courses:  courses,
		db:       db,
		now:      time.Now,
		logger:   logger.With("component", "student_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CreateStudent implements StudentService.CreateStudent
func (s *studentServiceImpl) CreateStudent(ctx context.Context, in domain.StudentInput) (*domain.Student, error) {
	var student *domain.Student

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		students := s.students.WithTx(tx)
		courses := s.courses.WithTx(tx)

		prepared, course, err := s.prepare(ctx, students, courses, in, domain.ModeFull, uuid.Nil)
		if err != nil {
			return err
		}

		student, err = domain.NewStudent(prepared, s.now())
		if err != nil {
			return err
		}
		if err := students.Create(ctx, student); err != nil {
			return courseVanished(err)
		}
		student.Course = course
		return nil
	})
	if err != nil {
		s.logWriteError("create", uuid.Nil, err)
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	s.logger.Info("student enrolled",
		"student_id", student.ID,
		"course_id", student.CourseID)
	return student, nil
}

// ReplaceStudent implements StudentService.ReplaceStudent
func (s *studentServiceImpl) ReplaceStudent(
	ctx context.Context,
	id uuid.UUID,
	in domain.StudentInput,
) (*domain.Student, error) {
	return s.update(ctx, id, in, domain.ModeFull)
}

// PatchStudent implements StudentService.PatchStudent
func (s *studentServiceImpl) PatchStudent(
	ctx context.Context,
	id uuid.UUID,
	in domain.StudentInput,
) (*domain.Student, error) {
	return s.update(ctx, id, in, domain.ModePartial)
}

func (s *studentServiceImpl) update(
	ctx context.Context,
	id uuid.UUID,
	in domain.StudentInput,
	mode domain.InputMode,
) (*domain.Student, error) {
	var student *domain.Student

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		students := s.students.WithTx(tx)
		courses := s.courses.WithTx(tx)

		existing, err := students.GetByID(ctx, id)
		if err != nil {
			return err
		}

		prepared, course, err := s.prepare(ctx, students, courses, in, mode, id)
		if err != nil {
			return err
		}

		existing.Apply(prepared)
		existing.UpdatedAt = s.now().UTC()
		if err := students.Update(ctx, existing); err != nil {
			return courseVanished(err)
		}
		if course != nil {
			existing.Course = course
		}
		student = existing
		return nil
	})
	if err != nil {
		s.logWriteError("update", id, err)
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	s.logger.Info("student updated", "student_id", id)
	return student, nil
}

// prepare runs field validation, then the checks that need storage: email
// uniqueness, course existence and the course age rule. Failures from every
// stage are merged into one *domain.ValidationError. self is the ID of the
// student being updated, or uuid.Nil on create. The returned course is nil
// when the input did not name one.
func (s *studentServiceImpl) prepare(
	ctx context.Context,
	students store.StudentStore,
	courses store.CourseStore,
	in domain.StudentInput,
	mode domain.InputMode,
	self uuid.UUID,
) (domain.StudentInput, *domain.Course, error) {
	prepared, err := domain.ValidateStudentInput(in, mode)
	ve := &domain.ValidationError{}
	if err != nil && !errors.As(err, &ve) {
		return prepared, nil, err
	}

	if prepared.Email != nil {
		found, err := students.GetByEmail(ctx, *prepared.Email)
		switch {
		case err == nil:
			if found.ID != self {
				ve.Add("email", domain.ErrEmailTaken)
			}
		case !errors.Is(err, store.ErrStudentNotFound):
			return prepared, nil, err
		}
	}

	var course *domain.Course
	if prepared.CourseID != nil {
		course, err = courses.GetByID(ctx, *prepared.CourseID)
		switch {
		case errors.Is(err, store.ErrCourseNotFound):
			ve.Add("course_id", domain.ErrCourseNotExist)
		case err != nil:
			return prepared, nil, err
		}
	}

	if !ve.Empty() {
		return prepared, nil, ve
	}

	// The cross-field rule needs both values from the payload itself. A partial
	// update carrying only one of them is not re-checked against stored data.
	if prepared.Age != nil && course != nil {
		if err := domain.CheckCourseAge(course.CourseName, *prepared.Age); err != nil {
			return prepared, nil, domain.NewValidationError(domain.NonFieldErrorsKey, err)
		}
	}

	return prepared, course, nil
}

// courseVanished turns a foreign key failure on write, which means the course
// was deleted after it was resolved, into the same field error a missing
// course produces during validation.
func courseVanished(err error) error {
	if errors.Is(err, store.ErrCourseNotFound) {
		return domain.NewValidationError("course_id", domain.ErrCourseNotExist)
	}
	return err
}

func (s *studentServiceImpl) logWriteError(op string, id uuid.UUID, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), store.IsDuplicateError(err), store.IsNotFoundError(err):
		s.logger.Debug("student "+op+" rejected", "student_id", id, "error", err)
	default:
		s.logger.Error("failed to "+op+" student", "student_id", id, "error", err)
	}
}

// GetStudent implements StudentService.GetStudent
func (s *studentServiceImpl) GetStudent(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve student: %w", err)
	}
	return student, nil
}

// GetStudentByEmail implements StudentService.GetStudentByEmail
func (s *studentServiceImpl) GetStudentByEmail(ctx context.Context, email string) (*domain.Student, error) {
	student, err := s.students.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve student by email: %w", err)
	}
	return student, nil
}

// ListStudents implements StudentService.ListStudents
func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*domain.Student, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		s.logger.Error("failed to list students", "error", err)
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

// ListStudentsByCourseCode implements StudentService.ListStudentsByCourseCode
func (s *studentServiceImpl) ListStudentsByCourseCode(ctx context.Context, code string) ([]*domain.Student, error) {
	students, err := s.students.ListByCourseCode(ctx, code)
	if err != nil {
		s.logger.Error("failed to list students by course code", "course_code", code, "error", err)
		return nil, fmt.Errorf("failed to list students by course code: %w", err)
	}
	return students, nil
}

// DeleteStudent implements StudentService.DeleteStudent
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	if err := s.students.Delete(ctx, id); err != nil {
		s.logWriteError("delete", id, err)
		return fmt.Errorf("failed to delete student: %w", err)
	}
	s.logger.Info("student deleted", "student_id", id)
	return nil
}
