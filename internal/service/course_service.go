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

// CourseDetail is a course together with the students enrolled in it,
// oldest enrolment first.
type CourseDetail struct {
	Course   *domain.Course
	Students []*domain.Student
}

// CourseService provides course record operations.
type CourseService interface {
	// CreateCourse validates in and stores a new course.
	CreateCourse(ctx context.Context, in domain.CourseInput) (*domain.Course, error)

	// GetCourse retrieves a course by ID.
	GetCourse(ctx context.Context, id uuid.UUID) (*domain.Course, error)

	// GetCourseDetail retrieves a course and its enrolled students.
	GetCourseDetail(ctx context.Context, id uuid.UUID) (*CourseDetail, error)

	// ListCourses returns every course.
	ListCourses(ctx context.Context) ([]*domain.Course, error)

	// DeleteCourse removes a course and every student enrolled in it.
	DeleteCourse(ctx context.Context, id uuid.UUID) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courses  store.CourseStore
	students store.StudentStore
	db       *sql.DB
	now      func() time.Time
	logger   *slog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(
	courses store.CourseStore,
	students store.StudentStore,
	db *sql.DB,
	logger *slog.Logger,
) (CourseService, error) {
	if courses == nil {
		return nil, fmt.Errorf("course store cannot be nil")
	}
	if students == nil {
		return nil, fmt.Errorf("student store cannot be nil")
	}
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &courseServiceImpl{
		courses:  courses,
		students: students,
		db:       db,
		now:      time.Now,
		logger:   logger.With("component", "course_service"),
	}, nil
}

// CreateCourse implements CourseService.CreateCourse
func (s *courseServiceImpl) CreateCourse(ctx context.Context, in domain.CourseInput) (*domain.Course, error) {
	var course *domain.Course

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		courses := s.courses.WithTx(tx)

		prepared, err := domain.ValidateCourseInput(in)
		ve := &domain.ValidationError{}
		if err != nil && !errors.As(err, &ve) {
			return err
		}

		if prepared.CourseCode != nil {
			taken, err := exists(courses.GetByCode(ctx, *prepared.CourseCode))
			if err != nil {
				return err
			}
			if taken {
				ve.Add("course_code", domain.ErrCourseCodeTaken)
			}
		}
		if prepared.CourseName != nil {
			taken, err := exists(courses.GetByName(ctx, *prepared.CourseName))
			if err != nil {
				return err
			}
			if taken {
				ve.Add("course_name", domain.ErrCourseNameTaken)
			}
		}
		if !ve.Empty() {
			return ve
		}

		course, err = domain.NewCourse(prepared, s.now())
		if err != nil {
			return err
		}
		return courses.Create(ctx, course)
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) || store.IsDuplicateError(err) {
			s.logger.Debug("course create rejected", "error", err)
		} else {
			s.logger.Error("failed to create course", "error", err)
		}
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	s.logger.Info("course created",
		"course_id", course.ID,
		"course_code", course.CourseCode)
	return course, nil
}

// exists folds a course lookup into a found flag, treating not-found as false.
func exists(_ *domain.Course, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrCourseNotFound):
		return false, nil
	default:
		return false, err
	}
}

// GetCourse implements CourseService.GetCourse
func (s *courseServiceImpl) GetCourse(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve course: %w", err)
	}
	return course, nil
}

// GetCourseDetail implements CourseService.GetCourseDetail
func (s *courseServiceImpl) GetCourseDetail(ctx context.Context, id uuid.UUID) (*CourseDetail, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve course: %w", err)
	}

	students, err := s.students.ListByCourseID(ctx, id)
	if err != nil {
		s.logger.Error("failed to list course students", "course_id", id, "error", err)
		return nil, fmt.Errorf("failed to list course students: %w", err)
	}

	return &CourseDetail{Course: course, Students: students}, nil
}

// ListCourses implements CourseService.ListCourses
func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		s.logger.Error("failed to list courses", "error", err)
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// DeleteCourse implements CourseService.DeleteCourse
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("course not found for deletion", "course_id", id)
		} else {
			s.logger.Error("failed to delete course", "course_id", id, "error", err)
		}
		return fmt.Errorf("failed to delete course: %w", err)
	}

	s.logger.Info("course deleted with its students", "course_id", id)
	return nil
}
