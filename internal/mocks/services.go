package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/phrazzld/roster-api/internal/service"
)

// MockStudentService implements service.StudentService for testing
type MockStudentService struct {
	CreateStudentFn            func(ctx context.Context, in domain.StudentInput) (*domain.Student, error)
	GetStudentFn               func(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	GetStudentByEmailFn        func(ctx context.Context, email string) (*domain.Student, error)
	ListStudentsFn             func(ctx context.Context) ([]*domain.Student, error)
	ListStudentsByCourseCodeFn func(ctx context.Context, code string) ([]*domain.Student, error)
	ReplaceStudentFn           func(ctx context.Context, id uuid.UUID, in domain.StudentInput) (*domain.Student, error)
	PatchStudentFn             func(ctx context.Context, id uuid.UUID, in domain.StudentInput) (*domain.Student, error)
	DeleteStudentFn            func(ctx context.Context, id uuid.UUID) error

	// Default return values
	Student      *domain.Student
	Students     []*domain.Student
	DefaultError error
}

var _ service.StudentService = (*MockStudentService)(nil)

// CreateStudent implements service.StudentService
func (m *MockStudentService) CreateStudent(ctx context.Context, in domain.StudentInput) (*domain.Student, error) {
	if m.CreateStudentFn != nil {
		return m.CreateStudentFn(ctx, in)
	}
	return m.Student, m.DefaultError
}

// GetStudent implements service.StudentService
func (m *MockStudentService) GetStudent(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	if m.GetStudentFn != nil {
		return m.GetStudentFn(ctx, id)
	}
	return m.Student, m.DefaultError
}

// GetStudentByEmail implements service.StudentService
func (m *MockStudentService) GetStudentByEmail(ctx context.Context, email string) (*domain.Student, error) {
	if m.GetStudentByEmailFn != nil {
		return m.GetStudentByEmailFn(ctx, email)
	}
	return m.Student, m.DefaultError
}

// ListStudents implements service.StudentService
func (m *MockStudentService) ListStudents(ctx context.Context) ([]*domain.Student, error) {
	if m.ListStudentsFn != nil {
		return m.ListStudentsFn(ctx)
	}
	return m.Students, m.DefaultError
}

// ListStudentsByCourseCode implements service.StudentService
func (m *MockStudentService) ListStudentsByCourseCode(ctx context.Context, code string) ([]*domain.Student, error) {
	if m.ListStudentsByCourseCodeFn != nil {
		return m.ListStudentsByCourseCodeFn(ctx, code)
	}
	return m.Students, m.DefaultError
}

// ReplaceStudent implements service.StudentService
func (m *MockStudentService) ReplaceStudent(ctx context.Context, id uuid.UUID, in domain.StudentInput) (*domain.Student, error) {
	if m.ReplaceStudentFn != nil {
		return m.ReplaceStudentFn(ctx, id, in)
	}
	return m.Student, m.DefaultError
}

// PatchStudent implements service.StudentService
func (m *MockStudentService) PatchStudent(ctx context.Context, id uuid.UUID, in domain.StudentInput) (*domain.Student, error) {
	if m.PatchStudentFn != nil {
		return m.PatchStudentFn(ctx, id, in)
	}
	return m.Student, m.DefaultError
}

// DeleteStudent implements service.StudentService
func (m *MockStudentService) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	if m.DeleteStudentFn != nil {
		return m.DeleteStudentFn(ctx, id)
	}
	return m.DefaultError
}

// MockCourseService implements service.CourseService for testing
type MockCourseService struct {
	CreateCourseFn    func(ctx context.Context, in domain.CourseInput) (*domain.Course, error)
	GetCourseFn       func(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	GetCourseDetailFn func(ctx context.Context, id uuid.UUID) (*service.CourseDetail, error)
	ListCoursesFn     func(ctx context.Context) ([]*domain.Course, error)
	DeleteCourseFn    func(ctx context.Context, id uuid.UUID) error

	// Default return values
	Course       *domain.Course
	Courses      []*domain.Course
	Detail       *service.CourseDetail
	DefaultError error
}

var _ service.CourseService = (*MockCourseService)(nil)

// CreateCourse implements service.CourseService
func (m *MockCourseService) CreateCourse(ctx context.Context, in domain.CourseInput) (*domain.Course, error) {
	if m.CreateCourseFn != nil {
		return m.CreateCourseFn(ctx, in)
	}
	return m.Course, m.DefaultError
}

// GetCourse implements service.CourseService
func (m *MockCourseService) GetCourse(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	if m.GetCourseFn != nil {
		return m.GetCourseFn(ctx, id)
	}
	return m.Course, m.DefaultError
}

// GetCourseDetail implements service.CourseService
func (m *MockCourseService) GetCourseDetail(ctx context.Context, id uuid.UUID) (*service.CourseDetail, error) {
	if m.GetCourseDetailFn != nil {
		return m.GetCourseDetailFn(ctx, id)
	}
	return m.Detail, m.DefaultError
}

// ListCourses implements service.CourseService
func (m *MockCourseService) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	if m.ListCoursesFn != nil {
		return m.ListCoursesFn(ctx)
	}
	return m.Courses, m.DefaultError
}

// DeleteCourse implements service.CourseService
func (m *MockCourseService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCourseFn != nil {
		return m.DeleteCourseFn(ctx, id)
	}
	return m.DefaultError
}

// MockUserService implements service.UserService for testing
type MockUserService struct {
	RegisterFn     func(ctx context.Context, username, email, password string) (*domain.User, error)
	AuthenticateFn func(ctx context.Context, username, password string) (*domain.User, error)
	GetUserFn      func(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// Default return values
	User         *domain.User
	DefaultError error
}

var _ service.UserService = (*MockUserService)(nil)

// Register implements service.UserService
func (m *MockUserService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, username, email, password)
	}
	return m.User, m.DefaultError
}

// Authenticate implements service.UserService
func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, username, password)
	}
	return m.User, m.DefaultError
}

// GetUser implements service.UserService
func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return m.User, m.DefaultError
}
