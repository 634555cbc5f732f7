package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/phrazzld/roster-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockCourseStore is a mock of store.CourseStore for use with testify/mock.
type MockCourseStore struct {
	mock.Mock
}

var _ store.CourseStore = (*MockCourseStore)(nil)

// Create is a mock implementation of store.CourseStore.Create
func (m *MockCourseStore) Create(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseStore) one(args mock.Arguments) (*domain.Course, error) {
	if c, ok := args.Get(0).(*domain.Course); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.CourseStore.GetByID
func (m *MockCourseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	return m.one(m.Called(ctx, id))
}

// GetByCode is a mock implementation of store.CourseStore.GetByCode
func (m *MockCourseStore) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	return m.one(m.Called(ctx, code))
}

// GetByName is a mock implementation of store.CourseStore.GetByName
func (m *MockCourseStore) GetByName(ctx context.Context, name string) (*domain.Course, error) {
	return m.one(m.Called(ctx, name))
}

// List is a mock implementation of store.CourseStore.List
func (m *MockCourseStore) List(ctx context.Context) ([]*domain.Course, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).([]*domain.Course); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of store.CourseStore.Delete
func (m *MockCourseStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx is a mock implementation of store.CourseStore.WithTx
func (m *MockCourseStore) WithTx(tx *sql.Tx) store.CourseStore {
	return m
}
