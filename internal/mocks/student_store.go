package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/phrazzld/roster-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockStudentStore is a mock of store.StudentStore for use with testify/mock.
// WithTx returns the receiver, so expectations hold inside transactions.
type MockStudentStore struct {
	mock.Mock
}

var _ store.StudentStore = (*MockStudentStore)(nil)

// Create is a mock implementation of store.StudentStore.Create
func (m *MockStudentStore) Create(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

// GetByID is a mock implementation of store.StudentStore.GetByID
func (m *MockStudentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*domain.Student); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByEmail is a mock implementation of store.StudentStore.GetByEmail
func (m *MockStudentStore) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	args := m.Called(ctx, email)
	if s, ok := args.Get(0).(*domain.Student); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

// List is a mock implementation of store.StudentStore.List
func (m *MockStudentStore) List(ctx context.Context) ([]*domain.Student, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).([]*domain.Student); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByCourseCode is a mock implementation of store.StudentStore.ListByCourseCode
func (m *MockStudentStore) ListByCourseCode(ctx context.Context, code string) ([]*domain.Student, error) {
	args := m.Called(ctx, code)
	if s, ok := args.Get(0).([]*domain.Student); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByCourseID is a mock implementation of store.StudentStore.ListByCourseID
func (m *MockStudentStore) ListByCourseID(ctx context.Context, courseID uuid.UUID) ([]*domain.Student, error) {
	args := m.Called(ctx, courseID)
	if s, ok := args.Get(0).([]*domain.Student); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.StudentStore.Update
func (m *MockStudentStore) Update(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

// Delete is a mock implementation of store.StudentStore.Delete
func (m *MockStudentStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx is a mock implementation of store.StudentStore.WithTx
func (m *MockStudentStore) WithTx(tx *sql.Tx) store.StudentStore {
	return m
}
