package service_test

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newMockDB returns a sqlmock-backed *sql.DB. Services only use it to open
// transactions, so tests declare Begin/Commit/Rollback expectations.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

var fixedNow = time.Date(2024, 7, 15, 10, 30, 0, 0, time.UTC)

func testCourse(name, code string) *domain.Course {
	return &domain.Course{
		ID:             uuid.New(),
		CourseName:     name,
		CourseCode:     code,
		Description:    name + " fundamentals",
		DurationMonths: 12,
		CreatedAt:      fixedNow.Add(-48 * time.Hour),
		UpdatedAt:      fixedNow.Add(-48 * time.Hour),
	}
}

func testStudent(course *domain.Course) *domain.Student {
	return &domain.Student{
		ID:             uuid.New(),
		Name:           "Asha Verma",
		Age:            24,
		Email:          "asha@du.ac.in",
		EnrollmentDate: domain.DateOf(fixedNow.Add(-24 * time.Hour)),
		CourseID:       course.ID,
		CreatedAt:      fixedNow.Add(-24 * time.Hour),
		UpdatedAt:      fixedNow.Add(-24 * time.Hour),
		Course:         course,
	}
}
