package testdb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/phrazzld/roster-api/internal/store"
	"github.com/stretchr/testify/require"
)

// MustInsertCourse inserts a course with the given name and a code derived
// from it, failing the test on error.
func MustInsertCourse(ctx context.Context, t *testing.T, db store.DBTX, name string) *domain.Course {
	t.Helper()

	code := fmt.Sprintf("C%s", uuid.NewString()[:8])
	course, err := domain.NewCourse(domain.CourseInput{
		CourseName:     &name,
		CourseCode:     &code,
		Description:    ptr(name + " programme"),
		DurationMonths: ptr(12),
	}, time.Now())
	require.NoError(t, err, "Failed to build course")

	_, err = db.ExecContext(ctx, `
		INSERT INTO courses (id, course_name, course_code, description, duration_months, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		course.ID, course.CourseName, course.CourseCode, course.Description,
		course.DurationMonths, course.CreatedAt, course.UpdatedAt,
	)
	require.NoError(t, err, "Failed to insert course")
	return course
}

// MustInsertStudent inserts a student enrolled in courseID with the given
// email, failing the test on error.
func MustInsertStudent(
	ctx context.Context,
	t *testing.T,
	db store.DBTX,
	courseID uuid.UUID,
	email string,
	age int,
) *domain.Student {
	t.Helper()

	student, err := domain.NewStudent(domain.StudentInput{
		Name:     ptr("Test Student"),
		Age:      &age,
		Email:    &email,
		CourseID: &courseID,
	}, time.Now())
	require.NoError(t, err, "Failed to build student")

	_, err = db.ExecContext(ctx, `
		INSERT INTO students (id, name, age, email, enrollment_date, course_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		student.ID, student.Name, student.Age, student.Email, student.EnrollmentDate,
		student.CourseID, student.CreatedAt, student.UpdatedAt,
	)
	require.NoError(t, err, "Failed to insert student")
	return student
}

func ptr[T any](v T) *T { return &v }
