package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/phrazzld/roster-api/internal/mocks"
	"github.com/phrazzld/roster-api/internal/service"
	"github.com/phrazzld/roster-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseRouter(svc *mocks.MockCourseService) http.Handler {
	return newTestRouter(nil, NewCourseHandler(svc, discardLogger()), nil, uuid.New())
}

func TestCreateCourseHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &mocks.MockCourseService{
			CreateCourseFn: func(ctx context.Context, in domain.CourseInput) (*domain.Course, error) {
				require.NotNil(t, in.DurationMonths)
				assert.Equal(t, 48, *in.DurationMonths)
				c := testCourse(*in.CourseName)
				c.CourseCode = *in.CourseCode
				return c, nil
			},
		}

		rec := doRequest(t, courseRouter(svc), http.MethodPost, "/api/courses",
			`{"course_name":"Computer Science","course_code":"CS101","description":"Programming","duration_months":48}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		resp := decodeBody[CourseResponse](t, rec)
		assert.Equal(t, "Computer Science", resp.CourseName)
		assert.Equal(t, "CS101", resp.CourseCode)
	})

	t.Run("duplicate code reported on field", func(t *testing.T) {
		svc := &mocks.MockCourseService{
			DefaultError: domain.NewValidationError("course_code", domain.ErrCourseCodeTaken),
		}

		rec := doRequest(t, courseRouter(svc), http.MethodPost, "/api/courses", `{"course_code":"CS101"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"course_code":["course code must be unique"]}`, rec.Body.String())
	})
}

func TestGetCourseHandler(t *testing.T) {
	course := testCourse("Data Science")
	enrolled := []*domain.Student{testStudent(course), testStudent(course)}

	svc := &mocks.MockCourseService{
		GetCourseDetailFn: func(ctx context.Context, id uuid.UUID) (*service.CourseDetail, error) {
			if id != course.ID {
				return nil, fmt.Errorf("failed to retrieve course: %w", store.ErrCourseNotFound)
			}
			return &service.CourseDetail{Course: course, Students: enrolled}, nil
		},
	}
	router := courseRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/api/courses/"+course.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	detail := decodeBody[CourseDetailResponse](t, rec)
	assert.Equal(t, course.CourseName, detail.CourseName)
	require.Len(t, detail.Students, 2)
	assert.Equal(t, enrolled[0].ID, detail.Students[0].ID)

	rec = doRequest(t, router, http.MethodGet, "/api/courses/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Course not found"}`, rec.Body.String())
}

func TestListAndDeleteCourseHandlers(t *testing.T) {
	course := testCourse("Physics")
	svc := &mocks.MockCourseService{
		Courses: []*domain.Course{course},
		DeleteCourseFn: func(ctx context.Context, id uuid.UUID) error {
			if id == course.ID {
				return nil
			}
			return store.ErrCourseNotFound
		},
	}
	router := courseRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/api/courses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]CourseResponse](t, rec), 1)

	rec = doRequest(t, router, http.MethodDelete, "/api/courses/"+course.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/courses/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCourseHandlerDurationTypeError(t *testing.T) {
	svc := &mocks.MockCourseService{
		CreateCourseFn: func(ctx context.Context, in domain.CourseInput) (*domain.Course, error) {
			t.Error("service must not be called")
			return nil, nil
		},
	}

	rec := doRequest(t, courseRouter(svc), http.MethodPost, "/api/courses",
		`{"course_name":"AI","course_code":"AI100","description":"Machine learning","duration_months":"12"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, map[string][]string{
		"course_name":     {domain.ErrCourseNameTooShort.Error()},
		"duration_months": {domain.ErrNotInteger.Error()},
	}, decodeBody[map[string][]string](t, rec))
}
