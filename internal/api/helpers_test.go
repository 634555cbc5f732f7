package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/api/shared"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testNow = time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

func testCourse(name string) *domain.Course {
	return &domain.Course{
		ID:             uuid.New(),
		CourseName:     name,
		CourseCode:     "CS101",
		Description:    "Programming and systems",
		DurationMonths: 48,
		CreatedAt:      testNow,
		UpdatedAt:      testNow,
	}
}

func testStudent(course *domain.Course) *domain.Student {
	return &domain.Student{
		ID:             uuid.New(),
		Name:           "Asha Verma",
		Age:            22,
		Email:          "asha@iitd.ac.in",
		PhoneNumber:    ptr("9876543210"),
		EnrollmentDate: domain.DateOf(testNow),
		CourseID:       course.ID,
		CreatedAt:      testNow,
		UpdatedAt:      testNow,
		Course:         course,
	}
}

// newTestRouter mounts the handlers the way the server does, minus auth.
// Requests carry userID in context when it is non-nil.
func newTestRouter(students *StudentHandler, courses *CourseHandler, auth *AuthHandler, userID uuid.UUID) http.Handler {
	r := chi.NewRouter()
	if userID != uuid.Nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
	}

	r.Route("/api", func(r chi.Router) {
		if auth != nil {
			r.Post("/register", auth.Register)
			r.Post("/login", auth.Login)
			r.Post("/token/refresh", auth.RefreshToken)
			r.Get("/users/me", auth.Me)
		}
		if students != nil {
			r.Route("/students", func(r chi.Router) {
				r.Get("/", students.ListStudents)
				r.Post("/", students.CreateStudent)
				r.Get("/by-email/{email}", students.GetStudentByEmail)
				r.Get("/by-course/{course_code}", students.ListStudentsByCourse)
				r.Get("/{id}", students.GetStudent)
				r.Put("/{id}", students.ReplaceStudent)
				r.Patch("/{id}", students.PatchStudent)
				r.Delete("/{id}", students.DeleteStudent)
			})
		}
		if courses != nil {
			r.Route("/courses", func(r chi.Router) {
				r.Get("/", courses.ListCourses)
				r.Post("/", courses.CreateCourse)
				r.Get("/{id}", courses.GetCourse)
				r.Delete("/{id}", courses.DeleteCourse)
			})
		}
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&v), rec.Body.String())
	return v
}
