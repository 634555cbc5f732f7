package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/config"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/phrazzld/roster-api/internal/mocks"
	"github.com/phrazzld/roster-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	app     *application
	sqlMock sqlmock.Sqlmock
	logs    *testutils.TestSlogHandler
	courses *mocks.MockCourseService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, sqlMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	jwtService, err := testutils.CreateTestJWTService()
	require.NoError(t, err)

	logs := testutils.NewTestSlogHandler()
	courses := &mocks.MockCourseService{Courses: []*domain.Course{}}

	return &testApp{
		app: &application{
			config:         &config.Config{Auth: testutils.TestAuthConfig()},
			logger:         slog.New(logs),
			db:             db,
			jwtService:     jwtService,
			studentService: &mocks.MockStudentService{Students: []*domain.Student{}},
			courseService:  courses,
			userService:    &mocks.MockUserService{},
		},
		sqlMock: sqlMock,
		logs:    logs,
		courses: courses,
	}
}

func serve(h http.Handler, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		ta := newTestApp(t)
		ta.sqlMock.ExpectPing()

		rec := serve(ta.app.setupRouter(), http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
		require.NoError(t, ta.sqlMock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		ta := newTestApp(t)
		ta.sqlMock.ExpectPing().WillReturnError(errors.New("connection refused"))

		rec := serve(ta.app.setupRouter(), http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "Database unavailable")
	})
}

func TestRouterAuthBoundaries(t *testing.T) {
	ta := newTestApp(t)
	router := ta.app.setupRouter()

	validHeader, err := testutils.GenerateAuthHeader(uuid.New())
	require.NoError(t, err)
	courseID := uuid.New()

	tests := []struct {
		name   string
		method string
		path   string
		header string
		want   int
	}{
		{"list students is public", http.MethodGet, "/api/students", "", http.StatusOK},
		{"list courses is public", http.MethodGet, "/api/courses", "", http.StatusOK},
		{"create student needs token", http.MethodPost, "/api/students", "", http.StatusUnauthorized},
		{"patch student needs token", http.MethodPatch, "/api/students/" + uuid.NewString(), "", http.StatusUnauthorized},
		{"delete course needs token", http.MethodDelete, "/api/courses/" + courseID.String(), "", http.StatusUnauthorized},
		{"garbage token rejected", http.MethodDelete, "/api/courses/" + courseID.String(), "Bearer nope", http.StatusUnauthorized},
		{"delete course with token", http.MethodDelete, "/api/courses/" + courseID.String(), validHeader, http.StatusNoContent},
		{"me needs token", http.MethodGet, "/api/users/me", "", http.StatusUnauthorized},
		{"unknown route", http.MethodGet, "/api/nothing", "", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(router, tc.method, tc.path, tc.header)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRouterLogsCompletedRequests(t *testing.T) {
	ta := newTestApp(t)
	ta.courses.ListCoursesFn = func(ctx context.Context) ([]*domain.Course, error) {
		return []*domain.Course{}, nil
	}

	rec := serve(ta.app.setupRouter(), http.MethodGet, "/api/courses", "")
	require.Equal(t, http.StatusOK, rec.Code)

	entry, ok := ta.logs.Find("request completed")
	require.True(t, ok)
	assert.Equal(t, rec.Header().Get("X-Trace-ID"), entry["trace_id"])
	assert.Equal(t, int64(http.StatusOK), entry["status"])
	assert.Equal(t, "/api/courses", entry["path"])
}
