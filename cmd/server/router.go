package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/roster-api/internal/api"
	apiMiddleware "github.com/phrazzld/roster-api/internal/api/middleware"
	"github.com/phrazzld/roster-api/internal/api/shared"
)

// setupRouter creates the application router with all routes and middleware.
// Reads are public; writes and the account endpoint need a bearer token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService, app.logger)
	studentHandler := api.NewStudentHandler(app.studentService, app.logger)
	courseHandler := api.NewCourseHandler(app.courseService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/token/refresh", authHandler.RefreshToken)

		r.Route("/students", func(r chi.Router) {
			r.Get("/", studentHandler.ListStudents)
			r.Get("/by-email/{email}", studentHandler.GetStudentByEmail)
			r.Get("/by-course/{course_code}", studentHandler.ListStudentsByCourse)
			r.Get("/{id}", studentHandler.GetStudent)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/", studentHandler.CreateStudent)
				r.Put("/{id}", studentHandler.ReplaceStudent)
				r.Patch("/{id}", studentHandler.PatchStudent)
				r.Delete("/{id}", studentHandler.DeleteStudent)
			})
		})

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", courseHandler.ListCourses)
			r.Get("/{id}", courseHandler.GetCourse)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/", courseHandler.CreateCourse)
				r.Delete("/{id}", courseHandler.DeleteCourse)
			})
		})

		r.With(authMiddleware.Authenticate).Get("/users/me", authHandler.Me)
	})

	r.Get("/health", app.handleHealth)

	return r
}

// handleHealth reports whether the database is reachable.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := app.db.PingContext(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
