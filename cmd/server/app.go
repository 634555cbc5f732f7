package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/roster-api/internal/config"
	"github.com/phrazzld/roster-api/internal/platform/postgres"
	"github.com/phrazzld/roster-api/internal/service"
	"github.com/phrazzld/roster-api/internal/service/auth"
	"github.com/phrazzld/roster-api/internal/store"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	studentStore store.StudentStore
	courseStore  store.CourseStore
	userStore    store.UserStore

	// Services
	jwtService     auth.JWTService
	studentService service.StudentService
	courseService  service.CourseService
	userService    service.UserService
}

// newApplication wires stores and services over an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.studentStore = postgres.NewPostgresStudentStore(db, logger)
	app.courseStore = postgres.NewPostgresCourseStore(db, logger)
	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BCryptCost, logger)

	app.studentService, err = service.NewStudentService(app.studentStore, app.courseStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create student service: %w", err)
	}
	app.courseService, err = service.NewCourseService(app.courseStore, app.studentStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create course service: %w", err)
	}
	app.userService = service.NewUserService(app.userStore, auth.NewBcryptVerifier(), db, logger)

	return app, nil
}
