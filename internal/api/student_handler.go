package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/api/shared"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/phrazzld/roster-api/internal/platform/logger"
	"github.com/phrazzld/roster-api/internal/service"
)

// StudentHandler handles student record requests.
type StudentHandler struct {
	studentService service.StudentService
	logger         *slog.Logger
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService service.StudentService, logger *slog.Logger) *StudentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudentHandler{
		studentService: studentService,
		logger:         logger.With("component", "student_handler"),
	}
}

// ListStudents handles GET /api/students.
func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.studentService.ListStudents(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list students")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ShapeStudents(students))
}

// GetStudent handles GET /api/students/{id}.
func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	student, err := h.studentService.GetStudent(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve student")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ShapeStudent(student))
}

// GetStudentByEmail handles GET /api/students/by-email/{email}.
func (h *StudentHandler) GetStudentByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	student, err := h.studentService.GetStudentByEmail(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve student")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ShapeStudent(student))
}

// ListStudentsByCourse handles GET /api/students/by-course/{course_code}.
// An unknown course code yields an empty list.
func (h *StudentHandler) ListStudentsByCourse(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "course_code")

	students, err := h.studentService.ListStudentsByCourseCode(r.Context(), code)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list students")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ShapeStudents(students))
}

// CreateStudent handles POST /api/students.
func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req StudentRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		_, fieldErr := domain.ValidateStudentInput(in, domain.ModeFull)
		respondWithTypeErrors(w, r, err, fieldErr)
		return
	}

	student, err := h.studentService.CreateStudent(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create student")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("student created", slog.String("student_id", student.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, ShapeStudent(student))
}

// ReplaceStudent handles PUT /api/students/{id}.
func (h *StudentHandler) ReplaceStudent(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, domain.ModeFull, h.studentService.ReplaceStudent)
}

// PatchStudent handles PATCH /api/students/{id}.
func (h *StudentHandler) PatchStudent(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, domain.ModePartial, h.studentService.PatchStudent)
}

type studentUpdateFn func(ctx context.Context, id uuid.UUID, in domain.StudentInput) (*domain.Student, error)

func (h *StudentHandler) update(w http.ResponseWriter, r *http.Request, mode domain.InputMode, fn studentUpdateFn) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req StudentRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		_, fieldErr := domain.ValidateStudentInput(in, mode)
		respondWithTypeErrors(w, r, err, fieldErr)
		return
	}

	student, err := fn(r.Context(), id, in)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update student")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ShapeStudent(student))
}

// DeleteStudent handles DELETE /api/students/{id}.
func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.studentService.DeleteStudent(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete student")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
