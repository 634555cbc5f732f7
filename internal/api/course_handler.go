package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/roster-api/internal/api/shared"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/phrazzld/roster-api/internal/platform/logger"
	"github.com/phrazzld/roster-api/internal/service"
)

// CourseHandler handles course requests.
type CourseHandler struct {
	courseService service.CourseService
	logger        *slog.Logger
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService service.CourseService, logger *slog.Logger) *CourseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseHandler{
		courseService: courseService,
		logger:        logger.With("component", "course_handler"),
	}
}

// ListCourses handles GET /api/courses.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.ListCourses(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list courses")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ShapeCourses(courses))
}

// GetCourse handles GET /api/courses/{id}, returning the course with its
// enrolled students.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	detail, err := h.courseService.GetCourseDetail(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve course")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ShapeCourseDetail(detail))
}

// CreateCourse handles POST /api/courses.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req CourseRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	in, err := req.ToInput()
	if err != nil {
		_, fieldErr := domain.ValidateCourseInput(in)
		respondWithTypeErrors(w, r, err, fieldErr)
		return
	}

	course, err := h.courseService.CreateCourse(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create course")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Debug("course created", slog.String("course_id", course.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, ShapeCourse(course))
}

// DeleteCourse handles DELETE /api/courses/{id}. Enrolled students are
// deleted with the course.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.courseService.DeleteCourse(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete course")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
