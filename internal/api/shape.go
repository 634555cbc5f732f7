package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/domain"
	"github.com/phrazzld/roster-api/internal/service"
)

// CourseResponse is the full read shape of a course.
type CourseResponse struct {
	ID             uuid.UUID `json:"id"`
	CourseName     string    `json:"course_name"`
	CourseCode     string    `json:"course_code"`
	Description    string    `json:"description"`
	DurationMonths int       `json:"duration_months"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StudentResponse is the full read shape of a student with their course
// nested. Clients write course_id; course is read-only.
type StudentResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Age            int             `json:"age"`
	Email          string          `json:"email"`
	PhoneNumber    *string         `json:"phone_number"`
	Address        *string         `json:"address"`
	EnrollmentDate string          `json:"enrollment_date"`
	Course         *CourseResponse `json:"course"`
}

// StudentSummary is the minimal student projection used inside a course.
type StudentSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Age   int       `json:"age"`
}

// CourseDetailResponse is a course with its enrolled students.
type CourseDetailResponse struct {
	CourseResponse
	Students []StudentSummary `json:"students"`
}

// ShapeCourse renders the full course shape.
func ShapeCourse(c *domain.Course) CourseResponse {
	return CourseResponse{
		ID:             c.ID,
		CourseName:     c.CourseName,
		CourseCode:     c.CourseCode,
		Description:    c.Description,
		DurationMonths: c.DurationMonths,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ShapeCourses renders a list of courses, never nil.
func ShapeCourses(courses []*domain.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, ShapeCourse(c))
	}
	return out
}

// ShapeStudent renders the full student shape. course is null when the
// student was loaded without it.
func ShapeStudent(s *domain.Student) StudentResponse {
	resp := StudentResponse{
		ID:             s.ID,
		Name:           s.Name,
		Age:            s.Age,
		Email:          s.Email,
		PhoneNumber:    s.PhoneNumber,
		Address:        s.Address,
		EnrollmentDate: s.EnrollmentDate.Format(domain.DateLayout),
	}
	if s.Course != nil {
		course := ShapeCourse(s.Course)
		resp.Course = &course
	}
	return resp
}

// ShapeStudents renders a list of students, never nil.
func ShapeStudents(students []*domain.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, ShapeStudent(s))
	}
	return out
}

// ShapeStudentMinimal renders id, name, email and age only.
func ShapeStudentMinimal(s *domain.Student) StudentSummary {
	return StudentSummary{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
		Age:   s.Age,
	}
}

// ShapeCourseDetail renders a course with every enrolled student in
// enrolment order.
func ShapeCourseDetail(d *service.CourseDetail) CourseDetailResponse {
	students := make([]StudentSummary, 0, len(d.Students))
	for _, s := range d.Students {
		students = append(students, ShapeStudentMinimal(s))
	}
	return CourseDetailResponse{
		CourseResponse: ShapeCourse(d.Course),
		Students:       students,
	}
}

func shapeUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
