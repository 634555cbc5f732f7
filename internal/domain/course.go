package domain

import (
	"time"

	"github.com/google/uuid"
)

// Course is an offering students enrol in. Its code and name are both unique
// across all courses; deleting a course deletes every student enrolled in it.
type Course struct {
	ID             uuid.UUID `json:"id"`
	CourseName     string    `json:"course_name"`
	CourseCode     string    `json:"course_code"`
	Description    string    `json:"description"`
	DurationMonths int       `json:"duration_months"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CourseInput carries client-supplied course fields. A nil field was absent
// from the request.
type CourseInput struct {
	CourseName     *string
	CourseCode     *string
	Description    *string
	DurationMonths *int
}

// ValidateCourseInput checks every course field and reports all failures.
// The returned input holds the normalized fields that passed. All four fields
// are required. Uniqueness is checked by the caller.
func ValidateCourseInput(in CourseInput) (CourseInput, error) {
	ve := &ValidationError{}
	out := CourseInput{DurationMonths: in.DurationMonths}

	if in.CourseName == nil {
		ve.Add("course_name", ErrFieldRequired)
	} else if name, err := ValidateCourseName(*in.CourseName); err != nil {
		ve.Add("course_name", err)
	} else {
		out.CourseName = &name
	}

	if in.CourseCode == nil {
		ve.Add("course_code", ErrFieldRequired)
	} else if code, err := ValidateCourseCode(*in.CourseCode); err != nil {
		ve.Add("course_code", err)
	} else {
		out.CourseCode = &code
	}

	if in.Description == nil {
		ve.Add("description", ErrFieldRequired)
	} else if *in.Description == "" {
		ve.Add("description", ErrDescriptionBlank)
	} else {
		out.Description = in.Description
	}

	if in.DurationMonths == nil {
		ve.Add("duration_months", ErrFieldRequired)
	}

	return out, ve.Err()
}

// NewCourse builds a Course from validated input and stamps its timestamps.
func NewCourse(in CourseInput, now time.Time) (*Course, error) {
	in, err := ValidateCourseInput(in)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	return &Course{
		ID:             uuid.New(),
		CourseName:     *in.CourseName,
		CourseCode:     *in.CourseCode,
		Description:    *in.Description,
		DurationMonths: *in.DurationMonths,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Validate checks that a Course, typically about to be persisted, is well formed.
func (c *Course) Validate() error {
	if c.ID == uuid.Nil {
		return NewValidationError("id", ErrInvalidID)
	}
	_, err := ValidateCourseInput(CourseInput{
		CourseName:     &c.CourseName,
		CourseCode:     &c.CourseCode,
		Description:    &c.Description,
		DurationMonths: &c.DurationMonths,
	})
	return err
}
