package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format of calendar dates such as EnrollmentDate.
const DateLayout = "2006-01-02"

// Student is a person enrolled in exactly one Course.
type Student struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Email          string    `json:"email"`
	PhoneNumber    *string   `json:"phone_number"`
	Address        *string   `json:"address"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	CourseID       uuid.UUID `json:"course_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Course is populated by reads that join the enrolled course.
	Course *Course `json:"course,omitempty"`
}

// StudentInput carries client-supplied student fields. A nil field was absent
// from the request; a pointer to "" for PhoneNumber or Address clears it.
type StudentInput struct {
	Name        *string
	Age         *int
	Email       *string
	PhoneNumber *string
	Address     *string
	CourseID    *uuid.UUID
}

// InputMode selects which fields a validation pass insists on.
type InputMode int

const (
	// ModeFull requires every required field (create and full replace).
	ModeFull InputMode = iota
	// ModePartial validates only the fields that were supplied.
	ModePartial
)

// ValidateStudentInput runs every per-field validator on the supplied fields.
// It returns the normalized input, holding only the fields that passed, and a
// *ValidationError listing one reason per failing field (nil if none failed).
// It does not look at storage: email uniqueness, course existence and the
// course age rule are applied by the caller once the course is resolved.
func ValidateStudentInput(in StudentInput, mode InputMode) (StudentInput, error) {
	ve := &ValidationError{}
	out := StudentInput{CourseID: in.CourseID, Address: in.Address}
	required := mode == ModeFull

	if in.Name == nil {
		if required {
			ve.Add("name", ErrFieldRequired)
		}
	} else if name, err := ValidateName(*in.Name); err != nil {
		ve.Add("name", err)
	} else {
		out.Name = &name
	}

	if in.Age == nil {
		if required {
			ve.Add("age", ErrFieldRequired)
		}
	} else if age, err := ValidateAge(*in.Age); err != nil {
		ve.Add("age", err)
	} else {
		out.Age = &age
	}

	if in.Email == nil {
		if required {
			ve.Add("email", ErrFieldRequired)
		}
	} else if email, err := ValidateEmail(*in.Email); err != nil {
		ve.Add("email", err)
	} else {
		out.Email = &email
	}

	if in.PhoneNumber != nil {
		if phone, err := ValidatePhoneNumber(*in.PhoneNumber); err != nil {
			ve.Add("phone_number", err)
		} else {
			out.PhoneNumber = &phone
		}
	}

	if in.CourseID == nil && required {
		ve.Add("course_id", ErrFieldRequired)
	}

	return out, ve.Err()
}

// NewStudent builds a Student from validated input. The enrollment date is the
// calendar day of enrolledAt in UTC and never changes afterwards.
func NewStudent(in StudentInput, enrolledAt time.Time) (*Student, error) {
	in, err := ValidateStudentInput(in, ModeFull)
	if err != nil {
		return nil, err
	}

	now := enrolledAt.UTC()
	s := &Student{
		ID:             uuid.New(),
		EnrollmentDate: DateOf(now),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.Apply(in)
	return s, nil
}

// Apply copies every supplied field of in onto s. Absent fields keep their
// current value; EnrollmentDate is never touched.
func (s *Student) Apply(in StudentInput) {
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Age != nil {
		s.Age = *in.Age
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.PhoneNumber != nil {
		s.PhoneNumber = nonEmpty(*in.PhoneNumber)
	}
	if in.Address != nil {
		s.Address = nonEmpty(*in.Address)
	}
	if in.CourseID != nil {
		if *in.CourseID != s.CourseID {
			s.Course = nil
		}
		s.CourseID = *in.CourseID
	}
}

// Validate checks that a Student, typically about to be persisted, is well formed.
func (s *Student) Validate() error {
	if s.ID == uuid.Nil {
		return NewValidationError("id", ErrInvalidID)
	}
	if s.EnrollmentDate.IsZero() {
		return NewValidationError("enrollment_date", ErrFieldRequired)
	}

	in := StudentInput{
		Name:     &s.Name,
		Age:      &s.Age,
		Email:    &s.Email,
		CourseID: &s.CourseID,
	}
	if s.PhoneNumber != nil {
		in.PhoneNumber = s.PhoneNumber
	}
	if s.CourseID == uuid.Nil {
		return NewValidationError("course_id", ErrFieldRequired)
	}
	_, err := ValidateStudentInput(in, ModeFull)
	return err
}

// DateOf truncates t to midnight UTC of the same calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func nonEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
