package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field validation limits.
const (
	MinNameLength       = 3
	MaxNameLength       = 100
	MinAge              = 18
	MaxAge              = 60
	MaxEmailLength      = 254
	PhoneNumberLength   = 10
	MinCourseNameLength = 3
	MaxCourseNameLength = 100
	MaxCourseCodeLength = 10
)

// AllowedEmailSuffixes lists the academic domains a student email may use.
var AllowedEmailSuffixes = []string{".edu", ".ac.in", ".edu.in"}

// Rejection reasons reported per field.
var (
	ErrFieldRequired = errors.New("this field is required")
	ErrNotInteger    = errors.New("a valid integer is required")

	ErrNameTooShort     = fmt.Errorf("name must be at least %d characters long", MinNameLength)
	ErrNameTooLong      = fmt.Errorf("name must be at most %d characters long", MaxNameLength)
	ErrNameInvalidChars = errors.New("name should only contain letters and spaces")

	ErrAgeOutOfRange = fmt.Errorf("age must be between %d and %d", MinAge, MaxAge)

	ErrInvalidEmail = errors.New("enter a valid email address")
	ErrEmailTooLong = fmt.Errorf("email must be at most %d characters long", MaxEmailLength)
	ErrEmailDomain  = errors.New("email must end with .edu, .ac.in, or .edu.in")
	ErrEmailTaken   = errors.New("student with this email already exists")

	ErrPhoneNotDigits = errors.New("phone number should contain only digits")
	ErrPhoneLength    = fmt.Errorf("phone number must be exactly %d digits", PhoneNumberLength)

	ErrCourseNameTooShort = fmt.Errorf("course name must be at least %d characters long", MinCourseNameLength)
	ErrCourseNameTooLong  = fmt.Errorf("course name must be at most %d characters long", MaxCourseNameLength)
	ErrCourseNameTaken    = errors.New("course with this course name already exists")
	ErrCourseCodeBlank    = errors.New("course code may not be blank")
	ErrCourseCodeTooLong  = fmt.Errorf("course code must be at most %d characters long", MaxCourseCodeLength)
	ErrCourseCodeTaken    = errors.New("course code must be unique")
	ErrDescriptionBlank   = errors.New("description may not be blank")
	ErrCourseNotExist     = errors.New("invalid course - object does not exist")

	ErrBelowCourseMinimumAge = errors.New("student is below the minimum age for the course")
)

var (
	namePattern = regexp.MustCompile(`^[A-Za-z ]+$`)
	validate    = validator.New()
)

// ValidateName trims raw and checks it is long enough and made of letters and spaces.
func ValidateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if utf8.RuneCountInString(name) < MinNameLength {
		return "", ErrNameTooShort
	}
	if !namePattern.MatchString(raw) {
		return "", ErrNameInvalidChars
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// ValidateAge checks that age lies within [MinAge, MaxAge].
func ValidateAge(age int) (int, error) {
	if age < MinAge || age > MaxAge {
		return 0, ErrAgeOutOfRange
	}
	return age, nil
}

// ValidateEmail checks that raw is a well-formed address on an academic domain.
// Uniqueness is a storage concern and is checked by the service layer.
func ValidateEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return "", ErrEmailTooLong
	}
	if email == "" || validate.Var(email, "email") != nil {
		return "", ErrInvalidEmail
	}
	if !hasAllowedSuffix(email) {
		return "", ErrEmailDomain
	}
	return email, nil
}

func hasAllowedSuffix(email string) bool {
	for _, suffix := range AllowedEmailSuffixes {
		if strings.HasSuffix(email, suffix) {
			return true
		}
	}
	return false
}

// ValidatePhoneNumber accepts an empty value (no phone on record) or exactly
// PhoneNumberLength ASCII digits.
func ValidatePhoneNumber(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return "", ErrPhoneNotDigits
		}
	}
	if len(raw) != PhoneNumberLength {
		return "", ErrPhoneLength
	}
	return raw, nil
}

// ValidateCourseName checks the course name length bounds, counted in
// characters to match the VARCHAR column.
func ValidateCourseName(raw string) (string, error) {
	n := utf8.RuneCountInString(raw)
	if n < MinCourseNameLength {
		return "", ErrCourseNameTooShort
	}
	if n > MaxCourseNameLength {
		return "", ErrCourseNameTooLong
	}
	return raw, nil
}

// ValidateCourseCode checks the course code is present and short enough.
func ValidateCourseCode(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", ErrCourseCodeBlank
	}
	if utf8.RuneCountInString(code) > MaxCourseCodeLength {
		return "", ErrCourseCodeTooLong
	}
	return code, nil
}

// courseMinimumAge maps course names to the minimum enrolment age they impose.
// The rule is keyed by name, not code: renaming a course changes who may enrol.
var courseMinimumAge = map[string]int{
	"Computer Science": 20,
	"Data Science":     22,
}

// MinimumAgeError reports a student too young for the course they enrol in.
type MinimumAgeError struct {
	CourseName string
	MinimumAge int
}

func (e *MinimumAgeError) Error() string {
	return fmt.Sprintf("students in %s must be at least %d years old", e.CourseName, e.MinimumAge)
}

// Unwrap allows errors.Is(err, ErrBelowCourseMinimumAge).
func (e *MinimumAgeError) Unwrap() error {
	return ErrBelowCourseMinimumAge
}

// CheckCourseAge applies the course-specific minimum age, if any.
func CheckCourseAge(courseName string, age int) error {
	minAge, ok := courseMinimumAge[courseName]
	if ok && age < minAge {
		return &MinimumAgeError{CourseName: courseName, MinimumAge: minAge}
	}
	return nil
}
