package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"simple", "Alice", "Alice", nil},
		{"with spaces", "Mary Jane", "Mary Jane", nil},
		{"trimmed", "  Bob Smith ", "Bob Smith", nil},
		{"exactly three", "Ann", "Ann", nil},
		{"too short", "Al", "", ErrNameTooShort},
		{"too short after trim", "  Al  ", "", ErrNameTooShort},
		{"empty", "", "", ErrNameTooShort},
		{"digit", "Alice2", "", ErrNameInvalidChars},
		{"punctuation", "O'Brien", "", ErrNameInvalidChars},
		{"hyphen", "Anne-Marie", "", ErrNameInvalidChars},
		{"non ascii letter", "José", "", ErrNameInvalidChars},
		{"too long", strings.Repeat("a", MaxNameLength+1), "", ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValidateAge(t *testing.T) {
	for _, age := range []int{18, 19, 35, 60} {
		_, err := ValidateAge(age)
		assert.NoError(t, err, "age %d", age)
	}
	for _, age := range []int{-1, 0, 17, 61, 100} {
		_, err := ValidateAge(age)
		assert.ErrorIs(t, err, ErrAgeOutOfRange, "age %d", age)
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"edu", "a@b.edu", nil},
		{"ac.in", "student@iitb.ac.in", nil},
		{"edu.in", "student@college.edu.in", nil},
		{"com rejected", "a@b.com", ErrEmailDomain},
		{"suffix is case sensitive", "a@b.EDU", ErrEmailDomain},
		{"malformed", "not-an-email.edu", ErrInvalidEmail},
		{"empty", "", ErrInvalidEmail},
		{"too long", strings.Repeat("a", 64) + "@" + strings.Repeat("b", 63) + "." + strings.Repeat("c", 63) + "." + strings.Repeat("d", 60) + ".edu", ErrEmailTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateEmail(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{"1234567890", nil},
		{"", nil},
		{"12345", ErrPhoneLength},
		{"12345678901", ErrPhoneLength},
		{"12345abcde", ErrPhoneNotDigits},
		{"+123456789", ErrPhoneNotDigits},
		{"123 456 78", ErrPhoneNotDigits},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ValidatePhoneNumber(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.Equal(t, tt.input, got)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCourseName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid", "Data Science", nil},
		{"too short", "AI", ErrCourseNameTooShort},
		{"too long", strings.Repeat("x", MaxCourseNameLength+1), ErrCourseNameTooLong},
		{"exactly max", strings.Repeat("x", MaxCourseNameLength), nil},
		{"two accented characters too short", "Éé", ErrCourseNameTooShort},
		{"three accented characters", "Été", nil},
		{"accented name within limit", strings.Repeat("é", 60), nil},
		{"accented name at max", strings.Repeat("é", MaxCourseNameLength), nil},
		{"accented name over max", strings.Repeat("é", MaxCourseNameLength+1), ErrCourseNameTooLong},
		{"devanagari", "गणित विज्ञान", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCourseName(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestValidateCourseCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"valid", "CS101", "CS101", nil},
		{"trimmed", "  DS200 ", "DS200", nil},
		{"blank", "  ", "", ErrCourseCodeBlank},
		{"too long", "ABCDEFGHIJK", "", ErrCourseCodeTooLong},
		{"ten accented characters", strings.Repeat("É", MaxCourseCodeLength), strings.Repeat("É", MaxCourseCodeLength), nil},
		{"eleven accented characters", strings.Repeat("É", MaxCourseCodeLength+1), "", ErrCourseCodeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCourseCode(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckCourseAge(t *testing.T) {
	tests := []struct {
		course  string
		age     int
		wantMin int
	}{
		{"Computer Science", 19, 20},
		{"Computer Science", 20, 0},
		{"Data Science", 21, 22},
		{"Data Science", 22, 0},
		{"History", 19, 0},
		{"History", 18, 0},
		{"computer science", 19, 0}, // keyed on the exact name
	}

	for _, tt := range tests {
		err := CheckCourseAge(tt.course, tt.age)
		if tt.wantMin == 0 {
			assert.NoError(t, err, "%s age %d", tt.course, tt.age)
			continue
		}

		assert.ErrorIs(t, err, ErrBelowCourseMinimumAge)
		var ageErr *MinimumAgeError
		if assert.True(t, errors.As(err, &ageErr)) {
			assert.Equal(t, tt.wantMin, ageErr.MinimumAge)
			assert.Equal(t, tt.course, ageErr.CourseName)
		}
	}
}
