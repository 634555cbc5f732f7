package api

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/roster-api/internal/domain"
)

// StudentRequest is the payload for creating, replacing and patching a
// student. Field rules live in the domain package so every failing field is
// reported together; the request struct only carries presence. Age is kept
// raw so a value of the wrong JSON type is a field error rather than a
// malformed body.
type StudentRequest struct {
	Name        *string         `json:"name"`
	Age         json.RawMessage `json:"age"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	CourseID    *string `json:"course_id"`
}

// ToInput converts the request into domain input. A course_id that is not a
// UUID cannot name an existing course, so it is passed on as uuid.Nil and
// rejected by the course lookup like any other unknown course. An age that is
// not a JSON integer is left nil and reported as a *domain.ValidationError on
// "age" next to the input.
func (req StudentRequest) ToInput() (domain.StudentInput, error) {
	age, ageErr := parseInt(req.Age)
	in := domain.StudentInput{
		Name:        req.Name,
		Age:         age,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	if req.CourseID != nil {
		id, err := uuid.Parse(*req.CourseID)
		if err != nil {
			id = uuid.Nil
		}
		in.CourseID = &id
	}
	if ageErr != nil {
		return in, domain.NewValidationError("age", ageErr)
	}
	return in, nil
}

// CourseRequest is the payload for creating a course.
type CourseRequest struct {
	CourseName     *string         `json:"course_name"`
	CourseCode     *string         `json:"course_code"`
	Description    *string         `json:"description"`
	DurationMonths json.RawMessage `json:"duration_months"`
}

// ToInput converts the request into domain input. A duration that is not a
// JSON integer is reported like StudentRequest.ToInput reports age.
func (req CourseRequest) ToInput() (domain.CourseInput, error) {
	months, err := parseInt(req.DurationMonths)
	in := domain.CourseInput{
		CourseName:     req.CourseName,
		CourseCode:     req.CourseCode,
		Description:    req.Description,
		DurationMonths: months,
	}
	if err != nil {
		return in, domain.NewValidationError("duration_months", err)
	}
	return in, nil
}

// parseInt decodes an optional integer field. Absent and null both mean nil.
func parseInt(raw json.RawMessage) (*int, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, domain.ErrNotInteger
	}
	return &n, nil
}

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	User *UserResponse `json:"user,omitempty"`

	// AccessToken is the JWT used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT used to obtain new access tokens
	RefreshToken string `json:"refresh_token"`

	// ExpiresAt is the RFC 3339 timestamp when the access token expires
	ExpiresAt string `json:"expires_at"`
}
