package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Account validation limits.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 150
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt ignores anything longer
)

// Common validation errors for users.
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrInvalidUsername     = errors.New("username must be 3-150 characters of letters, digits and @/./+/-/_ only")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// User is an API account allowed to manage student and course records.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	Password       string    `json:"-"` // Plaintext, only present between registration and hashing
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given credentials.
// The caller is responsible for hashing the password before storing the user.
func NewUser(username, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks if the User has valid data, reporting every failing field.
func (u *User) Validate() error {
	ve := &ValidationError{}

	if u.ID == uuid.Nil {
		ve.Add("id", ErrEmptyUserID)
	}

	if len(u.Username) < MinUsernameLength || len(u.Username) > MaxUsernameLength ||
		!usernamePattern.MatchString(u.Username) {
		ve.Add("username", ErrInvalidUsername)
	}

	// Email is optional for accounts but must be well formed when given.
	if u.Email != "" && validate.Var(u.Email, "email") != nil {
		ve.Add("email", ErrInvalidEmail)
	}

	switch {
	case u.Password != "" && len(u.Password) < MinPasswordLength:
		ve.Add("password", ErrPasswordTooShort)
	case len(u.Password) > MaxPasswordLength:
		ve.Add("password", ErrPasswordTooLong)
	case u.Password == "" && u.HashedPassword == "":
		ve.Add("password", ErrEmptyHashedPassword)
	}

	return ve.Err()
}
