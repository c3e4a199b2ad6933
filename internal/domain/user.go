package domain

import "time"

// Role is the closed set of capabilities a user can hold.
type Role string

const (
	// RoleTeacher may upload documents and author quizzes.
	RoleTeacher Role = "teacher"
	// RoleStudent may take quizzes and submit results.
	RoleStudent Role = "student"
)

// ParseRole maps a raw string onto the Role enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleTeacher:
		return RoleTeacher, nil
	case RoleStudent:
		return RoleStudent, nil
	default:
		return "", NewInvalidInputError("role must be \"teacher\" or \"student\"")
	}
}

// User represents a domain user object
type User struct {
	ID             string
	Name           string
	Email          string
	HashedPassword string
	Role           Role
	StudentNumber  string // only set for students
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// NewUser creates a new User instance
func NewUser(name, email, hashedPassword string, role Role) *User {
	now := time.Now()
	return &User{
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
		Role:           role,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Name == "" {
		return NewValidationError("name is required")
	}
	if u.Email == "" {
		return NewValidationError("email is required")
	}
	if u.HashedPassword == "" {
		return NewValidationError("password hash is required")
	}
	switch u.Role {
	case RoleTeacher:
	case RoleStudent:
	default:
		return NewValidationError("role must be teacher or student")
	}
	return nil
}

// Identity is the authenticated caller the middleware hands to services.
type Identity struct {
	UserID string
	Role   Role
}
