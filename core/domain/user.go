// ABOUTME: User domain model for the identity collaborator used by smart search
// ABOUTME: Provides registration validation and the public identity projection

package domain

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"

	coreerrors "careercompass-api/core/errors"
)

// Role is the kind of account
type Role string

const (
	// RoleStudent is the default role
	RoleStudent Role = "student"

	// RoleMentor is a mentor account
	RoleMentor Role = "mentor"
)

// Valid reports whether the role is one of the supported roles
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleMentor
}

// User is a registered account as persisted by the user store
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role

	// Token is the current bearer token, empty when the user never logged in
	Token string
}

// Identity is the public view of an authenticated user
type Identity struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// Identity projects the user into its public form
func (u *User) Identity() Identity {
	return Identity{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}

// NewUser validates registration input and creates a user with a fresh ID.
// The password hash is computed by the caller.
func NewUser(name, email, passwordHash string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, &coreerrors.ValidationError{Field: "name", Message: "name is required"}
	}
	if email == "" {
		return nil, &coreerrors.ValidationError{Field: "email", Message: "email is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, &coreerrors.ValidationError{Field: "email", Message: "invalid email format"}
	}
	if role == "" {
		role = RoleStudent
	}
	if !role.Valid() {
		return nil, &coreerrors.ValidationError{Field: "role", Message: "role must be 'student' or 'mentor'"}
	}

	return &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}
