// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for the user record store used by the identity collaborator

package interfaces

import (
	"context"

	"careercompass-api/core/domain"
)

// UserStorage defines the interface for user persistence.
// Lookups return (nil, nil) when no user matches.
type UserStorage interface {
	// Create persists a new user; a duplicate email yields a ConflictError
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByToken retrieves the user currently holding the bearer token
	GetByToken(ctx context.Context, token string) (*domain.User, error)

	// UpdateToken replaces the user's bearer token
	UpdateToken(ctx context.Context, id, token string) error
}
