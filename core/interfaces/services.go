// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"careercompass-api/core/domain"
)

// Authenticator resolves a bearer token to an identity.
// It returns (nil, nil) for unknown or empty tokens.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Identity, error)
}

// Extractor turns a platform search page into link results.
// An empty html string means no content; implementations never fail.
type Extractor interface {
	Extract(html string, limit int) []domain.LinkResult
}
