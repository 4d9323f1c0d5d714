// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	coreerrors "careercompass-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if coreerrors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if coreerrors.IsUnauthorized(err) {
		return huma.Error401Unauthorized(err.Error())
	}

	if coreerrors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if coreerrors.IsConflict(err) {
		return huma.Error409Conflict(err.Error())
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
