// ABOUTME: Health handler for liveness probes

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"careercompass-api/api/dto/responses"
)

// HealthOutput defines the output for the health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// RegisterHealthRoutes registers GET /api/health
func RegisterHealthRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Service health",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
		return &HealthOutput{Body: responses.HealthResponse{Status: "ok"}}, nil
	})
}
