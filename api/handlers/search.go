// ABOUTME: Smart search handler for the Huma API
// ABOUTME: Authenticates the caller, then aggregates course links across platforms

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"careercompass-api/api/dto/mappers"
	"careercompass-api/api/dto/requests"
	"careercompass-api/api/dto/responses"
	"careercompass-api/core/domain"
	"careercompass-api/core/interfaces"
	"careercompass-api/pkg/featureflags"
)

// SearchService interface defines the methods needed from the search service
type SearchService interface {
	Search(ctx context.Context, req domain.SearchRequest) domain.AggregatedResponse
}

// SearchHandler handles smart search requests
type SearchHandler struct {
	searchService SearchService
	authenticator interfaces.Authenticator
	logger        interfaces.Logger
	flags         featureflags.Manager
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService SearchService, authenticator interfaces.Authenticator, logger interfaces.Logger, flags featureflags.Manager) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		authenticator: authenticator,
		logger:        logger,
		flags:         flags,
	}
}

// RegisterRoutes registers the smart search route
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "smartSearch",
		Method:      http.MethodPost,
		Path:        "/api/smart-search",
		Summary:     "Search course platforms",
		Description: "Builds query variants from skills, interests and industry, queries Coursera, Udemy, Skillshare and Udacity, and returns deduplicated links",
		Tags:        []string{"Search"},
	}, h.SmartSearch)
}

// SmartSearchInput defines the input for the SmartSearch operation
type SmartSearchInput struct {
	Authorization string                      `header:"Authorization" doc:"Bearer token"`
	Body          requests.SmartSearchRequest `required:"false"`
}

// SmartSearchOutput defines the output for the SmartSearch operation
type SmartSearchOutput struct {
	Body responses.SmartSearchResponse
}

// SmartSearch handles POST /api/smart-search
func (h *SearchHandler) SmartSearch(ctx context.Context, input *SmartSearchInput) (*SmartSearchOutput, error) {
	if !enabled(ctx, h.flags, featureflags.SmartSearchEnabled) {
		return nil, huma.Error503ServiceUnavailable("Smart search is disabled")
	}

	if h.authenticator == nil {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}
	identity, err := h.authenticator.Authenticate(ctx, input.Authorization)
	if err != nil {
		return nil, toHumaError(err)
	}
	if identity == nil {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	req := mappers.ToSearchRequest(input.Body)
	if h.logger != nil {
		h.logger.Info("Smart search requested", map[string]interface{}{
			"user_id":   identity.UserID,
			"skills":    len(req.Skills),
			"interests": len(req.Interests),
			"industry":  req.Industry,
			"limit":     req.Limit,
		})
	}

	result := h.searchService.Search(ctx, req)
	return &SmartSearchOutput{Body: mappers.ToSmartSearchResponse(result)}, nil
}
