// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"careercompass-api/api/dto/requests"
	"careercompass-api/api/dto/responses"
	"careercompass-api/core/domain"
)

// ToSearchRequest converts the request DTO into a domain search request
func ToSearchRequest(req requests.SmartSearchRequest) domain.SearchRequest {
	req.ApplyDefaults()
	return domain.SearchRequest{
		Skills:    requests.StringTerms(req.Skills),
		Interests: requests.StringTerms(req.Interests),
		Industry:  req.Industry,
		Limit:     req.Limit,
	}
}

// ToSmartSearchResponse converts the aggregated domain response to its DTO
func ToSmartSearchResponse(resp domain.AggregatedResponse) responses.SmartSearchResponse {
	items := make([]responses.LinkResponse, 0, len(resp.Items))
	for _, it := range resp.Items {
		items = append(items, responses.LinkResponse{
			Title:    it.Title,
			URL:      it.URL,
			Platform: it.Platform,
		})
	}
	return responses.SmartSearchResponse{Items: items}
}

// ToProfileResponse converts an identity to its DTO
func ToProfileResponse(identity *domain.Identity) *responses.ProfileResponse {
	if identity == nil {
		return nil
	}
	return &responses.ProfileResponse{
		UserID: identity.UserID,
		Name:   identity.Name,
		Email:  identity.Email,
		Role:   string(identity.Role),
	}
}
