// ABOUTME: Response DTOs for the smart search endpoint
// ABOUTME: Mirrors the aggregated link list returned to clients

package responses

// LinkResponse is one course or class link
type LinkResponse struct {
	Title    string `json:"title" doc:"Link title"`
	URL      string `json:"url" doc:"Absolute link URL"`
	Platform string `json:"platform" doc:"Learning platform name"`
}

// SmartSearchResponse is the aggregated smart search result
type SmartSearchResponse struct {
	Items []LinkResponse `json:"items" doc:"Deduplicated links in provider order"`
}
