// ABOUTME: Request DTOs for the smart search endpoint
// ABOUTME: Accepts loosely typed term lists and applies the default result limit

package requests

// DefaultSearchLimit is applied when the limit is absent or zero
const DefaultSearchLimit = 36

// SmartSearchRequest represents the request body for a smart search
type SmartSearchRequest struct {
	// Skills are the user's skills; entries that are not strings are ignored
	Skills []any `json:"skills,omitempty" doc:"Skills to search for, most relevant first"`

	// Interests are the user's interests; entries that are not strings are ignored
	Interests []any `json:"interests,omitempty" doc:"Interests to search for, most relevant first"`

	// Industry is an optional target industry
	Industry string `json:"industry,omitempty" doc:"Target industry"`

	// Limit is the requested number of results; the response holds at least 6
	Limit int `json:"limit,omitempty" doc:"Maximum number of results (minimum effective value 6, default 36)"`
}

// ApplyDefaults sets default values for optional fields
func (r *SmartSearchRequest) ApplyDefaults() {
	if r.Limit == 0 {
		r.Limit = DefaultSearchLimit
	}
}

// StringTerms keeps only the string entries of a loosely typed list
func StringTerms(values []any) []string {
	terms := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			terms = append(terms, s)
		}
	}
	return terms
}
