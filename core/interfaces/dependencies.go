// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache holds short-lived collaborator state such as session lookups
	Cache Cache

	// HTTPClient performs outbound requests to the learning platforms
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Users is the persistent user record store
	Users UserStorage
}
