// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for the HTTP client and loggers

package careercompass

import (
	"time"

	"careercompass-api/core/interfaces"
	httpInfra "careercompass-api/infrastructure/http/standard"
	loggerInfra "careercompass-api/infrastructure/logger/logrus"
)

// DefaultHTTPClient creates the desktop-identity HTTP client used for provider fetches
func DefaultHTTPClient(timeout time.Duration, userAgent string) interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(timeout, userAgent)
}

// DefaultLogger creates a text logger writing warnings and errors to stdout
func DefaultLogger() interfaces.Logger {
	return loggerInfra.NewLogger(loggerInfra.Options{Level: "warn"})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return interfaces.NopLogger{}
}
