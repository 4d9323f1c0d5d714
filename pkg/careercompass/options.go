// ABOUTME: Configuration options for the library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package careercompass

import (
	"net/url"
	"time"

	"careercompass-api/core/interfaces"
	"careercompass-api/core/search"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// WithUserAgent sets the identity sent by the default HTTP client
func WithUserAgent(userAgent string) Option {
	return func(c *Config) error {
		c.UserAgent = userAgent
		return nil
	}
}

// WithFetchTimeout sets the per-fetch timeout
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Config) error {
		if d <= 0 {
			return NewError(ErrorTypeConfiguration, "fetch timeout must be positive").
				WithContext("timeout", d.String())
		}
		c.FetchTimeout = d
		return nil
	}
}

// WithPoliteDelay sets the spacing between provider requests; zero disables it
func WithPoliteDelay(d time.Duration) Option {
	return func(c *Config) error {
		if d < 0 {
			return NewError(ErrorTypeConfiguration, "polite delay cannot be negative").
				WithContext("delay", d.String())
		}
		c.PoliteDelay = d
		return nil
	}
}

// WithVariantCap bounds the number of query variants
func WithVariantCap(n int) Option {
	return func(c *Config) error {
		c.VariantCap = n
		return nil
	}
}

// WithProviderLimit bounds links extracted per provider call
func WithProviderLimit(n int) Option {
	return func(c *Config) error {
		c.ProviderLimit = n
		return nil
	}
}

// WithProviders replaces the built-in platform set
func WithProviders(providers ...search.Provider) Option {
	return func(c *Config) error {
		c.Providers = providers
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		FetchTimeout:  search.DefaultFetchTimeout,
		PoliteDelay:   search.DefaultPoliteDelay,
		VariantCap:    search.DefaultVariantCap,
		ProviderLimit: search.DefaultProviderLimit,
	}
}

// validateConfig checks the assembled configuration
func validateConfig(c *Config) error {
	if c.VariantCap < 1 {
		return NewError(ErrorTypeConfiguration, "variant cap must be at least 1").
			WithContext("variant_cap", c.VariantCap)
	}
	if c.ProviderLimit < 1 {
		return NewError(ErrorTypeConfiguration, "provider limit must be at least 1").
			WithContext("provider_limit", c.ProviderLimit)
	}
	for _, p := range c.Providers {
		if p.Name == "" || p.URLTemplate == "" {
			return NewError(ErrorTypeValidation, "provider needs a name and URL template")
		}
		u, err := url.Parse(p.SearchURL("x"))
		if err != nil {
			return NewError(ErrorTypeValidation, "provider URL template does not parse").
				WithCause(err).
				WithContext("provider", p.Name)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return NewError(ErrorTypeValidation, "provider URL template must be http or https").
				WithContext("provider", p.Name)
		}
	}
	return nil
}
