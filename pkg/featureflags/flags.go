// ABOUTME: Feature flag management for toggling service surfaces without a redeploy
// ABOUTME: Provides interface-based feature toggling with environment and static backends

package featureflags

import (
	"context"
	"os"
	"strings"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

// Defined feature flags
const (
	// SmartSearchEnabled exposes the smart search endpoint
	SmartSearchEnabled FeatureFlag = "smart_search_enabled"

	// RegistrationEnabled allows new accounts to be created
	RegistrationEnabled FeatureFlag = "registration_enabled"

	// RateLimitEnabled enables per-IP rate limiting
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"

	// SessionCacheEnabled caches token lookups in the configured cache backend
	SessionCacheEnabled FeatureFlag = "session_cache_enabled"
)

// Defaults holds the state of each flag when its environment variable is unset
var Defaults = map[FeatureFlag]bool{
	SmartSearchEnabled:  true,
	RegistrationEnabled: true,
	RateLimitEnabled:    true,
	SessionCacheEnabled: true,
}

// All lists every defined flag
func All() []FeatureFlag {
	return []FeatureFlag{
		SmartSearchEnabled,
		RegistrationEnabled,
		RateLimitEnabled,
		SessionCacheEnabled,
	}
}

// Manager defines the interface for feature flag management
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// GetAllFlags returns the state of all flags
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager implements Manager using environment variables
type EnvManager struct {
	prefix string
}

// NewEnvManager creates a new environment-based feature flag manager
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{prefix: prefix}
}

// IsEnabled checks if a feature flag is enabled. An unset variable falls back to Defaults.
func (m *EnvManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	envKey := m.prefix + strings.ToUpper(string(flag))
	value, ok := os.LookupEnv(envKey)
	if !ok || value == "" {
		return Defaults[flag]
	}

	value = strings.ToLower(value)
	return value == "true" || value == "1" || value == "enabled"
}

// GetAllFlags returns the state of all defined flags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	flags := make(map[FeatureFlag]bool, len(All()))
	for _, f := range All() {
		flags[f] = m.IsEnabled(ctx, f)
	}
	return flags
}

// StaticManager implements Manager with a fixed set of flag states.
// Flags missing from the set are disabled.
type StaticManager struct {
	flags map[FeatureFlag]bool
}

// NewStaticManager creates a manager with a copy of the given flag states
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	copied := make(map[FeatureFlag]bool, len(flags))
	for k, v := range flags {
		copied[k] = v
	}
	return &StaticManager{
		flags: copied,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *StaticManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	return m.flags[flag]
}

// GetAllFlags returns all flag states
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	result := make(map[FeatureFlag]bool, len(m.flags))
	for k, v := range m.flags {
		result[k] = v
	}
	return result
}
