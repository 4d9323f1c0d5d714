package featureflags

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvManager_DefaultsWhenUnset(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	for _, f := range All() {
		assert.Equal(t, Defaults[f], manager.IsEnabled(ctx, f), string(f))
	}
	assert.False(t, manager.IsEnabled(ctx, "unknown_flag"))
}

func TestSmartSearch_DisabledWhenFlagFalse(t *testing.T) {
	os.Setenv("TEST_FEATURE_SMART_SEARCH_ENABLED", "false")
	defer os.Unsetenv("TEST_FEATURE_SMART_SEARCH_ENABLED")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.False(t, manager.IsEnabled(ctx, SmartSearchEnabled))
}

func TestEnvManager_MultipleValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"ENABLED", "ENABLED", true},
		{"false", "false", false},
		{"0", "0", false},
		{"other", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_FLAG", tt.value)
			defer os.Unsetenv("TEST_FLAG")

			manager := NewEnvManager("TEST_")
			ctx := context.Background()

			assert.Equal(t, tt.expected, manager.IsEnabled(ctx, "FLAG"))
		})
	}
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	os.Setenv("TEST_FEATURE_RATE_LIMIT_ENABLED", "0")
	defer os.Unsetenv("TEST_FEATURE_RATE_LIMIT_ENABLED")

	manager := NewEnvManager("TEST_FEATURE_")
	flags := manager.GetAllFlags()

	assert.Len(t, flags, len(All()))
	assert.False(t, flags[RateLimitEnabled])
	assert.True(t, flags[SmartSearchEnabled])
}

func TestStaticManager(t *testing.T) {
	flags := map[FeatureFlag]bool{
		SmartSearchEnabled:  true,
		RegistrationEnabled: false,
	}

	manager := NewStaticManager(flags)
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, SmartSearchEnabled))
	assert.False(t, manager.IsEnabled(ctx, RegistrationEnabled))
	assert.False(t, manager.IsEnabled(ctx, RateLimitEnabled)) // Not in initial map
}

func TestStaticManager_CopiesInput(t *testing.T) {
	flags := map[FeatureFlag]bool{SmartSearchEnabled: true}
	manager := NewStaticManager(flags)

	flags[SmartSearchEnabled] = false

	assert.True(t, manager.IsEnabled(context.Background(), SmartSearchEnabled))
}

func TestStaticManager_NilDisablesEverything(t *testing.T) {
	manager := NewStaticManager(nil)
	ctx := context.Background()

	for _, f := range All() {
		assert.False(t, manager.IsEnabled(ctx, f), string(f))
	}
	assert.Empty(t, manager.GetAllFlags())
}

func TestEnvManager_EnvOverridesDefault(t *testing.T) {
	os.Setenv("TEST_FEATURE_SESSION_CACHE_ENABLED", "0")
	defer os.Unsetenv("TEST_FEATURE_SESSION_CACHE_ENABLED")

	manager := NewEnvManager("TEST_FEATURE_")

	assert.True(t, Defaults[SessionCacheEnabled])
	assert.False(t, manager.IsEnabled(context.Background(), SessionCacheEnabled))
}

func TestEnvManager_DefaultPrefix(t *testing.T) {
	os.Setenv("FEATURE_REGISTRATION_ENABLED", "false")
	defer os.Unsetenv("FEATURE_REGISTRATION_ENABLED")

	assert.False(t, NewEnvManager("").IsEnabled(context.Background(), RegistrationEnabled))
}

func TestGetAllFlags(t *testing.T) {
	flags := map[FeatureFlag]bool{
		SmartSearchEnabled:  true,
		RegistrationEnabled: false,
		RateLimitEnabled:    true,
		SessionCacheEnabled: true,
	}

	manager := NewStaticManager(flags)
	assert.Equal(t, flags, manager.GetAllFlags())
}

func TestFeatureFlagNames(t *testing.T) {
	assert.Equal(t, FeatureFlag("smart_search_enabled"), SmartSearchEnabled)
	assert.Equal(t, FeatureFlag("registration_enabled"), RegistrationEnabled)
	assert.Equal(t, FeatureFlag("rate_limit_enabled"), RateLimitEnabled)
	assert.Equal(t, FeatureFlag("session_cache_enabled"), SessionCacheEnabled)
}
