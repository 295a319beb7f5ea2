package config

import (
	"StimulusAssistant/pkg/intent"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"APP_NAME", "APP_ENV", "APP_PORT", "APP_VERSION", "STATIC_DIR",
	"CORS_ALLOW_ORIGINS", "CHAT_REPLY_DELAY", "SITE_BASE_URL", "SITE_CONTACT_EMAIL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	clearEnv(t)

	env, err := LoadEnv(NewValidator())
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, env.AppEnv)
	assert.Equal(t, "3000", env.Port)
	assert.Equal(t, "phase-3-final-1.1.0", env.Version)
	assert.Equal(t, "./public", env.StaticDir)
	assert.Equal(t, "*", env.AllowOrigins)
	assert.True(t, env.ReplyDelay)
	assert.Equal(t, intent.DefaultLinks(), env.Links())
}

func TestLoadEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("APP_PORT", "8080")
	t.Setenv("CHAT_REPLY_DELAY", "false")
	t.Setenv("SITE_BASE_URL", "https://staging.stimulus.org.in/")
	t.Setenv("SITE_CONTACT_EMAIL", "hello@stimulus.org.in")

	env, err := LoadEnv(NewValidator())
	require.NoError(t, err)

	assert.Equal(t, "8080", env.Port)
	assert.False(t, env.ReplyDelay)

	links := env.Links()
	assert.Equal(t, "https://staging.stimulus.org.in/register", links.Register)
	assert.Equal(t, "hello@stimulus.org.in", links.Email)
}

func TestLoadEnv_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"APP_PORT", "http"},
		{"APP_ENV", "qa"},
		{"CHAT_REPLY_DELAY", "sometimes"},
		{"SITE_BASE_URL", "stimulus"},
		{"SITE_CONTACT_EMAIL", "founder"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadEnv(NewValidator())
			assert.Error(t, err)
		})
	}
}
