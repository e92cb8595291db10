package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PLAYMATE_CONFIG", "PORT", "PROD", "LOG_LEVEL", "CORS_ORIGINS", "KEY",
		"LLM_PROVIDER", "GROQ_API_KEY", "GROQ_BASE_URL", "GEMINI_API_KEY", "LLM_TIMEOUT", "LLM_MAX_RETRIES",
		"REDIS_URL", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_HOST", "POSTGRES_PORT",
		"POSTGRES_DATABASE", "VERBOSE_POSTGRES", "MIGRATE_POSTGRES", "SHARE_TTL", "RETENTION_SCHEDULE",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GROQ_API_KEY", "gsk_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "groq", cfg.LLM.Provider)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 2, cfg.LLM.MaxRetries)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, devKey, cfg.Key)
	assert.False(t, cfg.Postgres.Enabled())
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("LLM_TIMEOUT", "10s")
	t.Setenv("LLM_MAX_RETRIES", "0")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://playmate.app")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_USER", "play")
	t.Setenv("POSTGRES_PASSWORD", "mate")
	t.Setenv("POSTGRES_DATABASE", "playmate")
	t.Setenv("MIGRATE_POSTGRES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 0, cfg.LLM.MaxRetries)
	assert.Equal(t, []string{"http://localhost:3000", "https://playmate.app"}, cfg.CORSOrigins)
	assert.True(t, cfg.Postgres.Enabled())
	assert.True(t, cfg.Postgres.Migrate)
	assert.Equal(t, "postgresql://play:mate@db:5432/playmate", cfg.Postgres.DSN())
}

func TestLoadYAMLWithOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "playmate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "7000"
log_level: debug
llm:
  provider: groq
  groq_api_key: from-file
  timeout: 45s
share_ttl: 48h
`), 0o600))
	t.Setenv("PLAYMATE_CONFIG", path)
	t.Setenv("PORT", "7100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7100", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "from-file", cfg.LLM.GroqAPIKey)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 2, cfg.LLM.MaxRetries)
	assert.Equal(t, 48*time.Hour, cfg.ShareTTL)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"missing groq key", map[string]string{}, "GROQ_API_KEY is required"},
		{"missing gemini key", map[string]string{"LLM_PROVIDER": "gemini"}, "GEMINI_API_KEY is required"},
		{"unknown provider", map[string]string{"LLM_PROVIDER": "openai"}, `unknown LLM provider "openai"`},
		{"bad timeout", map[string]string{"GROQ_API_KEY": "k", "LLM_TIMEOUT": "soon"}, "LLM_TIMEOUT"},
		{"bad retries", map[string]string{"GROQ_API_KEY": "k", "LLM_MAX_RETRIES": "-1"}, "cannot be negative"},
		{"prod without key", map[string]string{"GROQ_API_KEY": "k", "PROD": "true"}, "KEY is required"},
		{"missing file", map[string]string{"PLAYMATE_CONFIG": "/nonexistent/playmate.yaml"}, "failed to read configuration file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	_, err = NewLogger("loud", false)
	assert.Error(t, err)
}
