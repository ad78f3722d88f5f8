package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "", cfg.Database.DSN)
	assert.Equal(t, "https://public-api.gamma.app/v1.0", cfg.Gamma.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Gamma.PollInterval)
	assert.Equal(t, 60, cfg.Gamma.SyncAttempts)
	assert.Equal(t, 90, cfg.Gamma.AsyncAttempts)
	assert.Equal(t, 1024, cfg.LLM.MaxTokens)
	assert.Equal(t, 3, cfg.Deck.MinCategories)
	assert.Equal(t, 5, cfg.Deck.MinFields)
	assert.Equal(t, 7*24*time.Hour, cfg.Jobs.JobTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GAMMA_POLL_INTERVAL", "500ms")
	t.Setenv("DECK_MIN_FIELDS", "8")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("JOB_STALE_AFTER", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Gamma.PollInterval)
	assert.Equal(t, 8, cfg.Deck.MinFields)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.CORSOrigins)
	assert.Equal(t, 10*time.Minute, cfg.Jobs.StaleAfter)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8080"},
			Redis:  RedisConfig{Addr: "localhost:6379"},
			LLM:    LLMConfig{Provider: "anthropic"},
			Gamma:  GammaConfig{PollInterval: time.Second, SyncAttempts: 1, AsyncAttempts: 1},
			Jobs:   JobsConfig{StaleAfter: time.Minute},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing port", func(c *Config) { c.Server.Port = "" }},
		{"missing redis", func(c *Config) { c.Redis.Addr = "" }},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "openai" }},
		{"zero attempts", func(c *Config) { c.Gamma.SyncAttempts = 0 }},
		{"zero interval", func(c *Config) { c.Gamma.PollInterval = 0 }},
		{"negative gate", func(c *Config) { c.Deck.MinFields = -1 }},
		{"stale before polling ends", func(c *Config) {
			c.Gamma.AsyncAttempts = 90
			c.Gamma.PollInterval = 2 * time.Second
			c.Jobs.StaleAfter = 3 * time.Minute
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_RejectsStaleAfterWithinPollBudget(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GAMMA_POLL_INTERVAL", "10s")
	t.Setenv("GAMMA_ASYNC_ATTEMPTS", "90")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JOB_STALE_AFTER")

	t.Setenv("JOB_STALE_AFTER", "20m")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20*time.Minute, cfg.Jobs.StaleAfter)
}
