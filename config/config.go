package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	App      AppConfig
	Gamma    GammaConfig
	Email    EmailConfig
	Slack    SlackConfig
	LLM      LLMConfig
	Deck     DeckConfig
	Jobs     JobsConfig
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// DatabaseConfig is optional; feedback is only persisted when DSN is set.
type DatabaseConfig struct {
	DSN       string
	MaxConns  int
	ConnectTO time.Duration
	PingTO    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	ServiceName string
	CORSOrigins []string
}

type GammaConfig struct {
	APIKey        string
	BaseURL       string
	PollInterval  time.Duration
	SyncAttempts  int
	AsyncAttempts int
}

type EmailConfig struct {
	ResendAPIKey string
	BaseURL      string
	From         string
	FeedbackFrom string
	FeedbackTo   string
}

type SlackConfig struct {
	FeedbackWebhook string
}

type LLMConfig struct {
	Provider        string
	AnthropicAPIKey string
	AnthropicURL    string
	AnthropicModel  string
	GeminiAPIKey    string
	GeminiModel     string
	MaxTokens       int
}

type DeckConfig struct {
	FiguresPath   string
	MinCategories int
	MinFields     int
}

type JobsConfig struct {
	SweepSpec  string
	StaleAfter time.Duration
	JobTTL     time.Duration
	SessionTTL time.Duration
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			DSN:       getEnv("DB_DSN", ""),
			MaxConns:  getEnvAsInt("DB_MAX_CONNS", 4),
			ConnectTO: getEnvAsDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
			PingTO:    getEnvAsDuration("DB_PING_TIMEOUT", 2*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			ServiceName: getEnv("SERVICE_NAME", "deck-backend"),
			CORSOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Gamma: GammaConfig{
			APIKey:        getEnv("GAMMA_API_KEY", ""),
			BaseURL:       getEnv("GAMMA_BASE_URL", "https://public-api.gamma.app/v1.0"),
			PollInterval:  getEnvAsDuration("GAMMA_POLL_INTERVAL", 2*time.Second),
			SyncAttempts:  getEnvAsInt("GAMMA_SYNC_ATTEMPTS", 60),
			AsyncAttempts: getEnvAsInt("GAMMA_ASYNC_ATTEMPTS", 90),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			BaseURL:      getEnv("RESEND_BASE_URL", "https://api.resend.com"),
			From:         getEnv("EMAIL_FROM", "Investor Deck <noreply@resend.dev>"),
			FeedbackFrom: getEnv("FEEDBACK_EMAIL_FROM", "Deck Generator Feedback <noreply@resend.dev>"),
			FeedbackTo:   getEnv("FEEDBACK_EMAIL", ""),
		},
		Slack: SlackConfig{
			FeedbackWebhook: getEnv("SLACK_FEEDBACK_WEBHOOK", ""),
		},
		LLM: LLMConfig{
			Provider:        strings.ToLower(getEnv("LLM_PROVIDER", "anthropic")),
			AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
			AnthropicURL:    getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
			AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
			GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
			GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			MaxTokens:       getEnvAsInt("LLM_MAX_TOKENS", 1024),
		},
		Deck: DeckConfig{
			FiguresPath:   getEnv("DECK_FIGURES_PATH", ""),
			MinCategories: getEnvAsInt("DECK_MIN_CATEGORIES", 3),
			MinFields:     getEnvAsInt("DECK_MIN_FIELDS", 5),
		},
		Jobs: JobsConfig{
			SweepSpec:  getEnv("JOB_SWEEP_SPEC", "@every 1m"),
			StaleAfter: getEnvAsDuration("JOB_STALE_AFTER", 10*time.Minute),
			JobTTL:     getEnvAsDuration("JOB_TTL", 7*24*time.Hour),
			SessionTTL: getEnvAsDuration("SESSION_TTL", 30*24*time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	switch c.LLM.Provider {
	case "anthropic", "gemini":
	default:
		return fmt.Errorf("LLM_PROVIDER must be anthropic or gemini, got %q", c.LLM.Provider)
	}

	if c.Gamma.SyncAttempts <= 0 || c.Gamma.AsyncAttempts <= 0 {
		return fmt.Errorf("GAMMA_SYNC_ATTEMPTS and GAMMA_ASYNC_ATTEMPTS must be positive")
	}

	if c.Gamma.PollInterval <= 0 {
		return fmt.Errorf("GAMMA_POLL_INTERVAL must be positive")
	}

	// A job still polling Gamma must not be swept as stale.
	if budget := c.Gamma.PollInterval * time.Duration(c.Gamma.AsyncAttempts); c.Jobs.StaleAfter <= budget {
		return fmt.Errorf("JOB_STALE_AFTER (%s) must exceed GAMMA_POLL_INTERVAL x GAMMA_ASYNC_ATTEMPTS (%s)", c.Jobs.StaleAfter, budget)
	}

	if c.Deck.MinCategories < 0 || c.Deck.MinFields < 0 {
		return fmt.Errorf("DECK_MIN_CATEGORIES and DECK_MIN_FIELDS must not be negative")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
