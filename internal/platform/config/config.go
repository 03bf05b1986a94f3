package config

import (
	"fmt"
	"log"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve in minimal containers

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	MigrationsPath  string
	JWTSecret       string
	JWTIssuer       string
	FrontendBaseURL string
	Location        *time.Location // Months are bucketed in this zone
	PosthogAPIKey   string

	// Ledger writes run detached from the request and give up after WriteTimeout
	WriteTimeout time.Duration

	LLM LLMConfig
}

// LLMConfig configures the text-generation collaborator.
type LLMConfig struct {
	BaseURL   string
	Model     string
	APIKey    string
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
	RateLimit string // ulule/limiter format, e.g. "20-M"
}

// Enabled reports whether an API key was configured. Without one every AI flow uses its fallback.
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:9002")
	v.SetDefault("TIMEZONE", "Asia/Kolkata")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("WRITE_TIMEOUT", "10s")
	v.SetDefault("LLM_BASE_URL", "")
	v.SetDefault("LLM_MODEL", "gpt-4o-mini")
	v.SetDefault("LLM_API_KEY", "")
	v.SetDefault("LLM_TIMEOUT", "30s")
	v.SetDefault("AI_CACHE_SIZE", 256)
	v.SetDefault("AI_CACHE_TTL", "10m")
	v.SetDefault("AI_RATE_LIMIT", "20-M")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		FrontendBaseURL: v.GetString("FRONTEND_BASE_URL"),
		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		WriteTimeout:    v.GetDuration("WRITE_TIMEOUT"),
		LLM: LLMConfig{
			BaseURL:   v.GetString("LLM_BASE_URL"),
			Model:     v.GetString("LLM_MODEL"),
			APIKey:    v.GetString("LLM_API_KEY"),
			Timeout:   v.GetDuration("LLM_TIMEOUT"),
			CacheSize: v.GetInt("AI_CACHE_SIZE"),
			CacheTTL:  v.GetDuration("AI_CACHE_TTL"),
			RateLimit: v.GetString("AI_RATE_LIMIT"),
		},
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "insecure-development-secret"
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	loc, err := time.LoadLocation(v.GetString("TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", v.GetString("TIMEZONE"), err)
	}
	cfg.Location = loc

	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
		log.Printf("Warning: Invalid WRITE_TIMEOUT. Defaulting to %s.\n", cfg.WriteTimeout)
	}
	if cfg.LLM.Timeout <= 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}
	if cfg.LLM.CacheSize <= 0 {
		cfg.LLM.CacheSize = 256
	}
	if !cfg.LLM.Enabled() {
		log.Println("Warning: LLM_API_KEY not set. AI features will use fallback responses.")
	}

	return cfg, nil
}
