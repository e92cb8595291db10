package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	llm_constants "github.com/yashwanthkasi9182/PlayMate/constants/llm"
	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration of the server. Values are read from an
// optional YAML file (PLAYMATE_CONFIG) and then overridden by the
// environment, which is where .env values end up.
type Config struct {
	Port        string   `yaml:"port"`
	Prod        bool     `yaml:"prod"`
	LogLevel    string   `yaml:"log_level"`
	CORSOrigins []string `yaml:"cors_origins"`

	// Key signs session cookies and share tokens
	Key string `yaml:"key"`

	LLM      LLMConfig      `yaml:"llm"`
	RedisURL string         `yaml:"redis_url"`
	Postgres PostgresConfig `yaml:"postgres"`

	ShareTTL          time.Duration `yaml:"share_ttl"`
	RetentionSchedule string        `yaml:"retention_schedule"`
}

type LLMConfig struct {
	Provider     string        `yaml:"provider"`
	GroqAPIKey   string        `yaml:"groq_api_key"`
	GroqBaseURL  string        `yaml:"groq_base_url"`
	GeminiAPIKey string        `yaml:"gemini_api_key"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxRetries   int           `yaml:"max_retries"`
}

type PostgresConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
	Verbose  bool   `yaml:"verbose"`
	Migrate  bool   `yaml:"migrate"`
}

// Enabled reports whether a database was configured
func (p PostgresConfig) Enabled() bool {
	return p.Host != ""
}

func (p PostgresConfig) DSN() string {
	port := p.Port
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s", p.User, p.Password, p.Host, port, p.Database)
}

const devKey = "playmate-development-key"

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Port:        "8080",
		LogLevel:    "info",
		CORSOrigins: []string{"*"},
		LLM: LLMConfig{
			Provider:   llm_constants.ProviderGroq,
			Timeout:    30 * time.Second,
			MaxRetries: 2,
		},
		ShareTTL:          7 * 24 * time.Hour,
		RetentionSchedule: "@hourly",
	}
}

// Load builds the configuration from PLAYMATE_CONFIG and the environment
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("PLAYMATE_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if cfg.Key == "" && !cfg.Prod {
		cfg.Key = devKey
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	str := func(name string, dst *string) {
		if val := os.Getenv(name); val != "" {
			*dst = val
		}
	}
	var errs []error
	boolean := func(name string, dst *bool) {
		if val := os.Getenv(name); val != "" {
			b, err := strconv.ParseBool(val)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				return
			}
			*dst = b
		}
	}
	duration := func(name string, dst *time.Duration) {
		if val := os.Getenv(name); val != "" {
			d, err := time.ParseDuration(val)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				return
			}
			*dst = d
		}
	}

	str("PORT", &cfg.Port)
	boolean("PROD", &cfg.Prod)
	str("LOG_LEVEL", &cfg.LogLevel)
	if val := os.Getenv("CORS_ORIGINS"); val != "" {
		cfg.CORSOrigins = splitList(val)
	}
	str("KEY", &cfg.Key)

	str("LLM_PROVIDER", &cfg.LLM.Provider)
	str("GROQ_API_KEY", &cfg.LLM.GroqAPIKey)
	str("GROQ_BASE_URL", &cfg.LLM.GroqBaseURL)
	str("GEMINI_API_KEY", &cfg.LLM.GeminiAPIKey)
	duration("LLM_TIMEOUT", &cfg.LLM.Timeout)
	if val := os.Getenv("LLM_MAX_RETRIES"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			errs = append(errs, fmt.Errorf("LLM_MAX_RETRIES: %w", err))
		} else {
			cfg.LLM.MaxRetries = n
		}
	}

	str("REDIS_URL", &cfg.RedisURL)

	str("POSTGRES_USER", &cfg.Postgres.User)
	str("POSTGRES_PASSWORD", &cfg.Postgres.Password)
	str("POSTGRES_HOST", &cfg.Postgres.Host)
	str("POSTGRES_PORT", &cfg.Postgres.Port)
	str("POSTGRES_DATABASE", &cfg.Postgres.Database)
	boolean("VERBOSE_POSTGRES", &cfg.Postgres.Verbose)
	boolean("MIGRATE_POSTGRES", &cfg.Postgres.Migrate)

	duration("SHARE_TTL", &cfg.ShareTTL)
	str("RETENTION_SCHEDULE", &cfg.RetentionSchedule)

	return errors.Join(errs...)
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the configuration for values the server cannot start with
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("port is required"))
	}
	switch c.LLM.Provider {
	case llm_constants.ProviderGroq:
		if c.LLM.GroqAPIKey == "" {
			errs = append(errs, errors.New("GROQ_API_KEY is required for the groq provider"))
		}
	case llm_constants.ProviderGemini:
		if c.LLM.GeminiAPIKey == "" {
			errs = append(errs, errors.New("GEMINI_API_KEY is required for the gemini provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown LLM provider %q", c.LLM.Provider))
	}
	if c.LLM.Timeout <= 0 {
		errs = append(errs, errors.New("LLM timeout must be positive"))
	}
	if c.LLM.MaxRetries < 0 {
		errs = append(errs, errors.New("LLM max retries cannot be negative"))
	}
	if c.Key == "" {
		errs = append(errs, errors.New("KEY is required in production"))
	}
	if c.ShareTTL <= 0 {
		errs = append(errs, errors.New("share TTL must be positive"))
	}

	return errors.Join(errs...)
}
