package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. PAIE_ADDR.
const Prefix = "PAIE"

type Config struct {
	Addr        string `envconfig:"ADDR" default:":8080"`
	Environment string `envconfig:"ENV" default:"development"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// ScheduleFile optionally replaces the built-in rate sheet.
	ScheduleFile   string `envconfig:"SCHEDULE_FILE"`
	ComputeWorkers int    `envconfig:"COMPUTE_WORKERS" default:"4"`

	MaxBodyBytes       int64 `envconfig:"MAX_BODY_BYTES" default:"1048576"`
	RateLimitPerMinute int   `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
	MetricsEnabled     bool  `envconfig:"METRICS_ENABLED" default:"true"`

	// Auth is enabled when AuthSecret is set.
	AuthSecret           string        `envconfig:"AUTH_SECRET"`
	OperatorPasswordHash string        `envconfig:"OPERATOR_PASSWORD_HASH"`
	TokenTTL             time.Duration `envconfig:"TOKEN_TTL" default:"12h"`

	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// Load reads the given dotenv files, when present, then the environment.
// Variables already set in the environment win over dotenv values.
func Load(dotenv ...string) (Config, error) {
	for _, path := range dotenv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func (c Config) AuthEnabled() bool {
	return strings.TrimSpace(c.AuthSecret) != ""
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%s_ADDR is required", Prefix)
	}
	if c.ComputeWorkers <= 0 {
		return fmt.Errorf("%s_COMPUTE_WORKERS must be positive", Prefix)
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("%s_MAX_BODY_BYTES must be at least 1024", Prefix)
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("%s_RATE_LIMIT_PER_MINUTE must be positive", Prefix)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text", "plain":
	default:
		return fmt.Errorf("%s_LOG_FORMAT must be json, text or plain", Prefix)
	}
	if c.AuthEnabled() {
		if len(c.AuthSecret) < 32 {
			return fmt.Errorf("%s_AUTH_SECRET must be at least 32 characters", Prefix)
		}
		if strings.TrimSpace(c.OperatorPasswordHash) == "" {
			return fmt.Errorf("%s_OPERATOR_PASSWORD_HASH must be set when auth is enabled", Prefix)
		}
		if c.TokenTTL <= 0 {
			return fmt.Errorf("%s_TOKEN_TTL must be positive", Prefix)
		}
	} else if c.Environment == "production" {
		return fmt.Errorf("%s_AUTH_SECRET must be set in production", Prefix)
	}
	if c.ScheduleFile != "" {
		if _, err := os.Stat(c.ScheduleFile); err != nil {
			return fmt.Errorf("%s_SCHEDULE_FILE: %w", Prefix, err)
		}
	}
	return nil
}
