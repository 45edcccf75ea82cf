package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database types accepted in DATABASE_TYPE. Empty disables storage.
const (
	DatabaseNone     = ""
	DatabaseMemory   = "memory"
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port            int
	DatabaseType    string
	DatabaseURL     string
	FingerprintSalt string

	UseMock         bool
	GeminiAPIKey    string
	GeminiModel     string
	ClassifyTimeout time.Duration
	MockDelay       time.Duration

	AllowedOrigins []string
	Env            string
	LogLevel       string
}

// IsProduction reports whether APP_ENV is production
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// StorageEnabled reports whether a participation store is configured
func (c Config) StorageEnabled() bool {
	return c.DatabaseType != DatabaseNone
}

// ParseFlags builds the Config from flags, then environment, then the .env file
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, origins string

	fs := flag.NewFlagSet("bio-mbti", flag.ContinueOnError)

	fs.StringVar(&envFile, "env-file", ".env", "Path to .env file (ignored if missing)")

	// Network and storage
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres, sqlite, memory; empty disables storage)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.FingerprintSalt, "salt", "", "Fingerprint salt (prefer env)")

	// Classifier
	fs.BoolVar(&cfg.UseMock, "mock", false, "Return canned results instead of calling Gemini")
	fs.StringVar(&cfg.GeminiModel, "model", "", "Gemini model name")
	fs.DurationVar(&cfg.ClassifyTimeout, "timeout", 0, "Classifier timeout")
	fs.DurationVar(&cfg.MockDelay, "mock-delay", 0, "Artificial delay in mock mode")

	// HTTP and logging
	fs.StringVar(&origins, "origins", "", "Comma-separated allowed CORS origins")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Real environment wins over the file
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3001 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	if !set["t"] {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	cfg.DatabaseType = strings.ToLower(strings.TrimSpace(cfg.DatabaseType))
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	switch cfg.DatabaseType {
	case DatabaseNone, DatabaseMemory:
	case DatabaseSQLite, DatabasePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("database URL required for %s (use -d or DATABASE_URL env)", cfg.DatabaseType)
		}
	default:
		return Config{}, fmt.Errorf("invalid DATABASE_TYPE: %q", cfg.DatabaseType)
	}

	if cfg.FingerprintSalt == "" {
		cfg.FingerprintSalt = os.Getenv("FINGERPRINT_SALT")
	}

	if !set["mock"] {
		cfg.UseMock = strings.EqualFold(strings.TrimSpace(os.Getenv("USE_MOCK")), "true")
	}

	// Secrets only come from the environment
	cfg.GeminiAPIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))

	if cfg.GeminiModel == "" {
		cfg.GeminiModel = os.Getenv("GEMINI_MODEL")
	}

	var err error
	if !set["timeout"] {
		if cfg.ClassifyTimeout, err = envDuration("CLASSIFY_TIMEOUT", 30*time.Second); err != nil {
			return Config{}, err
		}
	}
	if cfg.ClassifyTimeout <= 0 {
		return Config{}, errors.New("classifier timeout must be positive")
	}
	if !set["mock-delay"] {
		if cfg.MockDelay, err = envDuration("MOCK_DELAY", 300*time.Millisecond); err != nil {
			return Config{}, err
		}
	}

	if origins == "" {
		origins = os.Getenv("ALLOWED_ORIGINS")
	}
	cfg.AllowedOrigins = splitList(origins)

	cfg.Env = os.Getenv("APP_ENV")
	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
