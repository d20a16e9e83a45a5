package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	Env             string        `env:"ENV" envDefault:"dev"`
	CORSAllowOrigin []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	Locale          string        `env:"LOCALE" envDefault:"id"`
	LogJSON         bool          `env:"LOG_JSON" envDefault:"false"`
	LogDebug        bool          `env:"LOG_DEBUG" envDefault:"false"`
	ChromePath      string        `env:"CHROME_PATH"`
	ExportTimeout   time.Duration `env:"EXPORT_TIMEOUT" envDefault:"0s"`
	ExportRate      float64       `env:"EXPORT_RATE_PER_SEC" envDefault:"0.5"`
	ExportBurst     int           `env:"EXPORT_BURST" envDefault:"5"`
	ExportStore     string        `env:"EXPORT_STORE" envDefault:"none"`
	LocalStoreDir   string        `env:"LOCAL_STORE_DIR" envDefault:"./data"`
	AWSRegion       string        `env:"AWS_REGION"`
	S3Bucket        string        `env:"S3_BUCKET"`
	S3Prefix        string        `env:"S3_PREFIX"`
	SSEKMSKeyID     string        `env:"SSE_KMS_KEY_ID"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience. Existing variables win.
	_ = godotenv.Load(existingFiles(".env", "cmd/.env")...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.ExportStore = normalizeStoreType(cfg.ExportStore)
	cfg.CORSAllowOrigin = splitAndTrim(cfg.CORSAllowOrigin)
	if cfg.ExportStore == "s3" && strings.TrimSpace(cfg.S3Bucket) == "" {
		return Config{}, fmt.Errorf("S3_BUCKET is required when EXPORT_STORE=s3")
	}
	return cfg, nil
}

func splitAndTrim(parts []string) []string {
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	case "local":
		return "local"
	default:
		return "none"
	}
}
