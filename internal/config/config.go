package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DataSource selects where the API reads records from.
type DataSource string

const (
	SourceFiles    DataSource = "files"
	SourcePostgres DataSource = "postgres"
)

var (
	ErrUnknownSource   = errors.New("unknown DATA_SOURCE")
	ErrMissingDatabase = errors.New("DATABASE_URL environment variable is required for postgres data source")
)

// Config holds process configuration for the server and the data CLI.
type Config struct {
	Port     string
	LogLevel string

	// Generation pass
	DocsDir string
	DataDir string

	Source      DataSource
	DatabaseURL string

	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads .env.local (if present) and then the environment.
//
// Environment variables:
//   - PORT: listen port (default: 5050)
//   - LOG_LEVEL: debug, info, warn or error (default: info)
//   - DOCS_DIR: election document tree (default: ../election-docs)
//   - DATA_DIR: generated-data directory (default: data/generated)
//   - DATA_SOURCE: "files" or "postgres" (default: files)
//   - DATABASE_URL: Postgres DSN (required for postgres)
//   - CORS_ORIGINS: comma separated allow-list
//   - RATE_LIMIT_RPS / RATE_LIMIT_BURST: request rate limit, 0 disables
func Load() Config {
	_ = godotenv.Load(".env.local")
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "5050")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DOCS_DIR", "../election-docs")
	v.SetDefault("DATA_DIR", "data/generated")
	v.SetDefault("DATA_SOURCE", string(SourceFiles))
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("RATE_LIMIT_RPS", 20.0)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	return v
}

func fromViper(v *viper.Viper) Config {
	return Config{
		Port:           strings.TrimSpace(v.GetString("PORT")),
		LogLevel:       v.GetString("LOG_LEVEL"),
		DocsDir:        v.GetString("DOCS_DIR"),
		DataDir:        v.GetString("DATA_DIR"),
		Source:         DataSource(strings.ToLower(strings.TrimSpace(v.GetString("DATA_SOURCE")))),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.Source {
	case SourceFiles:
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return ErrMissingDatabase
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.Source)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit must not be negative (rps=%v burst=%d)", c.RateLimitRPS, c.RateLimitBurst)
	}
	return nil
}
