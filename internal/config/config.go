// Package config loads server configuration from the environment and an
// optional .env file.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/toon-tailor/internal/clients/generator"
	"github.com/KirkDiggler/toon-tailor/internal/errors"
	"github.com/KirkDiggler/toon-tailor/internal/pkg/idgen"
	"github.com/KirkDiggler/toon-tailor/internal/repositories/character"
	"github.com/KirkDiggler/toon-tailor/internal/services/transfer"
	"github.com/KirkDiggler/toon-tailor/internal/storage/backend"
)

// DefaultEnvFile is read when Load is given no files
const DefaultEnvFile = ".env"

// Config is the server configuration
type Config struct {
	Port     int    `env:"TOON_TAILOR_PORT" envDefault:"50051"`
	LogLevel string `env:"TOON_TAILOR_LOG_LEVEL" envDefault:"info"`

	Storage     string `env:"TOON_TAILOR_STORAGE" envDefault:"sqlite"`
	SQLitePath  string `env:"TOON_TAILOR_SQLITE_PATH" envDefault:"toon-tailor.db"`
	RedisAddr   string `env:"TOON_TAILOR_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPrefix string `env:"TOON_TAILOR_REDIS_PREFIX" envDefault:"toon-tailor:"`
	StorageKey  string `env:"TOON_TAILOR_STORAGE_KEY" envDefault:"character-creator-data"`

	ImportMode     string `env:"TOON_TAILOR_IMPORT_MODE" envDefault:"strict"`
	ImportMaxBytes int64  `env:"TOON_TAILOR_IMPORT_MAX_BYTES" envDefault:"1048576"`
	IDStrategy     string `env:"TOON_TAILOR_ID_STRATEGY" envDefault:"ulid"`

	Generator GeneratorConfig
}

// GeneratorConfig configures the AI generation client
type GeneratorConfig struct {
	APIKey  string        `env:"OPENROUTER_API_KEY"`
	BaseURL string        `env:"TOON_TAILOR_GENERATOR_BASE_URL"`
	Model   string        `env:"TOON_TAILOR_GENERATOR_MODEL"`
	Referer string        `env:"TOON_TAILOR_GENERATOR_REFERER"`
	Timeout time.Duration `env:"TOON_TAILOR_GENERATOR_TIMEOUT" envDefault:"2m"`
}

// LogLevels lists the accepted log levels
var LogLevels = []string{"debug", "info", "warn", "error"}

// Load reads env files, then the environment. Variables already set in the
// environment win over the files; missing files are skipped.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, file := range envFiles {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read env file").
				WithMeta("file", file)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("TOON_TAILOR_PORT", c.Port, 1, 65535, vb)
	errors.ValidateEnum("TOON_TAILOR_LOG_LEVEL", strings.ToLower(c.LogLevel), LogLevels, vb)
	errors.ValidateEnum("TOON_TAILOR_STORAGE", c.Storage, backend.Names, vb)
	errors.ValidateEnum("TOON_TAILOR_IMPORT_MODE", c.ImportMode,
		[]string{string(transfer.ModeStrict), string(transfer.ModeLenient)}, vb)
	errors.ValidateEnum("TOON_TAILOR_ID_STRATEGY", c.IDStrategy,
		[]string{idgen.StrategyULID, idgen.StrategyUUID, idgen.StrategyTimestamp}, vb)
	if c.ImportMaxBytes <= 0 {
		vb.Field("TOON_TAILOR_IMPORT_MAX_BYTES", "must be positive")
	}
	if c.Generator.Timeout <= 0 {
		vb.Field("TOON_TAILOR_GENERATOR_TIMEOUT", "must be positive")
	}
	return vb.Build()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// BackendConfig returns the storage backend settings
func (c *Config) BackendConfig() *backend.Config {
	return &backend.Config{
		Backend:     c.Storage,
		SQLitePath:  c.SQLitePath,
		RedisAddr:   c.RedisAddr,
		RedisPrefix: c.RedisPrefix,
	}
}

// RepositoryKey returns the key the collection is stored under
func (c *Config) RepositoryKey() string {
	if c.StorageKey == "" {
		return character.DefaultKey
	}
	return c.StorageKey
}

// GeneratorClientConfig returns the generation client settings
func (c *Config) GeneratorClientConfig() *generator.Config {
	return &generator.Config{
		APIKey:  c.Generator.APIKey,
		BaseURL: c.Generator.BaseURL,
		Model:   c.Generator.Model,
		Referer: c.Generator.Referer,
		Timeout: c.Generator.Timeout,
	}
}
