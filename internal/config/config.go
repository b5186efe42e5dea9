package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode       bool          `env:"TEST_MODE" envDefault:"false"`
	Port             uint          `env:"PORT" envDefault:"9090"`
	Secret           string        `env:"SECRET,required,notEmpty"`
	PostgresqlURL    string        `env:"POSTGRESQL_URL,required,notEmpty"`
	MigrationsPath   string        `env:"MIGRATIONS_PATH"`
	BcryptHasherCost int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	AllowedOrigins   []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	SentryDsn        string        `env:"SENTRY_DSN"`
	HTTPReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	HTTPWriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	if cfg.BcryptHasherCost < 4 || cfg.BcryptHasherCost > 31 {
		return nil, fmt.Errorf("invalid BCRYPT_HASHER_COST value: %d", cfg.BcryptHasherCost)
	}
	return cfg, nil
}
