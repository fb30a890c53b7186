package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Service  ServiceConfig  `envconfig:"SERVICE"`
	Postgres PostgresConfig `envconfig:"POSTGRES"`
	Report   ReportConfig   `envconfig:"REPORT"`
}

type ServiceConfig struct {
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	APIPort         string        `envconfig:"API_PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"localhost:8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	// LogLevel overrides the environment's default level when set.
	LogLevel string `envconfig:"LOG_LEVEL"`
}

type PostgresConfig struct {
	DSN             string        `envconfig:"DSN" required:"true"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
	// PageSize is the number of rows fetched per round trip when reading a range.
	PageSize int `envconfig:"PAGE_SIZE" default:"1000"`
}

type ReportConfig struct {
	Timezone         string `envconfig:"TIMEZONE" default:"UTC"`
	Locale           string `envconfig:"LOCALE" default:"es"`
	DefaultRangeDays int    `envconfig:"DEFAULT_RANGE_DAYS" default:"30"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Postgres.DSN) == "" {
		return fmt.Errorf("POSTGRES_DSN is empty")
	}
	if c.Postgres.PageSize <= 0 {
		return fmt.Errorf("POSTGRES_PAGE_SIZE must be positive, got %d", c.Postgres.PageSize)
	}
	if c.Report.DefaultRangeDays <= 0 {
		return fmt.Errorf("REPORT_DEFAULT_RANGE_DAYS must be positive, got %d", c.Report.DefaultRangeDays)
	}
	if _, err := c.Report.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the zone report periods are cut in.
func (r ReportConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown REPORT_TIMEZONE %q: %w", r.Timezone, err)
	}
	return loc, nil
}
