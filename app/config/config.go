package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	SourceMemory   = "memory"
	SourcePostgres = "postgres"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	Source   string `env:"CATALOG_SOURCE" envDefault:"memory"`
	Seed     bool   `env:"CATALOG_SEED" envDefault:"true"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Postgres Postgres `envPrefix:"POSTGRES_"`
}

type Postgres struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	DB       string `env:"DB"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// FromMap parses cfg from the given variables only.
func FromMap(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Source {
	case SourceMemory:
		return nil
	case SourcePostgres:
		if c.Postgres.User == "" || c.Postgres.DB == "" {
			return errors.New("postgres source requires POSTGRES_USER and POSTGRES_DB")
		}
		return nil
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Source)
	}
}

func (c Config) PostgresDSN() string {
	p := c.Postgres
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DB, p.SSLMode)
}
