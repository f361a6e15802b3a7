package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"mailflow/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Nested
// structs are parsed with their envPrefix; see the configs package for
// defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP     configs.HTTP       `envPrefix:"HTTP_"`
	Log      configs.Logger     `envPrefix:"LOG_"`
	Psql     configs.Postgres   `envPrefix:"PSQL_"`
	SMTP     configs.SMTP       `envPrefix:"SMTP_"`
	Dispatch configs.Dispatcher `envPrefix:"DISPATCH_"`
}

// Load reads a .env file from the working directory when one exists and
// then parses the process environment into a Config. Variables already
// set in the environment win over the file.
func Load(files ...string) (Config, error) {
	var cfg Config
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
