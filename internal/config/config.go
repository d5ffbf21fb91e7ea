package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPAddr     string          `env:"HTTP_ADDR" envDefault:":8080"`
	Periods      uint64          `env:"SIM_PERIODS" envDefault:"12"`
	Runs         int             `env:"SIM_RUNS" envDefault:"1"`
	Deposit      decimal.Decimal `env:"SIM_DEPOSIT" envDefault:"100"`
	IDFormat     string          `env:"ID_FORMAT" envDefault:"uuid"`
	LogLevel     string          `env:"LOG_LEVEL" envDefault:"info"`
	KafkaBrokers []string        `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string          `env:"KAFKA_TOPIC" envDefault:"ledger.record_finalized"`
}

// Load reads an optional .env file from the working directory and then
// parses the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Runs < 1 {
		return Config{}, fmt.Errorf("SIM_RUNS must be at least 1, got %d", cfg.Runs)
	}
	return cfg, nil
}
