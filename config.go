package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config is read from the yaml file first,
// environment variables override it
type Config struct {
	HTTPPort  string `yaml:"httpPort" env:"BUYSELL_HTTP_PORT" env-default:":3000"`
	LogLevel  string `yaml:"logLevel" env:"BUYSELL_LOG_LEVEL" env-default:"info"`
	LogPretty bool   `yaml:"logPretty" env:"BUYSELL_LOG_PRETTY"`

	RatesURL         string        `yaml:"ratesURL" env:"BUYSELL_RATES_URL" env-default:"https://api.coingate.com/v2/rates/"`
	RatesTimeout     time.Duration `yaml:"ratesTimeout" env:"BUYSELL_RATES_TIMEOUT" env-default:"10s"`
	RatesMaxInFlight int64         `yaml:"ratesMaxInFlight" env:"BUYSELL_RATES_MAX_IN_FLIGHT" env-default:"10"`

	SessionTTL time.Duration `yaml:"sessionTTL" env:"BUYSELL_SESSION_TTL" env-default:"30m"`

	// optional, static currency registry is used when DBHost is empty
	DBUsername string `yaml:"dbUsername" env:"BUYSELL_DB_USERNAME"`
	DBPassword string `yaml:"dbPassword" env:"BUYSELL_DB_PASSWORD"`
	DBPort     string `yaml:"dbPort" env:"BUYSELL_DB_PORT" env-default:"5432"`
	DBHost     string `yaml:"dbHost" env:"BUYSELL_DB_HOST"`
	DBName     string `yaml:"dbName" env:"BUYSELL_DB_NAME"`
}

// LoadConfig reads configuration from path, if any,
// and applies environment overrides and defaults
func LoadConfig(path string) (Config, error) {
	cfg := Config{}

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}

		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read env: %w", err)
	}

	return cfg, nil
}

// DSN returns the postgres connection string,
// empty when no database is configured
func (c Config) DSN() string {
	if c.DBHost == "" {
		return ""
	}

	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUsername,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
