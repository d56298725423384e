package configs

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type ENV struct {
	Port   string `env:"APP_PORT" envDefault:"8080"`
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	DBDriver     string        `env:"DB_DRIVER" envDefault:"mysql"`
	DBHost       string        `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort       string        `env:"DB_PORT" envDefault:"3306"`
	DBUser       string        `env:"DB_USER" envDefault:"root"`
	DBPassword   string        `env:"DB_PASSWORD"`
	DBName       string        `env:"DB_NAME" envDefault:"logistics"`
	DBMaxRetries int           `env:"DB_MAX_RETRIES" envDefault:"10"`
	DBRetryDelay time.Duration `env:"DB_RETRY_DELAY" envDefault:"5s"`

	TablesFile string `env:"TABLES_FILE"`

	PricingAPIURL     string        `env:"PRICING_API_URL"`
	PricingAPIKey     string        `env:"PRICING_API_KEY"`
	PricingAPITimeout time.Duration `env:"PRICING_API_TIMEOUT" envDefault:"3s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func (e ENV) IsProduction() bool {
	return e.AppEnv == "production"
}

// LoadEnv reads .env when present and parses the process environment.
func LoadEnv() (ENV, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	var cfg ENV
	if err := env.Parse(&cfg); err != nil {
		return ENV{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
