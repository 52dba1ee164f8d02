package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process settings read from the environment (and .env via godotenv).
//
// DynamoDB table names and endpoint stay with the persistence layer, which
// reads them directly.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	MoMo MoMoConfig

	// Auth
	AuthJWTSecret string `env:"AUTH_JWT_SECRET"`
	AdminRole     string `env:"AUTH_ADMIN_ROLE" envDefault:"admin"`

	// Reconciliation
	ReconcileCron       string        `env:"RECONCILE_CRON"`
	CheckAllConcurrency int           `env:"CHECK_ALL_CONCURRENCY" envDefault:"8"`
	WaitTimeout         time.Duration `env:"MOMO_WAIT_TIMEOUT" envDefault:"300s"`
	WaitInterval        time.Duration `env:"MOMO_WAIT_INTERVAL" envDefault:"5s"`
}

// MoMoConfig carries the MTN MoMo collection product credentials.
type MoMoConfig struct {
	BaseURL           string        `env:"MOMO_BASE_URL" envDefault:"https://sandbox.momodeveloper.mtn.com"`
	SubscriptionKey   string        `env:"MOMO_SUBSCRIPTION_KEY"`
	APIUser           string        `env:"MOMO_API_USER"`
	APIKey            string        `env:"MOMO_API_KEY"`
	TargetEnvironment string        `env:"MOMO_TARGET_ENVIRONMENT" envDefault:"sandbox"`
	Currency          string        `env:"MOMO_CURRENCY" envDefault:"EUR"`
	CallbackURL       string        `env:"MOMO_CALLBACK_URL"`
	PayeeMSISDN       string        `env:"MOMO_PAYEE_MSISDN"`
	HTTPTimeout       time.Duration `env:"MOMO_HTTP_TIMEOUT" envDefault:"30s"`
	Mock              bool          `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.MoMo.BaseURL = strings.TrimRight(cfg.MoMo.BaseURL, "/")
	if cfg.CheckAllConcurrency < 1 {
		cfg.CheckAllConcurrency = 1
	}
	return cfg, nil
}

// Configured reports whether real provider calls can be made.
func (c MoMoConfig) Configured() bool {
	return c.SubscriptionKey != "" && c.APIUser != "" && c.APIKey != ""
}

// AuthEnabled reports whether admin routes require a bearer token.
func (c *Config) AuthEnabled() bool {
	return strings.TrimSpace(c.AuthJWTSecret) != ""
}
