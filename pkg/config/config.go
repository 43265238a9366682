package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix is passed to envconfig; individual fields carry fully
	// prefixed names so the prefix stays empty here.
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	// EnvStripeSecretKey is referenced in operator-facing messages when the
	// listing endpoint runs unconfigured.
	EnvStripeSecretKey = "UISTUDIO_STRIPE_SECRET_KEY"
)

type Config struct {
	App    AppConfig
	Stripe StripeConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"UISTUDIO_APP_ENV" required:"true"`
	Port         string `envconfig:"UISTUDIO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"UISTUDIO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"UISTUDIO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type StripeConfig struct {
	SecretKey string `envconfig:"UISTUDIO_STRIPE_SECRET_KEY"`
	Env       string `envconfig:"UISTUDIO_STRIPE_ENV" default:"test"`

	// Optional comma-separated allow-lists. When set, the listing endpoint
	// retrieves each id individually instead of bulk-listing.
	ProductIDs []string `envconfig:"UISTUDIO_STRIPE_PRODUCT_IDS"`
	PriceIDs   []string `envconfig:"UISTUDIO_STRIPE_PRICE_IDS"`

	ListLimit int64 `envconfig:"UISTUDIO_STRIPE_LIST_LIMIT" default:"100"`
}

// Configured reports whether a secret key is present.
func (s StripeConfig) Configured() bool {
	return strings.TrimSpace(s.SecretKey) != ""
}

// Environment returns the normalized Stripe environment (test/live).
func (s StripeConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "test"
	}
	return env
}
