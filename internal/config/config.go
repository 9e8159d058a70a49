package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Service holds the HTTP service settings.
type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" required:"true"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	Host        string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
}

// Redis holds the session store settings. An empty Addr selects the
// in-memory store, which only suits single-instance deployments.
type Redis struct {
	Addr          string `envconfig:"REDIS_ADDR" default:""`
	Password      string `envconfig:"REDIS_PASSWORD" default:""`
	DB            int    `envconfig:"REDIS_DB" default:"0"`
	SessionTTLMin int    `envconfig:"SESSION_TTL_MIN" default:"30"`
}

// Delivery holds the outbound sink endpoints and retry policy knobs.
type Delivery struct {
	CAPIEndpoint  string `envconfig:"CAPI_ENDPOINT_URL" required:"true"`
	CRMWebhookURL string `envconfig:"CRM_WEBHOOK_URL" default:""`
	MaxAttempts   int    `envconfig:"DELIVERY_MAX_ATTEMPTS" default:"3"`
	RetryDelayMS  int    `envconfig:"DELIVERY_RETRY_DELAY_MS" default:"2000"`
	AsyncBuffer   int    `envconfig:"DELIVERY_ASYNC_BUFFER" default:"256"`
}

// Funnel holds the per-deployment pricing and currency for the funnel pages.
type Funnel struct {
	Currency              string  `envconfig:"FUNNEL_CURRENCY" default:"SEK"`
	CheckoutBasePrice     float64 `envconfig:"CHECKOUT_BASE_PRICE" default:"297"`
	CheckoutBumpIncrement float64 `envconfig:"CHECKOUT_BUMP_INCREMENT" default:"97"`
}

// Config is the full relay configuration, loaded from the environment.
type Config struct {
	Service  Service
	Redis    Redis
	Delivery Delivery
	Funnel   Funnel
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
