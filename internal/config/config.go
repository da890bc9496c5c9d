// Package config loads server configuration from FLOORCALC_WEB_* env vars.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is the full web process configuration.
type Config struct {
	Port         string `env:"FLOORCALC_WEB_PORT"`
	CloudRunPort string `env:"PORT"`
	Env          string `env:"FLOORCALC_WEB_ENV" envDefault:"dev"`
	Dev          bool   `env:"FLOORCALC_WEB_DEV"`

	// BaseURL is the public origin used for canonical URLs, JSON-LD
	// locations, and the sitemap.
	BaseURL string `env:"FLOORCALC_WEB_BASE_URL" envDefault:"https://floorcalchub.com"`

	TemplatesDir string `env:"FLOORCALC_WEB_TEMPLATES" envDefault:"templates"`
	PublicDir    string `env:"FLOORCALC_WEB_PUBLIC" envDefault:"public"`
	ContentDir   string `env:"FLOORCALC_WEB_CONTENT" envDefault:"content"`
	FAQDir       string `env:"FLOORCALC_WEB_FAQ" envDefault:"content/faq"`

	SessionSigningKey string `env:"FLOORCALC_WEB_SESSION_SIGNING_KEY"`

	Analytics Analytics
}

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string `env:"FLOORCALC_WEB_GA_MEASUREMENT_ID"`
	GTMContainerID   string `env:"FLOORCALC_WEB_GTM_CONTAINER_ID"`
	Debug            bool   `env:"FLOORCALC_WEB_ANALYTICS_DEBUG"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, nil
}

// Addr resolves the listen address: FLOORCALC_WEB_PORT, then Cloud Run's
// PORT, else 8080.
func (c Config) Addr() string {
	port := c.Port
	if port == "" {
		port = c.CloudRunPort
	}
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

// IsProd reports whether the process runs with production settings.
func (c Config) IsProd() bool { return strings.EqualFold(c.Env, "prod") }
