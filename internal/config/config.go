// Package config reads the service settings from the environment. A .env file
// is loaded by cmd/api before Load runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingPortalAPIURL = errors.New("missing PORTAL_API_URL")

type Config struct {
	Port string

	PortalAPIURL     string
	PortalAPITimeout time.Duration
	ViaCEPURL        string

	CEPDebounce      time.Duration
	QueryStaleTime   time.Duration
	WizardSessionTTL time.Duration

	CORSAllowedOrigins []string

	LogLevel  string
	LogPretty bool
	GinMode   string
}

func Load() (Config, error) {
	cfg := Config{
		Port:               getenvDefault("PORT", "8080"),
		PortalAPIURL:       strings.TrimSpace(os.Getenv("PORTAL_API_URL")),
		ViaCEPURL:          getenvDefault("VIACEP_URL", "https://viacep.com.br/ws"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		LogLevel:           getenvDefault("LOG_LEVEL", "info"),
		GinMode:            os.Getenv("GIN_MODE"),
	}
	if cfg.PortalAPIURL == "" {
		return Config{}, ErrMissingPortalAPIURL
	}

	var err error
	if cfg.PortalAPITimeout, err = durationDefault("PORTAL_API_TIMEOUT", 20*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.CEPDebounce, err = durationDefault("CEP_DEBOUNCE", 450*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.QueryStaleTime, err = durationDefault("QUERY_STALE_TIME", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.WizardSessionTTL, err = durationDefault("WIZARD_SESSION_TTL", 2*time.Hour); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("LOG_PRETTY"); v != "" {
		if cfg.LogPretty, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("LOG_PRETTY: %w", err)
		}
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func durationDefault(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive", key)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
