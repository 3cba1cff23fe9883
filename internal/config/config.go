// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/personal-budgeting/budgeting/internal/money"
)

type Config struct {
	// HTTP server
	Port   string
	APIURL string

	// Remote API
	RemoteAPIURL  string
	RemoteTimeout time.Duration

	// Snapshot cache
	CacheDSN string

	// Display currency
	CurrencyLocale string
}

func Load() *Config {
	return &Config{
		Port:   getEnv("PORT", "8080"),
		APIURL: getEnv("API_URL", ""),

		RemoteAPIURL:  getEnv("REMOTE_API_URL", ""),
		RemoteTimeout: getEnvDuration("REMOTE_TIMEOUT", 10*time.Second),

		CacheDSN: getEnv("CACHE_DSN", "data/cache.db"),

		CurrencyLocale: getEnv("CURRENCY_LOCALE", "id-ID"),
	}
}

// Validate returns an error listing every invalid setting.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if err := validateURL("API_URL", c.APIURL); err != nil {
		errors = append(errors, err.Error())
	}

	if err := validateURL("REMOTE_API_URL", c.RemoteAPIURL); err != nil {
		errors = append(errors, err.Error())
	}

	if c.RemoteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("invalid remote timeout %v: must be positive", c.RemoteTimeout))
	}

	if c.CacheDSN == "" {
		errors = append(errors, "the cache DSN cannot be empty")
	}

	if _, err := money.LocaleFor(c.CurrencyLocale); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// URLs returns the parsed public and remote API URLs. Call Validate first.
func (c *Config) URLs() (api *url.URL, remote *url.URL) {
	api, _ = url.Parse(c.APIURL)
	remote, _ = url.Parse(c.RemoteAPIURL)
	return api, remote
}

// Locale returns the display currency locale. Call Validate first.
func (c *Config) Locale() money.Locale {
	l, _ := money.LocaleFor(c.CurrencyLocale)
	return l
}

func validateURL(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s must be set", name)
	}

	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid %s '%s': %v", name, value, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid %s scheme '%s': must be 'http' or 'https'", name, u.Scheme)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
