// Package config loads hockey-sync configuration from a YAML file layered
// under HOCKEYSYNC_-prefixed environment variables.
//
// Values are {key: value} lookups under named sections: site credentials
// under "ihonc" and "hockeyvite", calendar API settings under "google", the
// substitute-team roster under "teams", and run parameters under "sync".
// Environment overrides map double underscores to section nesting, e.g.
// HOCKEYSYNC_SYNC__SPAN_DAYS overrides sync.span_days.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "HOCKEYSYNC_"

// Config is the process configuration.
type Config struct {
	Ihonc      Site   `koanf:"ihonc"`
	Hockeyvite Site   `koanf:"hockeyvite"`
	Google     Google `koanf:"google"`
	Teams      Teams  `koanf:"teams"`
	Sync       Sync   `koanf:"sync"`
}

// Site holds the login credentials and base URL for one schedule site.
type Site struct {
	URL      string `koanf:"url"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// Google holds the calendar API settings.
type Google struct {
	CredentialsFile string `koanf:"credentials_file"`
	TokenFile       string `koanf:"token_file"`
	CalendarID      string `koanf:"calendar_id"`
}

// Teams holds the substitute-team roster. A maybe RSVP against a sub-only
// team is not calendar-worthy.
type Teams struct {
	Sub []string `koanf:"sub"`
}

// Sync holds run parameters.
type Sync struct {
	SpanDays int    `koanf:"span_days"`
	Timezone string `koanf:"timezone"`
	LogLevel string `koanf:"log_level"`
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		Ihonc:      Site{URL: "http://ihonc-ca.com"},
		Hockeyvite: Site{URL: "http://hockeyvite.com"},
		Google: Google{
			CredentialsFile: "credentials.json",
			TokenFile:       "token.json",
			CalendarID:      "primary",
		},
		Sync: Sync{
			SpanDays: 14,
			Timezone: "America/Los_Angeles",
			LogLevel: "info",
		},
	}
}

// Load builds a Config by layering defaults, an optional YAML file, and
// environment variables. An empty path falls back to HOCKEYSYNC_CONFIG.
func Load(path string) (*Config, error) {
	cfg := Default()

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(envPrefix + "CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	// HOCKEYSYNC_IHONC__USERNAME -> ihonc.username
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, strings.ToLower(envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading env: %w", err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Sync.SpanDays <= 0 {
		return errors.New("sync.span_days must be positive")
	}
	if _, err := time.LoadLocation(c.Sync.Timezone); err != nil {
		return fmt.Errorf("sync.timezone: %w", err)
	}
	return nil
}

// Location returns the configured timezone as a *time.Location.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Sync.Timezone)
}
