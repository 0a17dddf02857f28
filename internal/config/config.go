package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/claude/trainload/internal/muscles"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Import    ImportConfig    `yaml:"import"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// AnalyticsConfig controls how "today" is resolved and which volume
// landmarks replace the built-in defaults.
type AnalyticsConfig struct {
	Timezone   string                       `yaml:"timezone"`
	Thresholds map[string]muscles.Threshold `yaml:"thresholds"`
}

// ImportConfig covers the CLI importer ledger and the HTTP import endpoint,
// which stays disabled while APIKey is empty.
type ImportConfig struct {
	StateDir string `yaml:"state_dir"`
	APIKey   string `yaml:"api_key"`
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, sslmode)
}

// Location returns the configured timezone, or UTC when unset.
func (a AnalyticsConfig) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", a.Timezone, err)
	}
	return loc, nil
}

// Today returns the current instant in the configured timezone. Callers pin
// it to a calendar day.
func (a AnalyticsConfig) Today() time.Time {
	loc, err := a.Location()
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc)
}

// ThresholdOverrides converts the configured thresholds to a muscle-keyed
// table. Entries are assumed valid; Load rejects anything else.
func (a AnalyticsConfig) ThresholdOverrides() map[muscles.Muscle]muscles.Threshold {
	if len(a.Thresholds) == 0 {
		return nil
	}
	out := make(map[muscles.Muscle]muscles.Threshold, len(a.Thresholds))
	for name, t := range a.Thresholds {
		if m, ok := muscles.Parse(name); ok {
			out[m] = t
		}
	}
	return out
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix TRAINLOAD_ and underscore-separated paths:
//
//	TRAINLOAD_SERVER_HOST, TRAINLOAD_SERVER_PORT,
//	TRAINLOAD_DB_HOST, TRAINLOAD_DB_PORT, TRAINLOAD_DB_NAME,
//	TRAINLOAD_DB_USER, TRAINLOAD_DB_PASSWORD, TRAINLOAD_DB_SSLMODE,
//	TRAINLOAD_TAILSCALE_ENABLED, TRAINLOAD_TAILSCALE_HOSTNAME,
//	TRAINLOAD_TIMEZONE, TRAINLOAD_IMPORT_STATE_DIR, TRAINLOAD_IMPORT_API_KEY
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TRAINLOAD_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("TRAINLOAD_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("TRAINLOAD_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("TRAINLOAD_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("TRAINLOAD_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("TRAINLOAD_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("TRAINLOAD_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("TRAINLOAD_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("TRAINLOAD_TAILSCALE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = enabled
		}
	}
	if v := os.Getenv("TRAINLOAD_TAILSCALE_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("TRAINLOAD_TIMEZONE"); v != "" {
		cfg.Analytics.Timezone = v
	}
	if v := os.Getenv("TRAINLOAD_IMPORT_STATE_DIR"); v != "" {
		cfg.Import.StateDir = v
	}
	if v := os.Getenv("TRAINLOAD_IMPORT_API_KEY"); v != "" {
		cfg.Import.APIKey = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port == 0 {
		return fmt.Errorf("database.port is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database.name is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	if _, err := c.Analytics.Location(); err != nil {
		return fmt.Errorf("analytics.timezone: %w", err)
	}
	for name, t := range c.Analytics.Thresholds {
		if _, ok := muscles.Parse(name); !ok {
			return fmt.Errorf("analytics.thresholds: unknown muscle %q", name)
		}
		if !t.Valid() {
			return fmt.Errorf("analytics.thresholds.%s: need 0 <= mev <= mrv, got mev=%v mrv=%v", name, t.MEV, t.MRV)
		}
	}
	return nil
}
