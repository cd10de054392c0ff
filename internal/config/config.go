// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Scryfall  ScryfallConfig  `yaml:"scryfall"`
	Browser   BrowserConfig   `yaml:"browser"`
	Vendors   VendorsConfig   `yaml:"vendors"`
	Watcher   WatcherConfig   `yaml:"watcher"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig selects the store backend. SQLite uses Path; PostgreSQL
// uses the connection fields.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // sqlite, postgres
	Path     string `yaml:"path"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// ScryfallConfig defines reference catalog API settings.
type ScryfallConfig struct {
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
	PerSecond float64       `yaml:"per_second"`
	Burst     int           `yaml:"burst"`
	CacheSize int           `yaml:"cache_size"`
}

// BrowserConfig defines the headless browser session.
type BrowserConfig struct {
	Headless  *bool  `yaml:"headless"`
	ExecPath  string `yaml:"exec_path"`
	UserAgent string `yaml:"user_agent"`
	// Pages is the number of tabs opened per cycle. More than one lets
	// vendors of the same card scrape concurrently.
	Pages int `yaml:"pages"`
}

// IsHeadless reports whether the browser runs without a window. Defaults
// to true.
func (b *BrowserConfig) IsHeadless() bool {
	return b.Headless == nil || *b.Headless
}

// VendorsConfig selects which adapters run and how long they may wait.
type VendorsConfig struct {
	Enabled           []domain.Vendor `yaml:"enabled"`
	NavigationTimeout time.Duration   `yaml:"navigation_timeout"`
	ListingTimeout    time.Duration   `yaml:"listing_timeout"`
	SignalTimeout     time.Duration   `yaml:"signal_timeout"`
	AdapterTimeout    time.Duration   `yaml:"adapter_timeout"`
}

// WatcherConfig defines cycle pacing.
type WatcherConfig struct {
	Enabled      *bool         `yaml:"enabled"`
	StartupDelay time.Duration `yaml:"startup_delay"`
	Interval     time.Duration `yaml:"interval"`
	ItemDelay    time.Duration `yaml:"item_delay"`
}

// IsEnabled reports whether the scheduler should run. Defaults to true.
func (w *WatcherConfig) IsEnabled() bool {
	return w.Enabled == nil || *w.Enabled
}

// DashboardConfig defines presentation targets refreshed after each cycle.
type DashboardConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// TelemetryConfig defines OpenTelemetry trace export. Tracing is disabled
// when OTLPEndpoint is empty.
type TelemetryConfig struct {
	OTLPEndpoint string  `yaml:"otlp_endpoint"`
	Insecure     bool    `yaml:"insecure"`
	ServiceName  string  `yaml:"service_name"`
	SampleRatio  float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, pretty
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a config with every default applied, used when no config
// file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyScryfallDefaults(&cfg.Scryfall)
	applyBrowserDefaults(&cfg.Browser)
	applyVendorsDefaults(&cfg.Vendors)
	applyWatcherDefaults(&cfg.Watcher)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	// One-off scrapes hold the response open while every vendor loads.
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 5 * time.Minute
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Driver == "" {
		d.Driver = DriverSQLite
	}
	if d.Path == "" {
		d.Path = "market-data.db"
	}
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyScryfallDefaults(s *ScryfallConfig) {
	if s.BaseURL == "" {
		s.BaseURL = "https://api.scryfall.com"
	}
	if s.UserAgent == "" {
		s.UserAgent = "mtg-price-tracker/1.0"
	}
	if s.Timeout == 0 {
		s.Timeout = 15 * time.Second
	}
	if s.PerSecond == 0 {
		s.PerSecond = 10
	}
	if s.Burst == 0 {
		s.Burst = 1
	}
	if s.CacheSize == 0 {
		s.CacheSize = 256
	}
}

func applyBrowserDefaults(b *BrowserConfig) {
	if b.Pages == 0 {
		b.Pages = 2
	}
}

func applyVendorsDefaults(v *VendorsConfig) {
	if len(v.Enabled) == 0 {
		v.Enabled = append([]domain.Vendor{domain.VendorScryfall}, domain.ListingVendors...)
	}
	if v.NavigationTimeout == 0 {
		v.NavigationTimeout = 30 * time.Second
	}
	if v.ListingTimeout == 0 {
		v.ListingTimeout = 20 * time.Second
	}
	if v.SignalTimeout == 0 {
		v.SignalTimeout = 3 * time.Second
	}
	if v.AdapterTimeout == 0 {
		v.AdapterTimeout = 90 * time.Second
	}
}

func applyWatcherDefaults(w *WatcherConfig) {
	if w.StartupDelay == 0 {
		w.StartupDelay = 10 * time.Second
	}
	if w.Interval == 0 {
		w.Interval = 4 * time.Hour
	}
	if w.ItemDelay == 0 {
		w.ItemDelay = 2 * time.Second
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "mtg-price-tracker"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

var knownVendors = []domain.Vendor{
	domain.VendorScryfall,
	domain.VendorTCGPlayer,
	domain.VendorManaPool,
	domain.VendorCardKingdom,
	domain.VendorStarCityGames,
	domain.VendorCoolStuffInc,
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Database.Driver {
	case DriverSQLite:
		if cfg.Database.Path == "" {
			errs = append(errs, fmt.Errorf("database.path is required when driver is sqlite"))
		}
	case DriverPostgres:
		if cfg.Database.Host == "" {
			errs = append(errs, fmt.Errorf("database.host is required when driver is postgres"))
		}
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required when driver is postgres"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required when driver is postgres"))
		}
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"database.driver must be one of: sqlite, postgres (got %q)",
				cfg.Database.Driver,
			),
		)
	}

	for _, v := range cfg.Vendors.Enabled {
		if !slices.Contains(knownVendors, v) {
			errs = append(errs, fmt.Errorf("vendors.enabled: unknown vendor %q", v))
		}
	}
	if !slices.Contains(cfg.Vendors.Enabled, domain.VendorTCGPlayer) {
		errs = append(errs, fmt.Errorf("vendors.enabled must include %q", domain.VendorTCGPlayer))
	}

	if cfg.Browser.Pages < 1 {
		errs = append(errs, fmt.Errorf("browser.pages must be at least 1"))
	}
	if cfg.Watcher.Interval < time.Minute {
		errs = append(errs, fmt.Errorf("watcher.interval must be at least 1m"))
	}

	if cfg.Dashboard.Discord.Enabled && cfg.Dashboard.Discord.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("dashboard.discord.webhook_url is required when discord is enabled"),
		)
	}

	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("telemetry.sample_ratio must be between 0 and 1"))
	}

	return errors.Join(errs...)
}
