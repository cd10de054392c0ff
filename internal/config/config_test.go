package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "empty file uses defaults",
			yaml: `{}`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, DriverSQLite, cfg.Database.Driver)
				assert.Equal(t, "market-data.db", cfg.Database.Path)
				assert.Equal(t, "https://api.scryfall.com", cfg.Scryfall.BaseURL)
				assert.Equal(t, 256, cfg.Scryfall.CacheSize)
				assert.Equal(t, 2, cfg.Browser.Pages)
				assert.True(t, cfg.Browser.IsHeadless())
				assert.Len(t, cfg.Vendors.Enabled, 6)
				assert.Equal(t, domain.VendorScryfall, cfg.Vendors.Enabled[0])
				assert.Equal(t, 30*time.Second, cfg.Vendors.NavigationTimeout)
				assert.Equal(t, 20*time.Second, cfg.Vendors.ListingTimeout)
				assert.Equal(t, 3*time.Second, cfg.Vendors.SignalTimeout)
				assert.Equal(t, 10*time.Second, cfg.Watcher.StartupDelay)
				assert.Equal(t, 4*time.Hour, cfg.Watcher.Interval)
				assert.Equal(t, 2*time.Second, cfg.Watcher.ItemDelay)
				assert.True(t, cfg.Watcher.IsEnabled())
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "postgres driver",
			yaml: `
database:
  driver: postgres
  host: localhost
  name: mtg
  user: tracker
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, DriverPostgres, cfg.Database.Driver)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
			},
		},
		{
			name: "explicit overrides",
			yaml: `
browser:
  headless: false
  pages: 1
vendors:
  enabled: [tcgplayer, manapool]
watcher:
  enabled: false
  interval: 30m
  item_delay: 5s
logging:
  level: debug
  format: pretty
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.False(t, cfg.Browser.IsHeadless())
				assert.Equal(t, 1, cfg.Browser.Pages)
				assert.Equal(
					t,
					[]domain.Vendor{domain.VendorTCGPlayer, domain.VendorManaPool},
					cfg.Vendors.Enabled,
				)
				assert.False(t, cfg.Watcher.IsEnabled())
				assert.Equal(t, 30*time.Minute, cfg.Watcher.Interval)
				assert.Equal(t, 5*time.Second, cfg.Watcher.ItemDelay)
				assert.Equal(t, "pretty", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
dashboard:
  discord:
    enabled: true
    webhook_url: "${TEST_DISCORD_WEBHOOK}"
`,
			envVars: map[string]string{
				"TEST_DISCORD_WEBHOOK": "https://discord.example/api/webhooks/1/abc",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(
					t,
					"https://discord.example/api/webhooks/1/abc",
					cfg.Dashboard.Discord.WebhookURL,
				)
			},
		},
		{
			name: "postgres missing host",
			yaml: `
database:
  driver: postgres
  name: mtg
  user: tracker
`,
			wantErr: "database.host is required when driver is postgres",
		},
		{
			name: "unknown driver",
			yaml: `
database:
  driver: mysql
`,
			wantErr: `database.driver must be one of: sqlite, postgres (got "mysql")`,
		},
		{
			name: "unknown vendor",
			yaml: `
vendors:
  enabled: [tcgplayer, ebay]
`,
			wantErr: `unknown vendor "ebay"`,
		},
		{
			name: "tcgplayer required",
			yaml: `
vendors:
  enabled: [manapool]
`,
			wantErr: `vendors.enabled must include "tcgplayer"`,
		},
		{
			name: "negative pages",
			yaml: `
browser:
  pages: -1
`,
			wantErr: "browser.pages must be at least 1",
		},
		{
			name: "interval too short",
			yaml: `
watcher:
  interval: 10s
`,
			wantErr: "watcher.interval must be at least 1m",
		},
		{
			name: "discord enabled without webhook",
			yaml: `
dashboard:
  discord:
    enabled: true
`,
			wantErr: "dashboard.discord.webhook_url is required",
		},
		{
			name:    "invalid yaml",
			yaml:    "server: [",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefault_Validates(t *testing.T) {
	t.Parallel()

	require.NoError(t, validate(Default()))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		Name:     "mtg",
		User:     "admin",
		Password: "s3cret",
		SSLMode:  "require",
	}
	assert.Equal(
		t,
		"host=db.example.com port=5433 dbname=mtg user=admin password=s3cret sslmode=require",
		cfg.DSN(),
	)
}
