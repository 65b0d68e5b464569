package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToml = `
[development]
host = "localhost"
port = 9000
log_level = "debug"
unit_system = "imperial"
timezone = "Europe/Berlin"
lookback_days = 14
allowed_origins = ["http://homeassistant.local:8123"]

[production]
host = "0.0.0.0"
port = 8123
records_store = "postgres"
postgres_host = "db"
postgres_port = "5432"
postgres_db_name = "hevy"
polling_interval_minutes = 30
`

func TestParse_Development(t *testing.T) {
	cfg, err := Parse("dev", testToml)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "imperial", cfg.UnitSystem)
	assert.Equal(t, 14, cfg.LookbackDays)
	assert.Equal(t, []string{"http://homeassistant.local:8123"}, cfg.AllowedOrigins)
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())

	// defaults
	assert.Equal(t, 10, cfg.MaxPages)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 5, cfg.StalenessThresholdDays)
	assert.Equal(t, 15*time.Minute, cfg.PollingInterval())
	assert.Equal(t, 30*time.Second, cfg.HevyTimeout())
	assert.Equal(t, RecordsStoreRedis, cfg.RecordsStore)
	assert.Equal(t, "2112", cfg.PrometheusMetricsPort)
}

func TestParse_Production(t *testing.T) {
	cfg, err := Parse("production", testToml)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, RecordsStorePostgres, cfg.RecordsStore)
	assert.Equal(t, "metric", cfg.UnitSystem)
	assert.Equal(t, 30*time.Minute, cfg.PollingInterval())
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestParse_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		env     string
		content string
	}{
		{
			name:    "UnknownEnv",
			env:     "staging",
			content: testToml,
		},
		{
			name:    "MissingSection",
			env:     "prod",
			content: "[development]\nport = 1\n",
		},
		{
			name:    "UnknownUnitSystem",
			env:     "dev",
			content: "[development]\nunit_system = \"stones\"\n",
		},
		{
			name:    "UnknownTimezone",
			env:     "dev",
			content: "[development]\ntimezone = \"Mars/Olympus\"\n",
		},
		{
			name:    "UnknownRecordsStore",
			env:     "dev",
			content: "[development]\nrecords_store = \"aerospike\"\n",
		},
		{
			name:    "PostgresWithoutHost",
			env:     "dev",
			content: "[development]\nrecords_store = \"postgres\"\n",
		},
		{
			name:    "BrokenToml",
			env:     "dev",
			content: "[development\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse(tc.env, tc.content)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testToml), 0o600))

	cfg, err := Load("development", path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)

	_, err = Load("development", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
