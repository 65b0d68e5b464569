package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/units"

	"github.com/BurntSushi/toml"
)

const (
	RecordsStoreMemory   = "memory"
	RecordsStoreRedis    = "redis"
	RecordsStorePostgres = "postgres"
)

type Config struct {
	Host string
	Port int
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	Environment   string `toml:"environment"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// hevy api
	HevyBaseURL        string `toml:"hevy_base_url"`
	HevyTimeoutSeconds int    `toml:"hevy_timeout_seconds"`
	// tracker
	UnitSystem             string `toml:"unit_system"`
	LookbackDays           int    `toml:"lookback_days"`
	MaxPages               int    `toml:"max_pages"`
	PageSize               int    `toml:"page_size"`
	StalenessThresholdDays int    `toml:"staleness_threshold_days"`
	PollingIntervalMinutes int    `toml:"polling_interval_minutes"`
	Timezone               string `toml:"timezone"`
	// personal records storage: memory | redis | postgres
	RecordsStore   string `toml:"records_store"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// http
	AllowedOrigins                []string `toml:"allowed_origins"`
	HistoryRateLimitAllowedPerMin int      `toml:"history_rate_limit_allowed_per_min"`
	HistoryCacheSizeBytes         int      `toml:"history_cache_size_bytes"`
	HoneycombEnabled              bool     `toml:"honeycomb_enabled"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for env, with
// defaults filled in and the result validated.
func Load(env, path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(env, string(content))
}

func Parse(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8123
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.UnitSystem == "" {
		c.UnitSystem = string(units.Metric)
	}
	if c.LookbackDays <= 0 {
		c.LookbackDays = 30
	}
	if c.MaxPages <= 0 {
		c.MaxPages = 10
	}
	if c.PageSize <= 0 {
		c.PageSize = 10
	}
	if c.StalenessThresholdDays <= 0 {
		c.StalenessThresholdDays = 5
	}
	if c.PollingIntervalMinutes <= 0 {
		c.PollingIntervalMinutes = 15
	}
	if c.HevyTimeoutSeconds <= 0 {
		c.HevyTimeoutSeconds = 30
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.RecordsStore == "" {
		c.RecordsStore = RecordsStoreRedis
	}
	if c.RedisHost == "" {
		c.RedisHost = "localhost"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.HistoryRateLimitAllowedPerMin <= 0 {
		c.HistoryRateLimitAllowedPerMin = 30
	}
}

func (c *Config) Validate() error {
	if _, err := units.ParseSystem(c.UnitSystem); err != nil {
		return err
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone [%s]: %w", c.Timezone, err)
	}
	switch c.RecordsStore {
	case RecordsStoreMemory, RecordsStoreRedis:
	case RecordsStorePostgres:
		if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
			return fmt.Errorf("postgres records store needs postgres_host, postgres_port and postgres_db_name")
		}
	default:
		return fmt.Errorf("unknown records store: %s", c.RecordsStore)
	}
	return nil
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) HevyTimeout() time.Duration {
	return time.Duration(c.HevyTimeoutSeconds) * time.Second
}

func (c *Config) PollingInterval() time.Duration {
	return time.Duration(c.PollingIntervalMinutes) * time.Minute
}
