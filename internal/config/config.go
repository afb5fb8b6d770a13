package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"atrika/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Store      StoreConfig      `yaml:"store"`
	Redis      RedisConfig      `yaml:"redis"`
	Database   DatabaseConfig   `yaml:"database"`
	Backup     BackupConfig     `yaml:"backup"`
	API        APIConfig        `yaml:"api"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Deals      DealsConfig      `yaml:"deals"`
	Exports    ExportConfig     `yaml:"exports"`
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

// StoreConfig selects the backend behind the session store.
type StoreConfig struct {
	Backend   string `yaml:"backend"`
	KeyPrefix string `yaml:"key_prefix"`
	// Failover keeps the session usable in memory when the backend errors.
	Failover bool `yaml:"failover"`
}

type RedisConfig struct {
	Address  string        `yaml:"address"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	PoolSize int           `yaml:"pool_size"`
	TTL      time.Duration `yaml:"ttl"`
	// ConnectRetries is how many extra pings are tried at startup.
	ConnectRetries int `yaml:"connect_retries"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// BackupConfig applies to the sqlite backend only.
type BackupConfig struct {
	Enabled       bool          `yaml:"enabled"`
	Interval      time.Duration `yaml:"interval"`
	RetentionDays int           `yaml:"retention_days"`
	StoragePath   string        `yaml:"storage_path"`
}

type APIConfig struct {
	HTTP      APIHTTPConfig      `yaml:"http"`
	RateLimit APIRateLimitConfig `yaml:"rate_limit"`
}

type APIHTTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type APIRateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
	PrometheusPort    int  `yaml:"prometheus_port"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type GeneratorConfig struct {
	// Seed 0 means seed from the clock.
	Seed  int64 `yaml:"seed"`
	Count int   `yaml:"count"`
}

type DealsConfig struct {
	Path           string        `yaml:"path"`
	BannerInterval time.Duration `yaml:"banner_interval"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

func Load(configPath string) (*Config, error) {
	// .env необязателен
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Предварительная замена переменных окружения в YAML
	expandedData := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expandedData, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Redis.Address == "" {
			return errors.New("redis address is required for the redis backend")
		}
	case BackendSQLite:
		if c.Database.Path == "" {
			return errors.New("database path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	if c.Generator.Count < 0 {
		return fmt.Errorf("generator count must not be negative, got %d", c.Generator.Count)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "atrika"
	}
	if c.Store.Backend == "" {
		c.Store.Backend = BackendMemory
	}
	if c.Store.KeyPrefix == "" {
		c.Store.KeyPrefix = "atrika"
	}
	if c.API.HTTP.Host == "" {
		c.API.HTTP.Host = "127.0.0.1"
	}
	if c.API.HTTP.Port == 0 {
		c.API.HTTP.Port = 8080
	}
	if c.Monitoring.PrometheusEnabled && c.Monitoring.PrometheusPort == 0 {
		c.Monitoring.PrometheusPort = 9090
	}
	if c.Generator.Count == 0 {
		c.Generator.Count = models.DefaultOfferCount
	}
	if c.Deals.BannerInterval == 0 {
		c.Deals.BannerInterval = models.DefaultBannerInterval * time.Second
	}
	if c.Exports.Path == "" {
		c.Exports.Path = "exports"
	}
	if c.Backup.Enabled {
		if c.Backup.Interval == 0 {
			c.Backup.Interval = 24 * time.Hour
		}
		if c.Backup.StoragePath == "" {
			c.Backup.StoragePath = "backups"
		}
	}
}
