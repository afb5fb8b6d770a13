package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"atrika/internal/models"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	t.Setenv("ATRIKA_DB_PATH", "data/session.db")

	yamlContent := `
store:
  backend: sqlite
database:
  path: "${ATRIKA_DB_PATH}"
generator:
  seed: 42
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Store.Backend != BackendSQLite {
		t.Errorf("expected backend sqlite, got %s", cfg.Store.Backend)
	}
	if cfg.Database.Path != "data/session.db" {
		t.Errorf("expected expanded database path, got %s", cfg.Database.Path)
	}
	if cfg.Generator.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Generator.Seed)
	}
}

func TestLoadConfigWithDotEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("app:\n  environment: \"${ATRIKA_TEST_ENV}\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	if err := os.WriteFile(".env", []byte("ATRIKA_TEST_ENV=staging\n"), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	defer os.Remove(".env")
	defer os.Unsetenv("ATRIKA_TEST_ENV")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.App.Environment != "staging" {
		t.Errorf("expected environment from .env, got %q", cfg.App.Environment)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "memory backend",
			cfg:     Config{Store: StoreConfig{Backend: BackendMemory}},
			wantErr: false,
		},
		{
			name:    "redis without address",
			cfg:     Config{Store: StoreConfig{Backend: BackendRedis}},
			wantErr: true,
		},
		{
			name: "redis with address",
			cfg: Config{
				Store: StoreConfig{Backend: BackendRedis},
				Redis: RedisConfig{Address: "localhost:6379"},
			},
			wantErr: false,
		},
		{
			name:    "sqlite without path",
			cfg:     Config{Store: StoreConfig{Backend: BackendSQLite}},
			wantErr: true,
		},
		{
			name:    "unknown backend",
			cfg:     Config{Store: StoreConfig{Backend: "etcd"}},
			wantErr: true,
		},
		{
			name: "negative count",
			cfg: Config{
				Store:     StoreConfig{Backend: BackendMemory},
				Generator: GeneratorConfig{Count: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Monitoring: MonitoringConfig{PrometheusEnabled: true}}
	cfg.applyDefaults()

	if cfg.Store.Backend != BackendMemory {
		t.Errorf("expected default backend memory, got %s", cfg.Store.Backend)
	}
	if cfg.API.HTTP.Port != 8080 {
		t.Errorf("expected default HTTP port 8080, got %d", cfg.API.HTTP.Port)
	}
	if cfg.API.HTTP.Host != "127.0.0.1" {
		t.Errorf("expected loopback host, got %s", cfg.API.HTTP.Host)
	}
	if cfg.Monitoring.PrometheusPort != 9090 {
		t.Errorf("expected default prometheus port 9090, got %d", cfg.Monitoring.PrometheusPort)
	}
	if cfg.Generator.Count != models.DefaultOfferCount {
		t.Errorf("expected default offer count %d, got %d", models.DefaultOfferCount, cfg.Generator.Count)
	}
	if cfg.Deals.BannerInterval != 4*time.Second {
		t.Errorf("expected default banner interval 4s, got %s", cfg.Deals.BannerInterval)
	}
}

func TestApplyDefaultsBackup(t *testing.T) {
	cfg := &Config{Backup: BackupConfig{Enabled: true}}
	cfg.applyDefaults()

	if cfg.Backup.Interval != 24*time.Hour {
		t.Errorf("expected 24h backup interval, got %s", cfg.Backup.Interval)
	}
	if cfg.Backup.StoragePath != "backups" {
		t.Errorf("expected backups storage path, got %s", cfg.Backup.StoragePath)
	}

	disabled := &Config{}
	disabled.applyDefaults()
	if disabled.Backup.Interval != 0 || disabled.Backup.StoragePath != "" {
		t.Errorf("expected disabled backup to stay unset, got %+v", disabled.Backup)
	}
}
