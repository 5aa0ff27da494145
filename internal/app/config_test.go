package app

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("unexpected default HTTP addr: %s", cfg.HTTPAddr)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("unexpected default metrics addr: %s", cfg.MetricsAddr)
	}
	if cfg.StorageDriver != StorageDriverMemory {
		t.Errorf("unexpected default storage driver: %s", cfg.StorageDriver)
	}
	if !cfg.DeleteRequiresAdmin {
		t.Error("delete must require admin by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must be valid: %v", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("expected defaults without env overrides, got %+v", cfg)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("ORDERS_HTTP_ADDR", ":7070")
	t.Setenv("ORDERS_STORAGE_DRIVER", "postgres")
	t.Setenv("ORDERS_POSTGRES_DSN", "postgres://app:app@db:5432/orders")
	t.Setenv("ORDERS_CLIENT_TIMEOUT", "2s")
	t.Setenv("ORDERS_DELETE_REQUIRES_ADMIN", "false")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTPAddr != ":7070" {
		t.Errorf("HTTP addr override not applied: %s", cfg.HTTPAddr)
	}
	if cfg.StorageDriver != StorageDriverPostgres {
		t.Errorf("storage driver override not applied: %s", cfg.StorageDriver)
	}
	if cfg.PostgresDSN != "postgres://app:app@db:5432/orders" {
		t.Errorf("DSN override not applied: %s", cfg.PostgresDSN)
	}
	if cfg.ClientTimeout != 2*time.Second {
		t.Errorf("client timeout override not applied: %s", cfg.ClientTimeout)
	}
	if cfg.DeleteRequiresAdmin {
		t.Error("delete policy override not applied")
	}
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("ORDERS_STORAGE_DRIVER", "cassandra")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unknown storage driver")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(*Config) {}, false},
		{"unknown driver", func(c *Config) { c.StorageDriver = "sqlite" }, true},
		{"postgres without dsn", func(c *Config) {
			c.StorageDriver = StorageDriverPostgres
			c.PostgresDSN = ""
		}, true},
		{"missing user service url", func(c *Config) { c.UserServiceURL = "" }, true},
		{"missing product service url", func(c *Config) { c.ProductServiceURL = "" }, true},
		{"non-positive timeout", func(c *Config) { c.ClientTimeout = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
