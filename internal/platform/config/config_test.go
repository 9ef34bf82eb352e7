package config

import (
	"os"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("expected default driver sqlite, got %q", cfg.DBDriver)
	}
	if cfg.JWTExpiration() != 15*time.Minute {
		t.Errorf("expected default token lifetime 15m, got %v", cfg.JWTExpiration())
	}
	if cfg.CacheTTL() != time.Minute {
		t.Errorf("expected default cache ttl 1m, got %v", cfg.CacheTTL())
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	// t.Setenvで復元だけ仕込み、変数そのものは未設定にする
	t.Setenv("JWT_SECRET", "placeholder")
	os.Unsetenv("JWT_SECRET")

	if _, err := Load(); err == nil {
		t.Error("expected an error when JWT_SECRET is not set")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("JWT_EXPIRE_MIN", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("expected addr :9090, got %q", cfg.Addr)
	}
	if cfg.DBDriver != "mysql" {
		t.Errorf("expected driver mysql, got %q", cfg.DBDriver)
	}
	if cfg.JWTExpiration() != 30*time.Minute {
		t.Errorf("expected token lifetime 30m, got %v", cfg.JWTExpiration())
	}
}
