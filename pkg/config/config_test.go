package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test,,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("port: want=8080 got=%s", cfg.Server.Port)
	}
	if cfg.Engine.RequestTimeout != 10*time.Second {
		t.Fatalf("timeout: want=10s got=%s", cfg.Engine.RequestTimeout)
	}
	if len(cfg.Server.AllowOrigins) != 2 || cfg.Server.AllowOrigins[1] != "http://b.test" {
		t.Fatalf("origins: got=%v", cfg.Server.AllowOrigins)
	}
	if cfg.Redis.Enabled {
		t.Fatalf("redis should be disabled by default")
	}
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PASSWORD", "pw")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing jwt secret")
	}

	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing database password")
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("ENGINE_REQUEST_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid timeout")
	}
}
