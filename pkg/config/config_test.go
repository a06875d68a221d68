package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DIARY_CONFIG_PATH", t.TempDir()) // no config file there

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://127.0.0.1:8000/api/" {
		t.Fatalf("unexpected default base url %q", cfg.BaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.Timeout)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DIARY_CONFIG_PATH", t.TempDir())
	t.Setenv("DIARY_BASE_URL", "https://diary.example.com/api")
	t.Setenv("DIARY_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://diary.example.com/api/" {
		t.Fatalf("expected trailing slash appended, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %v", cfg.Timeout)
	}
}
