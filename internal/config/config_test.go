package config

import (
	"testing"
	"time"

	"riskradar/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.HTTPPort)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("unexpected default TTL: %s", cfg.CacheTTL)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Fatalf("unexpected default fetch timeout: %s", cfg.FetchTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("TABLE_CACHE_TTL", "90s")
	t.Setenv("SHEET_CSV_URL_CRISIS", "https://example.com/crisis.csv")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPPort != "9090" {
		t.Fatalf("unexpected port: %s", cfg.HTTPPort)
	}
	if cfg.CacheTTL != 90*time.Second {
		t.Fatalf("unexpected TTL: %s", cfg.CacheTTL)
	}

	urls := cfg.SheetURLs()
	if len(urls) != 1 {
		t.Fatalf("expected one configured URL, got %v", urls)
	}
	if urls[model.PathwayCrisis] != "https://example.com/crisis.csv" {
		t.Fatalf("unexpected URL map: %v", urls)
	}
}
