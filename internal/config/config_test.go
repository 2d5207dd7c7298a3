package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PORTFOLIO_FORM_ENDPOINT", "")
	t.Setenv("PORTFOLIO_OUTPUT_DIR", "")
	t.Setenv("PORTFOLIO_SHUTDOWN_TIMEOUT", "")
	t.Setenv("PORTFOLIO_CDN_PRICE_CLASS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q, want :8080", cfg.Addr())
	}
	if cfg.OutputDir != "public" {
		t.Errorf("OutputDir = %q, want public", cfg.OutputDir)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
	if cfg.FormEndpoint != "" {
		t.Errorf("FormEndpoint = %q, want empty", cfg.FormEndpoint)
	}
	if cfg.CDNPriceClass != "PriceClass_100" {
		t.Errorf("CDNPriceClass = %q, want PriceClass_100", cfg.CDNPriceClass)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PORTFOLIO_FORM_ENDPOINT", "https://relay.example.com/f/abc")
	t.Setenv("LOG_PRETTY", "false")
	t.Setenv("PORTFOLIO_CDN_PRICE_CLASS", "PriceClass_All")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("Addr() = %q, want :9090", cfg.Addr())
	}
	if cfg.FormEndpoint != "https://relay.example.com/f/abc" {
		t.Errorf("FormEndpoint = %q", cfg.FormEndpoint)
	}
	if cfg.LogPretty {
		t.Error("LogPretty = true, want false")
	}
	if cfg.CDNPriceClass != "PriceClass_All" {
		t.Errorf("CDNPriceClass = %q, want PriceClass_All", cfg.CDNPriceClass)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("PORTFOLIO_SHUTDOWN_TIMEOUT", "soon")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
