package config

import (
	"reflect"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATA_BASE_URL", "https://digest.example.org")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Server.RefreshTimer != 0 {
		t.Errorf("RefreshTimer = %d, want 0", cfg.Server.RefreshTimer)
	}
	if cfg.Server.RateLimit != 100 {
		t.Errorf("RateLimit = %d, want 100", cfg.Server.RateLimit)
	}
	if cfg.Site.ManifestPath != "data/months.json" {
		t.Errorf("ManifestPath = %q", cfg.Site.ManifestPath)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("Cache.Type = %q, want memory", cfg.Cache.Type)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("REFRESH_TIMER", "300")
	t.Setenv("SITE_TITLE", "My Digest")
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("REDIS_ADDRESS", "redis:6379")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
	if cfg.Server.RefreshTimer != 300 {
		t.Errorf("RefreshTimer = %d", cfg.Server.RefreshTimer)
	}
	if cfg.Site.Title != "My Digest" {
		t.Errorf("Title = %q", cfg.Site.Title)
	}
	if cfg.Cache.Type != "redis" || cfg.Cache.Redis.Address != "redis:6379" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoadFromEnv_FallbackMonthsJSON(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FALLBACK_MONTHS", `["2025-01", "2024-12"]`)

	cfg, _ := LoadFromEnv()
	want := []string{"2025-01", "2024-12"}
	if !reflect.DeepEqual(cfg.Site.FallbackMonths, want) {
		t.Errorf("FallbackMonths = %v, want %v", cfg.Site.FallbackMonths, want)
	}
}

func TestLoadFromEnv_FallbackMonthsCommaList(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FALLBACK_MONTHS", " 2025-01, 2024-12 ,")

	cfg, _ := LoadFromEnv()
	want := []string{"2025-01", "2024-12"}
	if !reflect.DeepEqual(cfg.Site.FallbackMonths, want) {
		t.Errorf("FallbackMonths = %v, want %v", cfg.Site.FallbackMonths, want)
	}
}

func TestValidate_Valid(t *testing.T) {
	setRequiredEnv(t)
	cfg, _ := LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate returned error for valid config: %v", err)
	}
}

func TestValidate_MissingDataBaseURL(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: "8000"},
		Cache:  CacheConfig{Type: "memory"},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject a missing data base URL")
	}
}

func TestValidate_NegativeRefreshTimer(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: "8000", RefreshTimer: -1},
		Site:   SiteConfig{DataBaseURL: "https://x"},
		Cache:  CacheConfig{Type: "memory"},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject a negative refresh timer")
	}
}

func TestValidate_UnknownCacheType(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: "8000"},
		Site:   SiteConfig{DataBaseURL: "https://x"},
		Cache:  CacheConfig{Type: "sqlite"},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject unknown cache types")
	}
}

func TestValidate_RedisRequiresAddress(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: "8000"},
		Site:   SiteConfig{DataBaseURL: "https://x"},
		Cache:  CacheConfig{Type: "redis"},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject redis cache without an address")
	}
}
