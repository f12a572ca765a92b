package config

import "testing"

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 0}}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_PageSizeOrdering(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 8080},
		Search: SearchConfig{DefaultPageSize: 200, MaxPageSize: 100},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when default_page_size exceeds max_page_size")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.Path != "searchapi.db" {
		t.Errorf("expected Path='searchapi.db', got %q", cfg.Database.Path)
	}
	if cfg.Cache.TTLSec != 30 {
		t.Errorf("expected cache TTLSec=30, got %d", cfg.Cache.TTLSec)
	}
	if cfg.Search.DefaultPageSize != 20 {
		t.Errorf("expected DefaultPageSize=20, got %d", cfg.Search.DefaultPageSize)
	}
	if cfg.Search.MaxPageSize != 100 {
		t.Errorf("expected MaxPageSize=100, got %d", cfg.Search.MaxPageSize)
	}
	if cfg.Search.FacetLimit != 100 {
		t.Errorf("expected FacetLimit=100, got %d", cfg.Search.FacetLimit)
	}
	if cfg.Search.AutocompleteLimit != 10 {
		t.Errorf("expected AutocompleteLimit=10, got %d", cfg.Search.AutocompleteLimit)
	}
	if cfg.Search.StrategyTimeoutMS != 2000 {
		t.Errorf("expected StrategyTimeoutMS=2000, got %d", cfg.Search.StrategyTimeoutMS)
	}
	if cfg.Search.MaxConcurrentFanout != 16 {
		t.Errorf("expected MaxConcurrentFanout=16, got %d", cfg.Search.MaxConcurrentFanout)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database: DatabaseConfig{Path: "/var/lib/searchapi/entities.db"},
		Search:   SearchConfig{DefaultPageSize: 50, MaxPageSize: 500, FacetLimit: 25},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Database.Path != "/var/lib/searchapi/entities.db" {
		t.Errorf("expected Path preserved, got %q", cfg.Database.Path)
	}
	if cfg.Search.DefaultPageSize != 50 {
		t.Errorf("expected DefaultPageSize=50, got %d", cfg.Search.DefaultPageSize)
	}
	if cfg.Search.FacetLimit != 25 {
		t.Errorf("expected FacetLimit=25, got %d", cfg.Search.FacetLimit)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("SEARCHAPI_TEST_VAR", "from-env")

	got := string(expandEnvVars([]byte("a: ${SEARCHAPI_TEST_VAR}\nb: ${SEARCHAPI_UNSET:-fallback}\n")))
	want := "a: from-env\nb: fallback\n"
	if got != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", got, want)
	}
}
