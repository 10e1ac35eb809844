package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP:   HTTPConfig{Port: 8080},
		Remote: RemoteConfig{BaseURL: "https://pacs.example.com/dicom-web"},
		Search: SearchConfig{Density: "standard", DefaultPageSize: 25, MaxPageSize: 500},
	}
}

func TestValidate_InvalidDensity(t *testing.T) {
	cfg := validConfig()
	cfg.Search.Density = "invalid_mode"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid density")
	}

	expected := `search.density must be "compact", "standard" or "full", got "invalid_mode"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_ValidDensities(t *testing.T) {
	validModes := []string{"compact", "standard", "full"}

	for _, mode := range validModes {
		t.Run("density="+mode, func(t *testing.T) {
			cfg := validConfig()
			cfg.Search.Density = mode

			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for valid density %q: %v", mode, err)
			}
		})
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingRemoteBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.Remote.BaseURL = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing remote base URL")
	}
}

func TestValidate_CacheEnabledWithoutAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Cache = CacheConfig{Enabled: true}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for enabled cache without addrs")
	}
}

func TestValidate_PageSizeOrdering(t *testing.T) {
	cfg := validConfig()
	cfg.Search.DefaultPageSize = 100
	cfg.Search.MaxPageSize = 50

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when max_page_size is below default_page_size")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 30 {
		t.Errorf("expected WriteTimeoutSec=30, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Remote.TimeoutSec != 30 {
		t.Errorf("expected Remote.TimeoutSec=30, got %d", cfg.Remote.TimeoutSec)
	}
	if cfg.Cache.TTLSec != 60 {
		t.Errorf("expected Cache.TTLSec=60, got %d", cfg.Cache.TTLSec)
	}
	if cfg.Cache.ReadinessTimeout != 10 {
		t.Errorf("expected Cache.ReadinessTimeout=10, got %d", cfg.Cache.ReadinessTimeout)
	}
	if cfg.Search.DefaultPageSize != 25 {
		t.Errorf("expected DefaultPageSize=25, got %d", cfg.Search.DefaultPageSize)
	}
	if cfg.Search.MaxPageSize != 500 {
		t.Errorf("expected MaxPageSize=500, got %d", cfg.Search.MaxPageSize)
	}
	if cfg.Search.Density != "standard" {
		t.Errorf("expected Density='standard', got %q", cfg.Search.Density)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Remote: RemoteConfig{TimeoutSec: 15},
		Cache:  CacheConfig{TTLSec: 300},
		Search: SearchConfig{DefaultPageSize: 50, MaxPageSize: 200, Density: "full"},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Remote.TimeoutSec != 15 {
		t.Errorf("expected Remote.TimeoutSec=15, got %d", cfg.Remote.TimeoutSec)
	}
	if cfg.Cache.TTLSec != 300 {
		t.Errorf("expected Cache.TTLSec=300, got %d", cfg.Cache.TTLSec)
	}
	if cfg.Search.Density != "full" {
		t.Errorf("expected Density='full', got %q", cfg.Search.Density)
	}
}
