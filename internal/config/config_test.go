package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Assistant.ShelterLimit != 2 {
		t.Errorf("expected default shelter limit 2, got %d", cfg.Assistant.ShelterLimit)
	}
	if cfg.Assistant.MaxShelterResults != 5 {
		t.Errorf("expected default max shelter results 5, got %d", cfg.Assistant.MaxShelterResults)
	}
	if cfg.Assistant.PollInterval != 100*time.Millisecond {
		t.Errorf("expected default poll interval 100ms, got %s", cfg.Assistant.PollInterval)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "99999")

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid port")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid log level")
	}
}

func TestLoad_PollIntervalTooShort(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "1ms")

	if _, err := Load(); err == nil {
		t.Error("expected error for sub-10ms poll interval")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHELTER_LIMIT", "3")
	t.Setenv("VIRTUAL_MIC_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Assistant.ShelterLimit != 3 {
		t.Errorf("expected shelter limit 3, got %d", cfg.Assistant.ShelterLimit)
	}
	if cfg.Mic.Enabled {
		t.Error("expected virtual mic disabled")
	}
}
