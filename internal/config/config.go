package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Assistant AssistantConfig
	Alerts    AlertConfig
	Mic       MicConfig
	DB        DatabaseConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DataConfig struct {
	PhrasesFile   string
	SheltersFile  string
	LocationsFile string
}

type AssistantConfig struct {
	PollInterval      time.Duration
	ShelterLimit      int
	MaxShelterResults int
}

type AlertConfig struct {
	Workers    int
	BufferSize int
}

type MicConfig struct {
	Enabled        bool
	PhraseInterval time.Duration
}

type DatabaseConfig struct {
	Path string
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "localhost"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Data: DataConfig{
			PhrasesFile:   getEnv("PHRASES_FILE", "./data/emergency_phrases.json"),
			SheltersFile:  getEnv("SHELTERS_FILE", "./data/shelters.json"),
			LocationsFile: getEnv("LOCATIONS_FILE", "./data/locations.json"),
		},
		Assistant: AssistantConfig{
			PollInterval:      getEnvDuration("POLL_INTERVAL", 100*time.Millisecond),
			ShelterLimit:      getEnvInt("SHELTER_LIMIT", 2),
			MaxShelterResults: getEnvInt("MAX_SHELTER_RESULTS", 5),
		},
		Alerts: AlertConfig{
			Workers:    getEnvInt("ALERT_WORKERS", 2),
			BufferSize: getEnvInt("ALERT_BUFFER_SIZE", 20),
		},
		Mic: MicConfig{
			Enabled:        getEnvBool("VIRTUAL_MIC_ENABLED", true),
			PhraseInterval: getEnvDuration("VIRTUAL_MIC_INTERVAL", 10*time.Second),
		},
		DB: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/vaanirakshak.db"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Assistant.PollInterval < 10*time.Millisecond {
		return fmt.Errorf("poll interval must be at least 10ms")
	}
	if c.Assistant.ShelterLimit < 1 {
		return fmt.Errorf("shelter limit must be at least 1")
	}
	if c.Assistant.MaxShelterResults < c.Assistant.ShelterLimit {
		return fmt.Errorf("max shelter results must be >= shelter limit")
	}
	if c.Alerts.Workers < 1 || c.Alerts.BufferSize < 1 {
		return fmt.Errorf("alert workers and buffer size must be at least 1")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
