package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the event settings loaded from YAML.
type Config struct {
	Game struct {
		DefaultPoints         int `yaml:"default_points"`
		DeadlineOffsetMinutes int `yaml:"deadline_offset_minutes"`
		DefaultBonusSeconds   int `yaml:"default_bonus_seconds"`
	} `yaml:"game"`
	WebSocket struct {
		WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
		ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`
		PingIntervalSeconds int `yaml:"ping_interval_seconds"`
	} `yaml:"websocket"`
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Game.DefaultPoints = 100
	cfg.Game.DeadlineOffsetMinutes = 30
	cfg.Game.DefaultBonusSeconds = 60
	cfg.WebSocket.WriteTimeoutSeconds = 10
	cfg.WebSocket.ReadTimeoutSeconds = 60
	cfg.WebSocket.PingIntervalSeconds = 30
	return cfg
}

// loadConfig reads the YAML config at path, falling back to defaults when
// the file is absent.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// DeadlineOffset returns the default challenge window for new teams.
func (c *Config) DeadlineOffset() time.Duration {
	return time.Duration(c.Game.DeadlineOffsetMinutes) * time.Minute
}

// DefaultBonus returns the bonus applied by a "done" signal with no
// explicit extra_time.
func (c *Config) DefaultBonus() time.Duration {
	return time.Duration(c.Game.DefaultBonusSeconds) * time.Second
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
