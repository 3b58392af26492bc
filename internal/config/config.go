// Package config loads service settings from an optional YAML file with
// environment variable overrides for deployment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port        int      `yaml:"port"`
	MetricsPort int      `yaml:"metrics_port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	// Driver is sqlite, mysql or memory.
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type AuthConfig struct {
	JWTSecret   string `yaml:"jwt_secret"`
	TokenTTLMin int    `yaml:"token_ttl_minutes"`
}

// CanvasConfig bounds the floor plan coordinate space.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Canvas   CanvasConfig   `yaml:"canvas"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			MetricsPort: 9090,
			CORSOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "bistro.db",
		},
		Auth: AuthConfig{
			JWTSecret:   "change-me-in-production",
			TokenTTLMin: 12 * 60,
		},
		Canvas: CanvasConfig{Width: 1000, Height: 700},
	}
}

// Load reads the YAML file at path when it exists, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.MetricsPort = port
		}
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) MetricsAddr() string {
	return fmt.Sprintf(":%d", c.Server.MetricsPort)
}
