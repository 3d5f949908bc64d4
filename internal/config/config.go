package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port         string
	DatabaseURL  string // SQLite DSN; empty means run on the in-memory store
	DatabaseName string // informational, reported by the diagnostics endpoint
}

// configFile is the optional YAML layout pointed at by CONFIG_FILE.
type configFile struct {
	Port     string `yaml:"port"`
	Database struct {
		URL  string `yaml:"url"`
		Name string `yaml:"name"`
	} `yaml:"database"`
}

// Load builds the configuration in three layers: defaults, then the optional
// YAML file, then environment variables. Environment always wins.
func Load() (*Config, error) {
	cfg := &Config{
		Port: "8000",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		var f configFile
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
		if f.Port != "" {
			cfg.Port = f.Port
		}
		cfg.DatabaseURL = f.Database.URL
		cfg.DatabaseName = f.Database.Name
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.DatabaseName = getEnv("DATABASE_NAME", cfg.DatabaseName)

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid port %q", cfg.Port)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
