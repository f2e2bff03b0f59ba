// Package config loads site configuration from the environment, an optional
// .env file and an optional YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Message sources
const (
	SourceEmbed    = "embed"
	SourceDir      = "dir"
	SourcePostgres = "postgres"
)

// Config holds all configuration for the site service
type Config struct {
	Port    string
	BaseURL string

	// Where raw locale documents are read from
	MessageSource string
	MessagesDir   string
	DatabaseURL   string

	CacheMessages bool
	LogLevel      string
}

// fileConfig mirrors the YAML structure for unmarshalling
type fileConfig struct {
	Server struct {
		Port    string `yaml:"port"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"server"`
	Messages struct {
		Source string `yaml:"source"`
		Dir    string `yaml:"dir"`
		Cache  *bool  `yaml:"cache"`
	} `yaml:"messages"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load builds the configuration. Precedence, lowest first: defaults, the
// SITE_CONFIG YAML file (with ${VAR} expansion), environment variables.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment
	_ = godotenv.Load()

	cfg := &Config{
		Port:          "8080",
		BaseURL:       "https://insight.ai.vn",
		MessageSource: SourceEmbed,
		CacheMessages: true,
		LogLevel:      "info",
	}

	if path := os.Getenv("SITE_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var raw fileConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &raw); err != nil {
		return fmt.Errorf("parse config YAML: %w", err)
	}

	c.Port = firstNonEmpty(raw.Server.Port, c.Port)
	c.BaseURL = firstNonEmpty(raw.Server.BaseURL, c.BaseURL)
	c.MessageSource = firstNonEmpty(raw.Messages.Source, c.MessageSource)
	c.MessagesDir = firstNonEmpty(raw.Messages.Dir, c.MessagesDir)
	c.DatabaseURL = firstNonEmpty(raw.Database.URL, c.DatabaseURL)
	c.LogLevel = firstNonEmpty(raw.Log.Level, c.LogLevel)
	if raw.Messages.Cache != nil {
		c.CacheMessages = *raw.Messages.Cache
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Port = envOrDefault("PORT", c.Port)
	c.BaseURL = envOrDefault("BASE_URL", c.BaseURL)
	c.MessageSource = envOrDefault("MESSAGE_SOURCE", c.MessageSource)
	c.MessagesDir = envOrDefault("MESSAGES_DIR", c.MessagesDir)
	c.DatabaseURL = envOrDefault("DATABASE_URL", c.DatabaseURL)
	c.CacheMessages = envOrDefaultBool("CACHE_MESSAGES", c.CacheMessages)
	c.LogLevel = envOrDefault("LOG_LEVEL", c.LogLevel)
}

func (c *Config) validate() error {
	c.MessageSource = strings.ToLower(strings.TrimSpace(c.MessageSource))
	switch c.MessageSource {
	case SourceEmbed:
	case SourceDir:
		if strings.TrimSpace(c.MessagesDir) == "" {
			return fmt.Errorf("config: MESSAGES_DIR is required when MESSAGE_SOURCE=dir")
		}
	case SourcePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required when MESSAGE_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("config: unknown MESSAGE_SOURCE %q (want embed, dir or postgres)", c.MessageSource)
	}

	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("config: PORT must be numeric, got %q", c.Port)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
