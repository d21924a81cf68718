// Package config loads application configuration from environment variables.
// All variables use the CAPY_ prefix. An optional YAML sources file can
// override the sheet URLs and assistant model chain, so content editors can
// repoint sheets without touching the deployment environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Cache     CacheConfig
	Sheets    SheetsConfig
	Assistant AssistantConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
	Host string
}

// CacheConfig holds Redis/Dragonfly settings. An empty URL disables caching.
type CacheConfig struct {
	URL string
	TTL time.Duration
}

// SheetsConfig holds the published-spreadsheet URLs, one per collection.
// Empty or placeholder URLs make the library serve its bundled fallback data.
type SheetsConfig struct {
	Videos     string
	Ebooks     string
	Lectures   string
	Documents  string
	Worksheets string

	FetchTimeout time.Duration
}

// AssistantConfig holds chat assistant settings.
type AssistantConfig struct {
	Endpoint string
	Models   []string // ordered fallback chain
	Timeout  time.Duration
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with CAPY_ prefix,
// then applies the sources file named by CAPY_SOURCES_FILE, if any.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("CAPY_SERVER_PORT", 8080),
			Host: envStr("CAPY_SERVER_HOST", "0.0.0.0"),
		},
		Cache: CacheConfig{
			URL: envStr("CAPY_CACHE_URL", ""),
			TTL: envDuration("CAPY_CACHE_TTL", 10*time.Minute),
		},
		Sheets: SheetsConfig{
			Videos:       envStr("CAPY_SHEET_VIDEOS_URL", ""),
			Ebooks:       envStr("CAPY_SHEET_EBOOKS_URL", ""),
			Lectures:     envStr("CAPY_SHEET_LECTURES_URL", ""),
			Documents:    envStr("CAPY_SHEET_DOCUMENTS_URL", ""),
			Worksheets:   envStr("CAPY_SHEET_WORKSHEETS_URL", ""),
			FetchTimeout: envDuration("CAPY_SHEET_FETCH_TIMEOUT", 15*time.Second),
		},
		Assistant: AssistantConfig{
			Endpoint: envStr("CAPY_ASSISTANT_ENDPOINT", "https://text.pollinations.ai/"),
			Models:   envList("CAPY_ASSISTANT_MODELS", []string{"openai", "qwen", "mistral", "llama"}),
			Timeout:  envDuration("CAPY_ASSISTANT_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  envStr("CAPY_LOG_LEVEL", "info"),
			Format: envStr("CAPY_LOG_FORMAT", "json"),
		},
	}

	if path := os.Getenv("CAPY_SOURCES_FILE"); path != "" {
		if err := cfg.applySourcesFile(path); err != nil {
			return nil, fmt.Errorf("loading sources file: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks that configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("CAPY_SERVER_PORT must be 1-65535, got %d", c.Server.Port)
	}
	if len(c.Assistant.Models) == 0 {
		return fmt.Errorf("assistant model chain is empty")
	}
	if c.Log.Level != "debug" && c.Log.Level != "info" && c.Log.Level != "warn" && c.Log.Level != "error" {
		return fmt.Errorf("CAPY_LOG_LEVEL must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}

// sourcesFile is the YAML shape of the optional sources override file.
type sourcesFile struct {
	Sheets struct {
		Videos     string `yaml:"videos"`
		Ebooks     string `yaml:"ebooks"`
		Lectures   string `yaml:"lectures"`
		Documents  string `yaml:"documents"`
		Worksheets string `yaml:"worksheets"`
	} `yaml:"sheets"`
	Assistant struct {
		Endpoint string   `yaml:"endpoint"`
		Models   []string `yaml:"models"`
	} `yaml:"assistant"`
}

func (c *Config) applySourcesFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var sf sourcesFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	// Only non-empty values override the environment.
	overlay(&c.Sheets.Videos, sf.Sheets.Videos)
	overlay(&c.Sheets.Ebooks, sf.Sheets.Ebooks)
	overlay(&c.Sheets.Lectures, sf.Sheets.Lectures)
	overlay(&c.Sheets.Documents, sf.Sheets.Documents)
	overlay(&c.Sheets.Worksheets, sf.Sheets.Worksheets)
	overlay(&c.Assistant.Endpoint, sf.Assistant.Endpoint)
	if len(sf.Assistant.Models) > 0 {
		c.Assistant.Models = sf.Assistant.Models
	}
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
