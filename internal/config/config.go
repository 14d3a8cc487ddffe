// Package config loads service configuration from an optional YAML file with
// environment variable overrides. Environment wins over file, file over
// defaults.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DBConfig describes the relational store connection.
type DBConfig struct {
	Driver   string `yaml:"driver"` // "postgres" or "sqlite"
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Path     string `yaml:"path"` // sqlite file path
}

// LLMConfig selects the chat provider and its credentials.
type LLMConfig struct {
	Provider     string `yaml:"provider"` // "openai" or "gemini"
	OpenAIAPIKey string `yaml:"openai_api_key"`
	GeminiAPIKey string `yaml:"gemini_api_key"`
	Model        string `yaml:"model"` // optional model override
}

// SessionConfig controls session token issuance.
type SessionConfig struct {
	Secret   string `yaml:"secret"`
	TTLHours int    `yaml:"ttl_hours"`
}

// Config is the full service configuration.
type Config struct {
	Port     string        `yaml:"port"`
	LogLevel string        `yaml:"log_level"`
	DB       DBConfig      `yaml:"db"`
	LLM      LLMConfig     `yaml:"llm"`
	Session  SessionConfig `yaml:"session"`
}

// Load reads path (when non-empty and present) and applies env overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port:     "8080",
		LogLevel: "info",
		DB: DBConfig{
			Driver: "postgres",
			Host:   "localhost",
			Port:   "5432",
			Path:   "itinerary.db",
		},
		LLM: LLMConfig{
			Provider: "openai",
		},
		Session: SessionConfig{
			TTLHours: 24 * 7,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("session secret is not configured (SESSION_SECRET)")
	}
	switch cfg.LLM.Provider {
	case "openai", "gemini":
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	envString(&c.Port, "API_PORT")
	envString(&c.LogLevel, "LOG_LEVEL")

	envString(&c.DB.Driver, "DB_DRIVER")
	envString(&c.DB.Host, "DB_HOST")
	envString(&c.DB.Port, "DB_PORT")
	envString(&c.DB.User, "DB_USER")
	envString(&c.DB.Password, "DB_PASS")
	envString(&c.DB.Name, "DB_NAME")
	envString(&c.DB.Path, "DB_PATH")

	envString(&c.LLM.Provider, "LLM_PROVIDER")
	envString(&c.LLM.OpenAIAPIKey, "OPENAI_API_KEY")
	envString(&c.LLM.GeminiAPIKey, "GEMINI_API_KEY")
	envString(&c.LLM.Model, "LLM_MODEL")

	envString(&c.Session.Secret, "SESSION_SECRET")
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Session.TTLHours = n
		}
	}
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DSN builds the driver-specific connection string.
func (d DBConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	return "host=" + d.Host + " port=" + d.Port + " user=" + d.User +
		" password=" + d.Password + " dbname=" + d.Name + " sslmode=disable"
}
