// Package config loads uvmlab configuration from file, environment, and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all uvmlab settings.
type Config struct {
	// LogLevel controls logger verbosity (trace..error).
	LogLevel string `mapstructure:"log_level"`

	// TUI holds terminal interface settings.
	TUI TUIConfig `mapstructure:"tui"`

	// Tutor holds LLM tutor settings.
	Tutor TutorConfig `mapstructure:"tutor"`
}

// TUIConfig holds terminal interface settings.
type TUIConfig struct {
	// Theme selects the color palette ("default" or "high-contrast").
	Theme string `mapstructure:"theme"`
}

// TutorConfig holds settings for the LLM tutor backend.
type TutorConfig struct {
	// APIKey authenticates against the completion API. Falls back to
	// OPENAI_API_KEY when empty.
	APIKey string `mapstructure:"api_key"`

	// Model names the chat model to use.
	Model string `mapstructure:"model"`

	// BaseURL overrides the API endpoint, for OpenAI-compatible local
	// servers. Empty means the hosted default.
	BaseURL string `mapstructure:"base_url"`

	// MaxTokens bounds the length of tutor replies.
	MaxTokens int `mapstructure:"max_tokens"`
}

// Defaults applied when neither file nor environment provide a value.
const (
	DefaultLogLevel  = "warn"
	DefaultTheme     = "default"
	DefaultModel     = "gpt-4o-mini"
	DefaultMaxTokens = 1024
)

// Load reads configuration from the given file path, or from the default
// location when path is empty. A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("tui.theme", DefaultTheme)
	v.SetDefault("tutor.model", DefaultModel)
	v.SetDefault("tutor.max_tokens", DefaultMaxTokens)

	v.SetEnvPrefix("UVMLAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Tutor.APIKey == "" {
		cfg.Tutor.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}

	return cfg, nil
}

// DefaultConfigDir returns the directory searched for config.yaml.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "uvmlab"), nil
}
