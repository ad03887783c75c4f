package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration file (YAML).
type Config struct {
	APIKey      string   `yaml:"api_key"`
	Model       string   `yaml:"model"`
	System      string   `yaml:"system"`
	Temperature *float32 `yaml:"temperature"`
	MaxTokens   *int     `yaml:"max_tokens"`
	MaxLen      *int     `yaml:"max_len"`
	UserTag     string   `yaml:"user"`
}

// LoadConfig reads the config file. A missing file is not an error; all
// settings have flag or default fallbacks.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Config{}, nil
		}
		path = filepath.Join(home, ".gogpt.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// resolveAPIKey finds the credential: flag, config file, environment
// (including a local .env), then an interactive no-echo prompt.
func resolveAPIKey(cfg *Config) (string, error) {
	if apiKeyFlag != "" {
		return apiKeyFlag, nil
	}
	if cfg.APIKey != "" {
		return cfg.APIKey, nil
	}

	// .env values only fill in unset variables.
	_ = godotenv.Load()
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no API key: set --api-key, api_key in config, or OPENAI_API_KEY")
	}

	fmt.Fprint(os.Stderr, "API key: ")
	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	if len(key) == 0 {
		return "", errors.New("empty API key")
	}
	return string(key), nil
}
