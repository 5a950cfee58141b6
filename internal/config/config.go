package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://integrations.kanbanzone.io/v1"

// Config carries the credential and board settings every command needs.
// Resolution order, lowest to highest: defaults, optional YAML config file
// (KANBANZONE_CONFIG), environment variables. The --board flag overrides the
// board at the command layer.
type Config struct {
	APIKey  string `yaml:"api_key"`
	BoardID string `yaml:"board"`
	BaseURL string `yaml:"base_url"`
}

// Load resolves configuration from the optional config file and environment.
// It does not validate presence of the API key; commands that need the key
// call RequireKey so that purely local errors fail before any network call.
func Load() (*Config, error) {
	cfg := &Config{BaseURL: DefaultBaseURL}

	if path := os.Getenv("KANBANZONE_CONFIG"); path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("KANBANZONE_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("KANBANZONE_BOARD_ID"); v != "" {
		cfg.BoardID = v
	}
	if v := os.Getenv("KANBANZONE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// RequireKey fails when no API key is configured.
func (c *Config) RequireKey() error {
	if c.APIKey == "" {
		return fmt.Errorf("KANBANZONE_API_KEY environment variable is not set")
	}
	return nil
}

// ResolveBoard returns the board to operate on: the override when given,
// otherwise the configured default.
func (c *Config) ResolveBoard(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if c.BoardID == "" {
		return "", fmt.Errorf("board ID required. Use --board or set KANBANZONE_BOARD_ID")
	}
	return c.BoardID, nil
}
