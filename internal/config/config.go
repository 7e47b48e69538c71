// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RecoveryModeEnv is the environment signal forcing recovery-mode quest
// generation.
const RecoveryModeEnv = "SHADOW_MODE"

// Config is the CLI configuration loadable from a JSON file. All fields
// are optional; missing values use defaults or environment variables.
type Config struct {
	// Connections
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key

	// Orchestrator
	Models []string `json:"models,omitempty"` // Ranked backend list, strongest first

	// Collaborators
	GitHubUsername  string `json:"github_username,omitempty"`  // Identity for the activity feed
	CredentialsPath string `json:"credentials_path,omitempty"` // Google Calendar credentials file

	// Output
	ArtifactsDir string `json:"artifacts_dir,omitempty"` // Where quest/verdict/HUD artifacts land
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv fills unset connection fields from the environment.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.GitHubUsername == "" {
		c.GitHubUsername = os.Getenv("GITHUB_USERNAME")
	}
}

// Validate checks that required values are present.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: database_url is required (or set DATABASE_URL)")
	}
	if c.APIKey == "" {
		return fmt.Errorf("config error: api_key is required (or set GEMINI_API_KEY)")
	}
	if c.CredentialsPath != "" {
		if _, err := os.Stat(c.CredentialsPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: credentials file not found: %s", c.CredentialsPath)
		}
	}
	return nil
}

// RecoveryModeActive reports whether the environment safeguard signal is
// set.
func RecoveryModeActive() bool {
	return os.Getenv(RecoveryModeEnv) == "RECOVERY"
}
