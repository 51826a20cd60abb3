package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const ConfigFileName = "breate.json"

// DefaultBaseURL points to the hosted BREATE backend deployment.
const DefaultBaseURL = "https://breate-backend.onrender.com/api/v1"

// DefaultWebURL is the hosted web frontend, used by the dash command.
const DefaultWebURL = "https://breate.onrender.com"

// Environment represents a BREATE backend deployment the CLI can talk to
type Environment struct {
	Name    string `json:"name"`
	BaseURL string `json:"base_url"`
	WebURL  string `json:"web_url,omitempty"`
}

// Config represents the CLI configuration file
type Config struct {
	Environments []Environment `json:"environments"`
}

// DefaultConfig returns a configuration pointing at the hosted deployment
func DefaultConfig() *Config {
	return &Config{
		Environments: []Environment{
			{
				Name:    "production",
				BaseURL: DefaultBaseURL,
				WebURL:  DefaultWebURL,
			},
		},
	}
}

// DefaultEnvironment is the environment used when no config file exists.
func DefaultEnvironment() *Environment {
	return &Environment{
		Name:    "production",
		BaseURL: DefaultBaseURL,
		WebURL:  DefaultWebURL,
	}
}

// BaseURLOverride returns the base URL forced via environment variables,
// or an empty string. It layers .env files the same way the backend does.
func BaseURLOverride() string {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
	return os.Getenv("BREATE_API_BASE_URL")
}

// FindConfigFile searches for breate.json in current directory and parent directories
func FindConfigFile() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	// Search upwards until we find breate.json or reach root
	dir := currentDir
	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found in %s or any parent directory", ConfigFileName, currentDir)
}

// Load reads the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadFromCurrentDir loads config from current directory or parent directories
func LoadFromCurrentDir() (*Config, error) {
	configPath, err := FindConfigFile()
	if err != nil {
		return nil, err
	}

	return Load(configPath)
}

// Save writes the configuration to a file
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetEnvironmentByName returns an environment by its name
func (c *Config) GetEnvironmentByName(name string) (*Environment, error) {
	for _, env := range c.Environments {
		if env.Name == name {
			return &env, nil
		}
	}
	return nil, fmt.Errorf("environment '%s' not found in %s", name, ConfigFileName)
}

// GetDefaultEnvironment returns the first configured environment
func (c *Config) GetDefaultEnvironment() (*Environment, error) {
	if len(c.Environments) == 0 {
		return nil, fmt.Errorf("no environments configured in %s", ConfigFileName)
	}
	return &c.Environments[0], nil
}
