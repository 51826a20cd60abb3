package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/breate-dev/breate/internal/cli/config"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var name, webURL string

	cmd := &cobra.Command{
		Use:   "init [base-url]",
		Short: "Create a breate.json configuration file",
		Long: `Create a breate.json configuration file in the current directory.

Without arguments the hosted BREATE deployment is configured. Pass a
base URL to point the CLI at a self-hosted backend instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var baseURL string
			if len(args) > 0 {
				baseURL = args[0]
			}
			return runInit(baseURL, name, webURL)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Environment name (defaults to 'production')")
	cmd.Flags().StringVar(&webURL, "web-url", "", "Web frontend URL for this environment")

	return cmd
}

func runInit(baseURL, name, webURL string) error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(currentDir, config.ConfigFileName)

	var cfg *config.Config
	isNewConfig := false

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		// Load existing config
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load existing config: %w", err)
		}
	} else {
		cfg = &config.Config{}
		isNewConfig = true
	}

	env := config.Environment{
		Name:    name,
		BaseURL: baseURL,
		WebURL:  webURL,
	}
	if env.Name == "" {
		env.Name = "production"
	}
	if env.BaseURL == "" {
		env.BaseURL = config.DefaultBaseURL
		if env.WebURL == "" {
			env.WebURL = config.DefaultWebURL
		}
	}

	// Don't add a duplicate environment
	for _, existing := range cfg.Environments {
		if existing.Name == env.Name {
			return fmt.Errorf("environment '%s' already exists in %s", env.Name, config.ConfigFileName)
		}
	}

	cfg.Environments = append(cfg.Environments, env)

	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	if isNewConfig {
		fmt.Printf("Created %s\n", configPath)
	} else {
		fmt.Printf("Updated %s\n", configPath)
	}
	fmt.Printf("Added environment '%s' (%s)\n", env.Name, env.BaseURL)

	return nil
}
