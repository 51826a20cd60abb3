package commands

import (
	"fmt"

	"github.com/breate-dev/breate/internal/cli/config"
	"github.com/breate-dev/breate/internal/cli/envselect"
	"github.com/breate-dev/breate/internal/cli/userconfig"
	"github.com/spf13/cobra"
)

// NewSelectEnvCmd creates the select-env command
func NewSelectEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select-env [name-or-url]",
		Short: "Select the backend environment to use for commands",
		Long: `Select the backend environment to use for commands.

If no param is provided, an interactive prompt will be shown.

Examples:
  $ breate select-env             # Interactive selection
  $ breate select-env production  # Select by name
  $ breate select-env https://api.example.com/api/v1  # Select by base URL`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var nameOrURL string
			if len(args) > 0 {
				nameOrURL = args[0]
			}
			return runSelectEnv(nameOrURL)
		},
	}

	return cmd
}

func runSelectEnv(nameOrURL string) error {
	// Load project config
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return fmt.Errorf("failed to load config: %w\nRun 'breate init' to create a configuration file", err)
	}

	var env *config.Environment

	if nameOrURL != "" {
		// User provided a name or base URL, find it
		env, err = envselect.GetEnvironmentByNameOrURL(cfg, nameOrURL)
		if err != nil {
			return err
		}
	} else {
		// Show interactive selection
		env, err = envselect.PromptEnvironmentSelection(cfg)
		if err != nil {
			return err
		}
	}

	// Save the selected environment
	if err := userconfig.SetSelectedEnvironment(env.Name); err != nil {
		return fmt.Errorf("failed to save selected environment: %w", err)
	}

	fmt.Printf("Selected environment: %s (%s)\n", env.Name, env.BaseURL)
	return nil
}
