package envselect

import (
	"fmt"

	"github.com/breate-dev/breate/internal/cli/config"
	"github.com/breate-dev/breate/internal/cli/userconfig"
	"github.com/manifoldco/promptui"
)

// ResolveEnvironment determines which backend environment to use based on the
// following priority:
//  1. If envName flag is provided, use that environment
//  2. If user has a selected environment in their local config, use that
//  3. If only one environment in project config, use that
//  4. Otherwise, prompt user to select an environment interactively
//
// When no breate.json exists at all, the hosted default deployment is used.
// BREATE_API_BASE_URL always overrides the resolved base URL.
func ResolveEnvironment(envName string) (*config.Environment, error) {
	env, err := resolveConfigured(envName)
	if err != nil {
		return nil, err
	}

	if override := config.BaseURLOverride(); override != "" {
		env.BaseURL = override
	}
	return env, nil
}

func resolveConfigured(envName string) (*config.Environment, error) {
	projectConfig, err := config.LoadFromCurrentDir()
	if err != nil {
		// No config file: fall back to the hosted deployment unless the
		// caller asked for a named environment.
		if envName != "" {
			return nil, fmt.Errorf("failed to load config: %w\nRun 'breate init' to create a configuration file", err)
		}
		return config.DefaultEnvironment(), nil
	}

	// Priority 1: Use environment name if provided
	if envName != "" {
		return projectConfig.GetEnvironmentByName(envName)
	}

	// Priority 2: Use selected environment from user config
	selectedName, err := userconfig.GetSelectedEnvironment()
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if selectedName != "" {
		env, err := projectConfig.GetEnvironmentByName(selectedName)
		if err != nil {
			// Selected environment no longer exists in project config, clear it and continue
			_ = userconfig.SetSelectedEnvironment("")
		} else {
			return env, nil
		}
	}

	// Priority 3: If only one environment, use it automatically
	if len(projectConfig.Environments) == 1 {
		env := &projectConfig.Environments[0]
		// Save it as the selected environment
		if err := userconfig.SetSelectedEnvironment(env.Name); err != nil {
			// Don't fail if we can't save, just continue
			fmt.Printf("Warning: failed to save selected environment: %v\n", err)
		}
		return env, nil
	}

	// Priority 4: Prompt user to select an environment
	env, err := PromptEnvironmentSelection(projectConfig)
	if err != nil {
		return nil, err
	}

	// Save the selected environment
	if err := userconfig.SetSelectedEnvironment(env.Name); err != nil {
		// Don't fail if we can't save, just continue
		fmt.Printf("Warning: failed to save selected environment: %v\n", err)
	}

	return env, nil
}

// PromptEnvironmentSelection shows an interactive prompt for the user to select an environment
func PromptEnvironmentSelection(projectConfig *config.Config) (*config.Environment, error) {
	if len(projectConfig.Environments) == 0 {
		return nil, fmt.Errorf("no environments configured in %s", config.ConfigFileName)
	}

	// Create display labels for each environment
	type envOption struct {
		Label       string
		Environment *config.Environment
	}

	options := make([]envOption, len(projectConfig.Environments))
	for i := range projectConfig.Environments {
		env := &projectConfig.Environments[i]
		label := fmt.Sprintf("%s (%s)", env.Name, env.BaseURL)
		options[i] = envOption{
			Label:       label,
			Environment: env,
		}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ .Label | cyan }}",
		Inactive: "  {{ .Label }}",
		Selected: "{{ .Label | green }}",
	}

	prompt := promptui.Select{
		Label:     "Select an environment",
		Items:     options,
		Templates: templates,
		Size:      10,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("environment selection cancelled: %w", err)
	}

	return options[index].Environment, nil
}

// GetEnvironmentByNameOrURL finds an environment by its name or base URL
func GetEnvironmentByNameOrURL(cfg *config.Config, nameOrURL string) (*config.Environment, error) {
	for i := range cfg.Environments {
		if cfg.Environments[i].Name == nameOrURL || cfg.Environments[i].BaseURL == nameOrURL {
			return &cfg.Environments[i], nil
		}
	}
	return nil, fmt.Errorf("environment '%s' not found in project config", nameOrURL)
}
