package commands

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/breate-dev/breate/internal/cli/config"
	"github.com/breate-dev/breate/internal/cli/envselect"
	"github.com/spf13/cobra"
)

// NewDashCmd creates the dash command
func NewDashCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Open the BREATE web app in browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDash(envName)
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runDash(envName string) error {
	env, err := envselect.ResolveEnvironment(envName)
	if err != nil {
		return err
	}

	webURL := env.WebURL
	if webURL == "" {
		webURL = config.DefaultWebURL
	}

	fmt.Printf("Opening BREATE for %s...\n", env.Name)
	fmt.Printf("URL: %s\n", webURL)

	if err := openBrowser(webURL); err != nil {
		return fmt.Errorf("failed to open browser: %w\nPlease visit: %s", err, webURL)
	}

	return nil
}

// openBrowser opens the URL in the default browser
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
