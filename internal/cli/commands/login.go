package commands

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password, envName string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the BREATE backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd.Context(), email, password, envName)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set BREATE_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set BREATE_PASSWORD, will prompt if not provided)")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runLogin(ctx context.Context, email, password, envName string) error {
	// Check for environment variables (useful for CI/CD)
	if email == "" {
		email = os.Getenv("BREATE_EMAIL")
	}
	if password == "" {
		password = os.Getenv("BREATE_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or BREATE_EMAIL env var)")
	}

	manager, env, err := newSession(envName)
	if err != nil {
		return err
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		// Check if stdin is a terminal (not piped)
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println() // New line after password input
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or BREATE_PASSWORD env var)")
		}
	}

	fmt.Printf("Logging in to %s (%s)...\n", env.Name, env.BaseURL)

	result := manager.Login(ctx, email, password)
	if !result.Success {
		return fmt.Errorf("login failed: %s", result.Error)
	}

	user := manager.CurrentUser()
	fmt.Println("✓ Login successful!")
	fmt.Printf("  User: %s (%s)\n", user.Username, user.Email)
	if user.Archetype != "" {
		fmt.Printf("  Archetype: %s\n", user.Archetype)
	}
	if user.Tier != "" {
		fmt.Printf("  Tier: %s\n", user.Tier)
	}

	return nil
}
