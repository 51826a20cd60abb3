package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(envName)
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runLogout(envName string) error {
	manager, env, err := newSession(envName)
	if err != nil {
		return err
	}

	manager.Logout()
	fmt.Printf("Logged out of %s.\n", env.Name)
	return nil
}
