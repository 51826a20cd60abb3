package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(cmd.Context(), envName)
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runWhoami(ctx context.Context, envName string) error {
	manager, env, err := newSession(envName)
	if err != nil {
		return err
	}

	manager.Resolve(ctx)
	if !manager.IsAuthenticated() {
		return fmt.Errorf("not logged in to %s. Run 'breate login' first", env.Name)
	}

	user := manager.CurrentUser()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Username:\t%s\n", user.Username)
	fmt.Fprintf(w, "Email:\t%s\n", user.Email)
	if user.Archetype != "" {
		fmt.Fprintf(w, "Archetype:\t%s\n", user.Archetype)
	}
	if user.Tier != "" {
		fmt.Fprintf(w, "Tier:\t%s\n", user.Tier)
	}
	if user.Bio != "" {
		fmt.Fprintf(w, "Bio:\t%s\n", user.Bio)
	}
	w.Flush()

	return nil
}
