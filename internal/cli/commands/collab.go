package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewCollabCmd creates the collab command group
func NewCollabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collab",
		Short: "Log and review peer collaborations",
	}

	cmd.AddCommand(newCollabLogCmd())
	cmd.AddCommand(newCollabListCmd())

	return cmd
}

func newCollabLogCmd() *cobra.Command {
	var envName, projectName string

	cmd := &cobra.Command{
		Use:   "log <collaborator-username>",
		Short: "Log a collaboration with another user",
		Long: `Log a collaboration with another user.

The record starts as pending and becomes verified once the other
party confirms it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, _, err := newAPIClient(envName)
			if err != nil {
				return err
			}

			collab, err := apiClient.CreateCollaboration(cmd.Context(), args[0], projectName)
			if err != nil {
				return friendlyError(err)
			}

			fmt.Printf("✓ Collaboration with %s logged (%s)\n", args[0], collab.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectName, "project", "", "Project the collaboration happened on")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func newCollabListCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List your collaboration timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, _, err := newAPIClient(envName)
			if err != nil {
				return err
			}

			collabs, err := apiClient.MyCollaborations(cmd.Context())
			if err != nil {
				return friendlyError(err)
			}

			if len(collabs) == 0 {
				fmt.Println("No collaborations yet.")
				fmt.Println("\nLog one with: breate collab log <username>")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WITH\tPROJECT\tSTATUS\tVERIFIED")
			fmt.Fprintln(w, "────\t───────\t──────\t────────")
			for _, collab := range collabs {
				verified := collab.VerifiedAt
				if verified == "" {
					verified = "-"
				}
				fmt.Fprintf(w, "%s / %s\t%s\t%s\t%s\n",
					collab.UserAUsername,
					collab.UserBUsername,
					collab.ProjectName,
					collab.Status,
					verified,
				)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}
