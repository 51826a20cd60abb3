package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/breate-dev/breate/internal/cli/client"
	"github.com/spf13/cobra"
)

// NewDiscoverCmd creates the discover command group
func NewDiscoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Find collaborators and projects",
	}

	cmd.AddCommand(newDiscoverUsersCmd())
	cmd.AddCommand(newDiscoverProjectsCmd())

	return cmd
}

func newDiscoverUsersCmd() *cobra.Command {
	var envName, username string
	var archetypeID, tierID int

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Search for collaborators",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, _, err := newAPIClient(envName)
			if err != nil {
				return err
			}

			users, err := apiClient.DiscoverUsers(cmd.Context(), client.UserFilters{
				Username:    username,
				ArchetypeID: archetypeID,
				TierID:      tierID,
			})
			if err != nil {
				return friendlyError(err)
			}

			if len(users) == 0 {
				fmt.Println("No collaborators matched your filters.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "USERNAME\tARCHETYPE\tTIER\tBIO")
			fmt.Fprintln(w, "────────\t─────────\t────\t───")
			for _, user := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", user.Username, user.Archetype, user.Tier, truncate(user.Bio, 60))
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Filter by username")
	cmd.Flags().IntVar(&archetypeID, "archetype", 0, "Filter by archetype ID")
	cmd.Flags().IntVar(&tierID, "tier", 0, "Filter by tier ID")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func newDiscoverProjectsCmd() *cobra.Command {
	var envName, archetype, region, coalition string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Search for projects looking for collaborators",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, _, err := newAPIClient(envName)
			if err != nil {
				return err
			}

			projects, err := apiClient.DiscoverProjects(cmd.Context(), client.ProjectFilters{
				Archetype: archetype,
				Region:    region,
				Coalition: coalition,
			})
			if err != nil {
				return friendlyError(err)
			}

			if len(projects) == 0 {
				fmt.Println("No projects matched your filters.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tTYPE\tREGION\tNEEDS")
			fmt.Fprintln(w, "──\t─────\t────\t──────\t─────")
			for _, project := range projects {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					project.ID,
					project.Title,
					project.ProjectType,
					project.Region,
					strings.Join(project.NeededArchetypes, ", "),
				)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&archetype, "archetype", "", "Filter by needed archetype")
	cmd.Flags().StringVar(&region, "region", "", "Filter by region")
	cmd.Flags().StringVar(&coalition, "coalition", "", "Filter by coalition tag")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
