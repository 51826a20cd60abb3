package commands

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/breate-dev/breate/internal/cli/client"
	"github.com/spf13/cobra"
)

// NewCoalitionsCmd creates the coalitions command group
func NewCoalitionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coalitions",
		Short: "Browse coalitions",
	}

	cmd.AddCommand(newCoalitionsListCmd())
	cmd.AddCommand(newCoalitionsGetCmd())

	return cmd
}

func newCoalitionsListCmd() *cobra.Command {
	var envName, search, region string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List coalitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, _, err := newAPIClient(envName)
			if err != nil {
				return err
			}

			coalitions, err := apiClient.ListCoalitions(cmd.Context(), client.CoalitionFilters{
				Search: search,
				Region: region,
			})
			if err != nil {
				return friendlyError(err)
			}

			if len(coalitions) == 0 {
				fmt.Println("No coalitions found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tFOCUS\tLOCATION\tMEMBERS")
			fmt.Fprintln(w, "──\t────\t─────\t────────\t───────")
			for _, coalition := range coalitions {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
					coalition.ID,
					coalition.Name,
					coalition.Focus,
					coalition.Location,
					coalition.MemberCount,
				)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by name")
	cmd.Flags().StringVar(&region, "region", "", "Filter by region")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func newCoalitionsGetCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "get <coalition-id>",
		Short: "Show a coalition and its members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coalitionID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid coalition id '%s'", args[0])
			}

			apiClient, _, err := newAPIClient(envName)
			if err != nil {
				return err
			}

			coalition, err := apiClient.GetCoalition(cmd.Context(), coalitionID)
			if err != nil {
				return friendlyError(err)
			}

			fmt.Printf("%s\n", coalition.Name)
			if coalition.Description != "" {
				fmt.Printf("%s\n", coalition.Description)
			}
			if coalition.Focus != "" {
				fmt.Printf("Focus: %s\n", coalition.Focus)
			}
			if coalition.Location != "" {
				fmt.Printf("Location: %s\n", coalition.Location)
			}

			if len(coalition.Members) > 0 {
				fmt.Printf("\nMembers (%d):\n", len(coalition.Members))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, member := range coalition.Members {
					fmt.Fprintf(w, "  %s\t%s\n", member.Username, truncate(member.Bio, 60))
				}
				w.Flush()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}
