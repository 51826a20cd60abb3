package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewArchetypesCmd creates the archetypes command
func NewArchetypesCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "archetypes",
		Short: "List collaborator archetypes",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, _, err := newAPIClient(envName)
			if err != nil {
				return err
			}

			archetypes, err := apiClient.ListArchetypes(cmd.Context())
			if err != nil {
				return friendlyError(err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
			for _, archetype := range archetypes {
				fmt.Fprintf(w, "%d\t%s\t%s\n", archetype.ID, archetype.Name, archetype.Description)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

// NewTiersCmd creates the tiers command
func NewTiersCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "List experience tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, _, err := newAPIClient(envName)
			if err != nil {
				return err
			}

			tiers, err := apiClient.ListTiers(cmd.Context())
			if err != nil {
				return friendlyError(err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
			for _, tier := range tiers {
				fmt.Fprintf(w, "%d\t%s\t%s\n", tier.ID, tier.Name, tier.Description)
			}
			w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}
