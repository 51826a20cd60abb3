package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/breate-dev/breate/internal/cli/client"
	"github.com/spf13/cobra"
)

// NewProfileCmd creates the profile command group
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit profiles",
	}

	cmd.AddCommand(newProfileGetCmd())
	cmd.AddCommand(newProfileUpdateCmd())

	return cmd
}

func newProfileGetCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "get <username>",
		Short: "Show a public profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, _, err := newAPIClient(envName)
			if err != nil {
				return err
			}

			profile, err := apiClient.GetProfile(cmd.Context(), args[0])
			if err != nil {
				return friendlyError(err)
			}

			printProfile(profile)
			return nil
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func newProfileUpdateCmd() *cobra.Command {
	var envName, username string
	var update client.ProfileUpdate
	var affiliations, portfolioLinks, preferredThemes string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, env, err := newSession(envName)
			if err != nil {
				return err
			}

			// Profile updates are keyed by username; default to the
			// authenticated user's.
			if username == "" {
				manager.Resolve(cmd.Context())
				if !manager.IsAuthenticated() {
					return fmt.Errorf("not logged in to %s. Run 'breate login' first", env.Name)
				}
				username = manager.CurrentUser().Username
				if username == "" {
					return fmt.Errorf("your account has no username yet; set one with --username")
				}
			}

			apiClient, _, err := newAPIClient(envName)
			if err != nil {
				return err
			}

			update.Affiliations = splitList(affiliations)
			update.PortfolioLinks = splitList(portfolioLinks)
			update.PreferredThemes = splitList(preferredThemes)

			profile, err := apiClient.UpdateProfile(cmd.Context(), username, update)
			if err != nil {
				return friendlyError(err)
			}

			fmt.Println("✓ Profile updated")
			printProfile(profile)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Profile to update (defaults to your own)")
	cmd.Flags().StringVar(&update.Username, "set-username", "", "New username")
	cmd.Flags().StringVar(&update.FullName, "full-name", "", "Full name")
	cmd.Flags().StringVar(&update.Bio, "bio", "", "Short bio")
	cmd.Flags().StringVar(&update.About, "about", "", "About section")
	cmd.Flags().StringVar(&update.How, "how", "", "How you like to work")
	cmd.Flags().StringVar(&update.Built, "built", "", "Things you have built")
	cmd.Flags().StringVar(&update.Future, "future", "", "Where you are heading")
	cmd.Flags().StringVar(&update.NextBuild, "next-build", "", "What you want to build next")
	cmd.Flags().StringVar(&affiliations, "affiliations", "", "Comma-separated affiliations")
	cmd.Flags().StringVar(&portfolioLinks, "portfolio-links", "", "Comma-separated portfolio links")
	cmd.Flags().StringVar(&preferredThemes, "preferred-themes", "", "Comma-separated preferred themes")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func printProfile(profile *client.Profile) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Username:\t%s\n", profile.Username)
	if profile.FullName != "" {
		fmt.Fprintf(w, "Name:\t%s\n", profile.FullName)
	}
	if profile.Archetype != "" {
		fmt.Fprintf(w, "Archetype:\t%s\n", profile.Archetype)
	}
	if profile.Tier != "" {
		fmt.Fprintf(w, "Tier:\t%s\n", profile.Tier)
	}
	if profile.Bio != "" {
		fmt.Fprintf(w, "Bio:\t%s\n", profile.Bio)
	}
	if profile.About != "" {
		fmt.Fprintf(w, "About:\t%s\n", profile.About)
	}
	if profile.How != "" {
		fmt.Fprintf(w, "How:\t%s\n", profile.How)
	}
	if profile.Built != "" {
		fmt.Fprintf(w, "Built:\t%s\n", profile.Built)
	}
	if profile.Future != "" {
		fmt.Fprintf(w, "Future:\t%s\n", profile.Future)
	}
	if profile.NextBuild != "" {
		fmt.Fprintf(w, "Next build:\t%s\n", profile.NextBuild)
	}
	if len(profile.Affiliations) > 0 {
		fmt.Fprintf(w, "Affiliations:\t%s\n", strings.Join(profile.Affiliations, ", "))
	}
	if len(profile.PortfolioLinks) > 0 {
		fmt.Fprintf(w, "Portfolio:\t%s\n", strings.Join(profile.PortfolioLinks, ", "))
	}
	if len(profile.PreferredThemes) > 0 {
		fmt.Fprintf(w, "Themes:\t%s\n", strings.Join(profile.PreferredThemes, ", "))
	}
	w.Flush()
}
