package cli

import (
	"fmt"
	"os"

	"github.com/breate-dev/breate/internal/cli/commands"
	"github.com/breate-dev/breate/internal/cli/update"
	"github.com/breate-dev/breate/internal/logger"
	"github.com/spf13/cobra"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "breate",
	Short: "BREATE - Collaboration discovery from your terminal",
	Long: `BREATE CLI - Find collaborators, post projects, and build a verified
collaboration timeline from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(os.Getenv("BREATE_LOG_LEVEL"), os.Getenv("BREATE_LOG_FORMAT"))

		// Skip update check for the update and version commands
		if cmd.Name() == "update" || cmd.Name() == "version" {
			return
		}

		// Check for updates (runs before every command except update/version)
		update.PrintUpdateNotification(version)
	},
}

func init() {
	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("breate version %s\n", version)
		},
	})

	// Add all subcommands
	rootCmd.AddCommand(commands.NewInitCmd())
	rootCmd.AddCommand(commands.NewSelectEnvCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewRegisterCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewProfileCmd())
	rootCmd.AddCommand(commands.NewProjectsCmd())
	rootCmd.AddCommand(commands.NewDiscoverCmd())
	rootCmd.AddCommand(commands.NewCoalitionsCmd())
	rootCmd.AddCommand(commands.NewCollabCmd())
	rootCmd.AddCommand(commands.NewArchetypesCmd())
	rootCmd.AddCommand(commands.NewTiersCmd())
	rootCmd.AddCommand(commands.NewDashCmd())
	rootCmd.AddCommand(commands.NewUpdateCmd(version))
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
