package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/breate-dev/breate/internal/cli/auth"
	"github.com/breate-dev/breate/internal/cli/client"
	"github.com/breate-dev/breate/internal/cli/session"
	"github.com/go-playground/validator/v10"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// registerForm is validated client-side before any request is made
type registerForm struct {
	Email       string `validate:"required,email"`
	Password    string `validate:"required,min=8"`
	ArchetypeID int    `validate:"required,gt=0"`
	TierID      int    `validate:"required,gt=0"`
}

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var email, password, envName string
	var archetypeID, tierID int

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a BREATE account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd.Context(), email, password, archetypeID, tierID, envName)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set BREATE_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set BREATE_PASSWORD, will prompt if not provided)")
	cmd.Flags().IntVar(&archetypeID, "archetype", 0, "Archetype ID (interactive selection if not provided)")
	cmd.Flags().IntVar(&tierID, "tier", 0, "Tier ID (interactive selection if not provided)")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runRegister(ctx context.Context, email, password string, archetypeID, tierID int, envName string) error {
	if email == "" {
		email = os.Getenv("BREATE_EMAIL")
	}
	if password == "" {
		password = os.Getenv("BREATE_PASSWORD")
	}

	apiClient, env, err := newAPIClient(envName)
	if err != nil {
		return err
	}
	manager := session.NewManager(apiClient, auth.NewKeyringStore(env.BaseURL))

	interactive := term.IsTerminal(int(syscall.Stdin))

	if password == "" && interactive {
		fmt.Print("Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(bytePassword)
		fmt.Println()
	}

	// Archetype and tier are required selections; offer the backend's lists
	// when they were not passed as flags.
	if archetypeID == 0 && interactive {
		archetypes, err := apiClient.ListArchetypes(ctx)
		if err != nil {
			return fmt.Errorf("failed to load archetypes: %w", err)
		}
		archetypeID, err = promptSelection("Select an archetype", archetypeLabels(archetypes), archetypeIDs(archetypes))
		if err != nil {
			return err
		}
	}
	if tierID == 0 && interactive {
		tiers, err := apiClient.ListTiers(ctx)
		if err != nil {
			return fmt.Errorf("failed to load tiers: %w", err)
		}
		tierID, err = promptSelection("Select a tier", tierLabels(tiers), tierIDs(tiers))
		if err != nil {
			return err
		}
	}

	form := registerForm{
		Email:       email,
		Password:    password,
		ArchetypeID: archetypeID,
		TierID:      tierID,
	}
	if err := validator.New().Struct(form); err != nil {
		return registerValidationError(err)
	}

	fmt.Printf("Creating account on %s (%s)...\n", env.Name, env.BaseURL)

	result := manager.Register(ctx, email, password, archetypeID, tierID)
	if !result.Success {
		return fmt.Errorf("registration failed: %s", result.Error)
	}

	user := manager.CurrentUser()
	fmt.Println("✓ Account created!")
	fmt.Printf("  User: %s (%s)\n", user.Username, user.Email)

	return nil
}

func promptSelection(label string, labels []string, ids []int) (int, error) {
	prompt := promptui.Select{
		Label: label,
		Items: labels,
		Size:  10,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("selection cancelled: %w", err)
	}
	return ids[index], nil
}

func archetypeLabels(archetypes []client.Archetype) []string {
	labels := make([]string, len(archetypes))
	for i, a := range archetypes {
		labels[i] = a.Name
	}
	return labels
}

func archetypeIDs(archetypes []client.Archetype) []int {
	ids := make([]int, len(archetypes))
	for i, a := range archetypes {
		ids[i] = a.ID
	}
	return ids
}

func tierLabels(tiers []client.Tier) []string {
	labels := make([]string, len(tiers))
	for i, t := range tiers {
		labels[i] = t.Name
	}
	return labels
}

func tierIDs(tiers []client.Tier) []int {
	ids := make([]int, len(tiers))
	for i, t := range tiers {
		ids[i] = t.ID
	}
	return ids
}

// registerValidationError maps validator failures to the messages the signup
// form shows
func registerValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	for _, fe := range verrs {
		switch fe.Field() {
		case "Email":
			if fe.Tag() == "email" {
				return fmt.Errorf("'%s' is not a valid email address", fe.Value())
			}
			return fmt.Errorf("email is required (use --email flag or BREATE_EMAIL env var)")
		case "Password":
			if fe.Tag() == "min" {
				return fmt.Errorf("password must be at least 8 characters")
			}
			return fmt.Errorf("password is required (use --password flag or BREATE_PASSWORD env var)")
		case "ArchetypeID", "TierID":
			return fmt.Errorf("please select an archetype and tier (use --archetype and --tier flags)")
		}
	}
	return err
}
