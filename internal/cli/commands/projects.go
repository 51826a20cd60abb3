package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/breate-dev/breate/internal/cli/client"
	"github.com/breate-dev/breate/internal/cli/config"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

// projectLister is the slice of the API client the list command needs,
// kept narrow so tests can inject a mock
type projectLister interface {
	ListProjects(ctx context.Context) ([]client.Project, error)
}

// NewProjectsCmd creates the projects command group
func NewProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage your collaboration projects",
	}

	cmd.AddCommand(newProjectsListCmd())
	cmd.AddCommand(newProjectsCreateCmd())
	cmd.AddCommand(newProjectsGetCmd())
	cmd.AddCommand(newProjectsStatusCmd())
	cmd.AddCommand(newProjectsDeleteCmd())

	return cmd
}

type projectsListOptions struct {
	client projectLister
	env    *config.Environment
	out    io.Writer
}

// ProjectsListOption overrides a dependency of the list command (used by tests)
type ProjectsListOption func(*projectsListOptions)

func WithProjectsClient(c projectLister) ProjectsListOption {
	return func(o *projectsListOptions) { o.client = c }
}

func WithProjectsEnvironment(env *config.Environment) ProjectsListOption {
	return func(o *projectsListOptions) { o.env = env }
}

func WithProjectsOutput(w io.Writer) ProjectsListOption {
	return func(o *projectsListOptions) { o.out = w }
}

func newProjectsListCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List your projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsList(cmd.Context(), envName)
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func runProjectsList(ctx context.Context, envName string, opts ...ProjectsListOption) error {
	options := projectsListOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&options)
	}

	if options.client == nil {
		apiClient, env, err := newAPIClient(envName)
		if err != nil {
			return err
		}
		options.client = apiClient
		options.env = env
	}

	projects, err := options.client.ListProjects(ctx)
	if err != nil {
		return friendlyError(err)
	}

	if len(projects) == 0 {
		fmt.Fprintln(options.out, "No projects found.")
		fmt.Fprintln(options.out, "\nPost one with: breate projects create --title <title> --objective <objective>")
		return nil
	}

	if options.env != nil {
		fmt.Fprintf(options.out, "Projects on %s (%s):\n\n", options.env.Name, options.env.BaseURL)
	}

	w := tabwriter.NewWriter(options.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tSTATUS\tREGION")
	fmt.Fprintln(w, "──\t─────\t────\t──────\t──────")

	for _, project := range projects {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			project.ID,
			project.Title,
			project.ProjectType,
			project.Status,
			project.Region,
		)
	}

	w.Flush()

	return nil
}

// projectForm is validated client-side before submission
type projectForm struct {
	Title       string `validate:"required"`
	Objective   string `validate:"required"`
	ProjectType string `validate:"required"`
}

func newProjectsCreateCmd() *cobra.Command {
	var envName string
	var req struct {
		title, objective, projectType, openRoles, timeline, region string
		neededArchetypes, coalitionTags                            string
	}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Post a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := projectForm{Title: req.title, Objective: req.objective, ProjectType: req.projectType}
			if err := validator.New().Struct(form); err != nil {
				return fmt.Errorf("title, objective and type are required")
			}

			apiClient, _, err := newAPIClient(envName)
			if err != nil {
				return err
			}

			project, err := apiClient.CreateProject(cmd.Context(), client.CreateProjectRequest{
				Title:            req.title,
				Objective:        req.objective,
				ProjectType:      req.projectType,
				NeededArchetypes: splitList(req.neededArchetypes),
				OpenRoles:        req.openRoles,
				Timeline:         req.timeline,
				Region:           req.region,
				CoalitionTags:    splitList(req.coalitionTags),
			})
			if err != nil {
				return friendlyError(err)
			}

			fmt.Printf("✓ Project created (id %d): %s\n", project.ID, project.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.title, "title", "", "Project title")
	cmd.Flags().StringVar(&req.objective, "objective", "", "What the project sets out to do")
	cmd.Flags().StringVar(&req.projectType, "type", "", "Project type")
	cmd.Flags().StringVar(&req.neededArchetypes, "archetypes", "", "Comma-separated archetypes needed")
	cmd.Flags().StringVar(&req.openRoles, "open-roles", "", "Open roles")
	cmd.Flags().StringVar(&req.timeline, "timeline", "", "Timeline")
	cmd.Flags().StringVar(&req.region, "region", "", "Region")
	cmd.Flags().StringVar(&req.coalitionTags, "coalition-tags", "", "Comma-separated coalition tags")
	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func newProjectsGetCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "get <project-id>",
		Short: "Show a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id '%s'", args[0])
			}

			apiClient, _, err := newAPIClient(envName)
			if err != nil {
				return err
			}

			project, err := apiClient.GetProject(cmd.Context(), projectID)
			if err != nil {
				return friendlyError(err)
			}

			printProject(os.Stdout, project)
			return nil
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func newProjectsStatusCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "status <project-id> <status>",
		Short: "Update a project's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id '%s'", args[0])
			}

			apiClient, _, err := newAPIClient(envName)
			if err != nil {
				return err
			}

			project, err := apiClient.UpdateProjectStatus(cmd.Context(), projectID, args[1])
			if err != nil {
				return friendlyError(err)
			}

			fmt.Printf("✓ Project '%s' is now %s\n", project.Title, project.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func newProjectsDeleteCmd() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project id '%s'", args[0])
			}

			apiClient, _, err := newAPIClient(envName)
			if err != nil {
				return err
			}

			if err := apiClient.DeleteProject(cmd.Context(), projectID); err != nil {
				return friendlyError(err)
			}

			fmt.Printf("✓ Project %d deleted\n", projectID)
			return nil
		},
	}

	cmd.Flags().StringVar(&envName, "env", "", "Environment name (uses the selected environment if not specified)")

	return cmd
}

func printProject(w io.Writer, project *client.Project) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Title:\t%s\n", project.Title)
	fmt.Fprintf(tw, "Objective:\t%s\n", project.Objective)
	fmt.Fprintf(tw, "Type:\t%s\n", project.ProjectType)
	fmt.Fprintf(tw, "Status:\t%s\n", project.Status)
	if project.Region != "" {
		fmt.Fprintf(tw, "Region:\t%s\n", project.Region)
	}
	if project.Timeline != "" {
		fmt.Fprintf(tw, "Timeline:\t%s\n", project.Timeline)
	}
	if project.OpenRoles != "" {
		fmt.Fprintf(tw, "Open roles:\t%s\n", project.OpenRoles)
	}
	if len(project.NeededArchetypes) > 0 {
		fmt.Fprintf(tw, "Needs:\t%s\n", strings.Join(project.NeededArchetypes, ", "))
	}
	if len(project.CoalitionTags) > 0 {
		fmt.Fprintf(tw, "Coalitions:\t%s\n", strings.Join(project.CoalitionTags, ", "))
	}
	tw.Flush()
}

// splitList splits a comma-separated flag value into trimmed entries
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
