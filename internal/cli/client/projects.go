package client

import (
	"context"
	"fmt"
)

// Project represents a posted collaboration project
type Project struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Objective        string   `json:"objective"`
	ProjectType      string   `json:"project_type"`
	Status           string   `json:"status"`
	Region           string   `json:"region"`
	Timeline         string   `json:"timeline"`
	OpenRoles        string   `json:"open_roles"`
	NeededArchetypes []string `json:"needed_archetypes"`
	CoalitionTags    []string `json:"coalition_tags"`
	PosterID         int      `json:"poster_id"`
	CreatedAt        string   `json:"created_at"`
}

// CreateProjectRequest is the project-creation payload
type CreateProjectRequest struct {
	Title            string   `json:"title"`
	Objective        string   `json:"objective"`
	ProjectType      string   `json:"project_type"`
	NeededArchetypes []string `json:"needed_archetypes"`
	OpenRoles        string   `json:"open_roles,omitempty"`
	Timeline         string   `json:"timeline,omitempty"`
	Region           string   `json:"region,omitempty"`
	CoalitionTags    []string `json:"coalition_tags,omitempty"`
}

// ListProjects returns the caller's projects
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.Get(ctx, "/projects/", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject posts a new project
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	var project Project
	if err := c.Post(ctx, "/projects/", req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProject fetches a single project by ID
func (c *Client) GetProject(ctx context.Context, projectID int) (*Project, error) {
	var project Project
	if err := c.Get(ctx, fmt.Sprintf("/projects/%d", projectID), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProjectStatus changes a project's status
func (c *Client) UpdateProjectStatus(ctx context.Context, projectID int, status string) (*Project, error) {
	body := struct {
		Status string `json:"status"`
	}{Status: status}

	var project Project
	if err := c.Patch(ctx, fmt.Sprintf("/projects/%d/status", projectID), body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project by ID
func (c *Client) DeleteProject(ctx context.Context, projectID int) error {
	return c.Delete(ctx, fmt.Sprintf("/projects/%d", projectID), nil)
}
