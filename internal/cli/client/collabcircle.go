package client

import "context"

// Collaboration is a peer-attested claim that two users worked together.
// It starts pending and becomes verified once the other party confirms.
type Collaboration struct {
	ID            int    `json:"id"`
	UserAUsername string `json:"user_a_username"`
	UserBUsername string `json:"user_b_username"`
	ProjectName   string `json:"project_name"`
	Status        string `json:"status"`
	VerifiedAt    string `json:"verified_at"`
	CreatedAt     string `json:"created_at"`
}

// CreateCollaboration logs a collaboration with another user. projectName
// may be empty.
func (c *Client) CreateCollaboration(ctx context.Context, collaboratorUsername, projectName string) (*Collaboration, error) {
	body := struct {
		CollaboratorUsername string `json:"collaborator_username"`
		ProjectName          string `json:"project_name,omitempty"`
	}{
		CollaboratorUsername: collaboratorUsername,
		ProjectName:          projectName,
	}

	var collab Collaboration
	if err := c.Post(ctx, "/collabcircle/", body, &collab); err != nil {
		return nil, err
	}
	return &collab, nil
}

// MyCollaborations returns the caller's collaboration timeline
func (c *Client) MyCollaborations(ctx context.Context) ([]Collaboration, error) {
	var collabs []Collaboration
	if err := c.Get(ctx, "/collabcircle/me", &collabs); err != nil {
		return nil, err
	}
	return collabs, nil
}
