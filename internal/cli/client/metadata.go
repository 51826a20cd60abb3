package client

import "context"

// Archetype is a user-selected category describing a collaborator's role
type Archetype struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Tier is a user-selected experience/commitment level
type Tier struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListArchetypes returns all archetypes
func (c *Client) ListArchetypes(ctx context.Context) ([]Archetype, error) {
	var archetypes []Archetype
	if err := c.Get(ctx, "/archetypes/", &archetypes); err != nil {
		return nil, err
	}
	return archetypes, nil
}

// ListTiers returns all tiers
func (c *Client) ListTiers(ctx context.Context) ([]Tier, error) {
	var tiers []Tier
	if err := c.Get(ctx, "/tiers/", &tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}
