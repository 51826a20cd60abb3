package client

import (
	"context"
	"fmt"
)

// Profile represents a user's public profile
type Profile struct {
	ID              int      `json:"id"`
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	FullName        string   `json:"full_name"`
	Archetype       string   `json:"archetype"`
	Tier            string   `json:"tier"`
	Bio             string   `json:"bio"`
	About           string   `json:"about"`
	How             string   `json:"how"`
	Built           string   `json:"built"`
	Future          string   `json:"future"`
	NextBuild       string   `json:"next_build"`
	Affiliations    []string `json:"affiliations"`
	PortfolioLinks  []string `json:"portfolio_links"`
	PreferredThemes []string `json:"preferred_themes"`
}

// ProfileUpdate is the payload for a profile update; zero fields are omitted
type ProfileUpdate struct {
	Username        string   `json:"username,omitempty"`
	FullName        string   `json:"full_name,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	About           string   `json:"about,omitempty"`
	How             string   `json:"how,omitempty"`
	Built           string   `json:"built,omitempty"`
	Future          string   `json:"future,omitempty"`
	NextBuild       string   `json:"next_build,omitempty"`
	Affiliations    []string `json:"affiliations,omitempty"`
	PortfolioLinks  []string `json:"portfolio_links,omitempty"`
	PreferredThemes []string `json:"preferred_themes,omitempty"`
}

// GetProfile fetches a public profile by username
func (c *Client) GetProfile(ctx context.Context, username string) (*Profile, error) {
	var profile Profile
	if err := c.Get(ctx, fmt.Sprintf("/profile/%s", username), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile replaces the given user's profile fields
func (c *Client) UpdateProfile(ctx context.Context, username string, update ProfileUpdate) (*Profile, error) {
	var profile Profile
	if err := c.Put(ctx, fmt.Sprintf("/profile/%s", username), update, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
