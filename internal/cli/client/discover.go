package client

import (
	"context"
	"net/url"
	"strconv"
)

// UserFilters narrows user discovery
type UserFilters struct {
	Username    string
	ArchetypeID int
	TierID      int
}

// ProjectFilters narrows project discovery
type ProjectFilters struct {
	Archetype string
	Region    string
	Coalition string
}

// DiscoverUsers searches users by username, archetype and tier
func (c *Client) DiscoverUsers(ctx context.Context, filters UserFilters) ([]User, error) {
	params := url.Values{}
	if filters.Username != "" {
		params.Set("username", filters.Username)
	}
	if filters.ArchetypeID != 0 {
		params.Set("archetype_id", strconv.Itoa(filters.ArchetypeID))
	}
	if filters.TierID != 0 {
		params.Set("tier_id", strconv.Itoa(filters.TierID))
	}

	path := "/discover/users"
	if query := params.Encode(); query != "" {
		path += "?" + query
	}

	var users []User
	if err := c.Get(ctx, path, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DiscoverProjects searches projects by needed archetype, region and coalition
func (c *Client) DiscoverProjects(ctx context.Context, filters ProjectFilters) ([]Project, error) {
	params := url.Values{}
	if filters.Archetype != "" {
		params.Set("archetype", filters.Archetype)
	}
	if filters.Region != "" {
		params.Set("region", filters.Region)
	}
	if filters.Coalition != "" {
		params.Set("coalition", filters.Coalition)
	}

	path := "/discover/projects"
	if query := params.Encode(); query != "" {
		path += "?" + query
	}

	var projects []Project
	if err := c.Get(ctx, path, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}
