package client

import (
	"context"
	"fmt"
	"net/url"
)

// Coalition represents a named real-world affiliation used as a discovery filter
type Coalition struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Focus       string `json:"focus"`
	Location    string `json:"location"`
	MemberCount int    `json:"member_count"`
	Members     []User `json:"members"`
	CreatedAt   string `json:"created_at"`
}

// CoalitionFilters narrows the coalition listing
type CoalitionFilters struct {
	Search string
	Region string
}

// ListCoalitions returns coalitions matching the given filters
func (c *Client) ListCoalitions(ctx context.Context, filters CoalitionFilters) ([]Coalition, error) {
	params := url.Values{}
	if filters.Search != "" {
		params.Set("search", filters.Search)
	}
	if filters.Region != "" {
		params.Set("region", filters.Region)
	}

	path := "/coalitions"
	if query := params.Encode(); query != "" {
		path += "?" + query
	}

	var coalitions []Coalition
	if err := c.Get(ctx, path, &coalitions); err != nil {
		return nil, err
	}
	return coalitions, nil
}

// GetCoalition fetches a coalition with its member list
func (c *Client) GetCoalition(ctx context.Context, coalitionID int) (*Coalition, error) {
	var coalition Coalition
	if err := c.Get(ctx, fmt.Sprintf("/coalitions/%d", coalitionID), &coalition); err != nil {
		return nil, err
	}
	return &coalition, nil
}
