package notion

import (
	"context"
	"fmt"
)

// QueryResult represents the result of a database query.
// The results are pages from the database.
type QueryResult struct {
	Object     string  `json:"object"`
	Results    []Page  `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
	Type       string  `json:"type,omitempty"`
}

// QueryDatabase queries a database with an optional equality filter and
// an optional single-property sorter. Either fragment may be nil.
//
// The request body is the flat key-wise union of the two fragments.
// Fragments sharing a top-level key must not be passed together; one
// would silently win. See: https://developers.notion.com/reference/post-database-query
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, filter Filter, sorter Sorter) (*QueryResult, error) {
	if databaseID == "" {
		return nil, &ValidationError{Field: "database_id", Message: "cannot be empty"}
	}

	payload := make(map[string]interface{}, len(filter)+len(sorter))
	for key, value := range filter {
		payload[key] = value
	}
	for key, value := range sorter {
		payload[key] = value
	}

	route := fmt.Sprintf("databases/%s/query", databaseID)

	var result QueryResult
	if err := c.doPost(ctx, route, payload, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
