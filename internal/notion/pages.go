package notion

import (
	"context"
	"fmt"
)

// Page represents a Notion page.
// See: https://developers.notion.com/reference/page
type Page struct {
	Object         string                 `json:"object"`
	ID             string                 `json:"id"`
	CreatedTime    string                 `json:"created_time"`
	LastEditedTime string                 `json:"last_edited_time"`
	Parent         map[string]interface{} `json:"parent,omitempty"`
	Archived       bool                   `json:"archived"`
	Properties     map[string]interface{} `json:"properties"`
	URL            string                 `json:"url,omitempty"`
}

// UpdatePage writes the given properties to a page. The page ID is not
// validated locally; a malformed or unknown ID surfaces as the server's
// 400 or 404. See: https://developers.notion.com/reference/patch-page
func (c *Client) UpdatePage(ctx context.Context, pageID string, properties []PageProperty) (*Page, error) {
	payload, err := UpdateProperties(properties)
	if err != nil {
		return nil, err
	}

	route := fmt.Sprintf("pages/%s", pageID)

	var page Page
	if err := c.doPatch(ctx, route, payload, &page); err != nil {
		return nil, err
	}

	return &page, nil
}
