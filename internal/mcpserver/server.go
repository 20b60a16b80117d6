// Package mcpserver exposes the database-query and page-update
// operations as MCP tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/salmonumbrella/notion-query/internal/notion"
)

// NotionClient is the subset of the Notion client the tools need.
type NotionClient interface {
	QueryDatabase(ctx context.Context, databaseID string, filter notion.Filter, sorter notion.Sorter) (*notion.QueryResult, error)
	UpdatePage(ctx context.Context, pageID string, properties []notion.PageProperty) (*notion.Page, error)
}

// Server wraps an MCP server bound to a Notion client.
type Server struct {
	client NotionClient
	mcp    *server.MCPServer
}

// New builds an MCP server exposing the query_database and update_page tools.
func New(client NotionClient, version string) *Server {
	s := &Server{
		client: client,
		mcp:    server.NewMCPServer("notion-query", version, server.WithToolCapabilities(false)),
	}

	queryTool := mcp.NewTool("query_database",
		mcp.WithDescription("Query a Notion database with an optional equality filter and single-property sort"),
		mcp.WithString("database_id", mcp.Required(), mcp.Description("Notion database ID")),
		mcp.WithString("filter_property", mcp.Description("Property name to filter on")),
		mcp.WithString("equals", mcp.Description("Text value the property must equal")),
		mcp.WithString("equals_date", mcp.Description("Date (YYYY-MM-DD) the property must equal; overrides equals")),
		mcp.WithString("sort_property", mcp.Description("Property name to sort by")),
		mcp.WithString("direction", mcp.Description("Sort direction: ascending or descending")),
	)
	s.mcp.AddTool(queryTool, s.handleQueryDatabase)

	updateTool := mcp.NewTool("update_page",
		mcp.WithDescription("Update properties of a Notion page"),
		mcp.WithString("page_id", mcp.Required(), mcp.Description("Notion page ID")),
		mcp.WithObject("properties", mcp.Required(), mcp.Description("Map of property name to new value (string, number, or YYYY-MM-DD date)")),
	)
	s.mcp.AddTool(updateTool, s.handleUpdatePage)

	return s
}

// ServeStdio blocks serving MCP requests on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) handleQueryDatabase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	databaseID, err := request.RequireString("database_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var filter notion.Filter
	if property := request.GetString("filter_property", ""); property != "" {
		value, err := filterValue(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		filter, err = notion.EqualFilter(property, value)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	var sorter notion.Sorter
	if property := request.GetString("sort_property", ""); property != "" {
		direction := notion.SortDirection(request.GetString("direction", string(notion.Ascending)))
		sorter, err = notion.SingleSorter(property, direction)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	result, err := s.client.QueryDatabase(ctx, databaseID, filter, sorter)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(result)
}

func (s *Server) handleUpdatePage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageID, err := request.RequireString("page_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw := request.GetArguments()["properties"]
	values, ok := raw.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("properties must be an object"), nil
	}

	properties := make([]notion.PageProperty, 0, len(values))
	for name, value := range values {
		property, err := pageProperty(name, value)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		properties = append(properties, property)
	}

	page, err := s.client.UpdatePage(ctx, pageID, properties)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(page)
}

// filterValue picks the date variant when equals_date is set, otherwise text.
func filterValue(request mcp.CallToolRequest) (notion.FilterValue, error) {
	if dateStr := request.GetString("equals_date", ""); dateStr != "" {
		t, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return notion.FilterValue{}, fmt.Errorf("equals_date must be YYYY-MM-DD: %v", err)
		}
		return notion.DateOf(t), nil
	}
	return notion.Text(request.GetString("equals", "")), nil
}

// pageProperty converts a JSON argument value into a typed page property.
func pageProperty(name string, value interface{}) (notion.PageProperty, error) {
	switch v := value.(type) {
	case string:
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return notion.PageProperty{Name: name, Value: notion.DateValue(t)}, nil
		}
		return notion.PageProperty{Name: name, Value: notion.TextValue(v)}, nil
	case float64:
		return notion.PageProperty{Name: name, Value: notion.NumberValue(v)}, nil
	default:
		return notion.PageProperty{}, fmt.Errorf("property %q must be a string or number", name)
	}
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
