package cmdutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/salmonumbrella/notion-query/internal/notion"
)

// NormalizeNotionID normalizes a Notion ID or URL into a raw ID string.
func NormalizeNotionID(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", fmt.Errorf("id is required")
	}

	if looksLikeURL(trimmed) {
		id, err := notion.ExtractIDFromNotionURL(trimmed)
		if err != nil {
			return "", err
		}
		return id, nil
	}

	return trimmed, nil
}

func looksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// ParseProperty parses a "Name=Value" flag into a page property. The
// value type is inferred: integers and floats become numbers, ISO 8601
// dates and datetimes become dates, everything else is text.
func ParseProperty(raw string) (notion.PageProperty, error) {
	name, value, found := strings.Cut(raw, "=")
	if !found {
		return notion.PageProperty{}, fmt.Errorf("invalid property %q (expected Name=Value)", raw)
	}
	if name == "" {
		return notion.PageProperty{}, fmt.Errorf("invalid property %q (empty name)", raw)
	}

	return notion.PageProperty{Name: name, Value: parseValue(value)}, nil
}

// ParseProperties parses a list of "Name=Value" flags, preserving order
// so that repeated names keep last-write-wins semantics downstream.
func ParseProperties(raw []string) ([]notion.PageProperty, error) {
	properties := make([]notion.PageProperty, 0, len(raw))
	for _, entry := range raw {
		property, err := ParseProperty(entry)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}
	return properties, nil
}

func parseValue(value string) notion.PropertyValue {
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return notion.NumberValue(n)
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return notion.DateValue(t)
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return notion.DateValue(t)
	}
	return notion.TextValue(value)
}
