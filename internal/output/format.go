// Package output formats command results as text, JSON, or YAML, with
// optional jq-style and JSONPath post-processing.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is human-readable key-value format (default).
	FormatText Format = "text"
	// FormatJSON is pretty-printed JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatText.
// Returns error if the format is invalid.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --output format (expected text|json|yaml)")
	}
}

// Printer handles output formatting across different formats.
type Printer struct {
	w        io.Writer
	format   Format
	query    string
	jsonPath string
}

// NewPrinter creates a new Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		w:      w,
		format: format,
	}
}

// WithQuery sets a jq filter applied before rendering.
func (p *Printer) WithQuery(query string) *Printer {
	p.query = query
	return p
}

// WithJSONPath sets a JSONPath expression applied before rendering.
func (p *Printer) WithJSONPath(path string) *Printer {
	p.jsonPath = path
	return p
}

// Print outputs data in the configured format, applying the jq filter
// and JSONPath extraction first when configured.
func (p *Printer) Print(data interface{}) error {
	if data == nil {
		return nil
	}

	normalized, err := normalizeToInterface(data)
	if err != nil {
		return err
	}

	if p.query != "" {
		filtered, err := runQuery(p.query, normalized)
		if err != nil {
			return err
		}
		// A single-result query renders as that result, not a 1-list.
		if len(filtered) == 1 {
			normalized = filtered[0]
		} else {
			normalized = filtered
		}
	}

	if p.jsonPath != "" {
		extracted, err := applyJSONPath(normalized, p.jsonPath)
		if err != nil {
			return err
		}
		normalized = extracted
	}

	switch p.format {
	case FormatJSON:
		return p.printJSON(normalized)
	case FormatYAML:
		return p.printYAML(normalized)
	case FormatText:
		return p.printText(normalized)
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

// printJSON outputs data as pretty-printed JSON.
func (p *Printer) printJSON(data interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// printYAML outputs data as YAML.
func (p *Printer) printYAML(data interface{}) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

// printText outputs data as human-readable key-value text. Maps render
// as sorted "key: value" lines; scalars render bare.
func (p *Printer) printText(data interface{}) error {
	switch v := data.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if _, err := fmt.Fprintf(p.w, "%s: %s\n", key, textScalar(v[key])); err != nil {
				return err
			}
		}
		return nil
	case []interface{}:
		for _, item := range v {
			if err := p.printText(item); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintln(p.w, textScalar(v))
		return err
	}
}

// textScalar renders a value on one line, falling back to compact JSON
// for nested structures.
func textScalar(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	case map[string]interface{}, []interface{}:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// normalizeToInterface converts typed values into plain maps/slices via
// a JSON round trip so jq and JSONPath see wire-shaped data.
func normalizeToInterface(data interface{}) (interface{}, error) {
	switch data.(type) {
	case map[string]interface{}, []interface{}, string, float64, bool, nil:
		return data, nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize output: %w", err)
	}

	var normalized interface{}
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, fmt.Errorf("failed to normalize output: %w", err)
	}
	return normalized, nil
}
