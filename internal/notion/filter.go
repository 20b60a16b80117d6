package notion

import (
	"log/slog"
	"time"
)

type filterKind int

const (
	filterKindNone filterKind = iota
	filterKindText
	filterKindDate
)

// FilterValue is the value side of an equality filter. The Notion API
// keys the comparison by property kind ("rich_text", "date"), so the
// value carries its kind rather than relying on a database schema.
// The zero value is absent and rejected by EqualFilter.
type FilterValue struct {
	kind filterKind
	text string
	date time.Time
}

// Text builds a rich-text filter value.
func Text(s string) FilterValue {
	return FilterValue{kind: filterKindText, text: s}
}

// DateOf builds a date filter value. Only the calendar date is used;
// the time of day is discarded when the fragment is rendered.
func DateOf(t time.Time) FilterValue {
	return FilterValue{kind: filterKindDate, date: t}
}

// Filter is a request-body fragment of the form
// {"filter": {"property": ..., <kind>: {"equals": ...}}}.
type Filter map[string]interface{}

// EqualFilter builds an equality filter for one property. Text values
// compare against the property's rich text; date values compare against
// the property's calendar date in ISO-8601 form.
func EqualFilter(property string, value FilterValue) (Filter, error) {
	slog.Debug("building equal filter", "property", property)

	if property == "" {
		return nil, &ValidationError{Field: "property", Message: "cannot be empty"}
	}

	inner := map[string]interface{}{"property": property}

	switch value.kind {
	case filterKindDate:
		inner["date"] = map[string]interface{}{"equals": value.date.Format("2006-01-02")}
	case filterKindText:
		if value.text == "" {
			return nil, &ValidationError{Field: "value", Message: "cannot be empty"}
		}
		inner["rich_text"] = map[string]interface{}{"equals": value.text}
	default:
		return nil, &ValidationError{Field: "value", Message: "cannot be empty"}
	}

	filter := Filter{"filter": inner}

	slog.Debug("built equal filter", "filter", filter)
	return filter, nil
}
