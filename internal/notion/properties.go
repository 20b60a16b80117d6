package notion

import (
	"log/slog"
	"time"
)

type propertyKind int

const (
	propertyKindNone propertyKind = iota
	propertyKindText
	propertyKindNumber
	propertyKindDate
)

// PropertyValue is a scalar value written to a page property: text, a
// number, or a date. The zero value is absent.
type PropertyValue struct {
	kind   propertyKind
	text   string
	number float64
	date   time.Time
}

// TextValue builds a text property value.
func TextValue(s string) PropertyValue {
	return PropertyValue{kind: propertyKindText, text: s}
}

// NumberValue builds a numeric property value. Integers survive JSON
// encoding without a fractional part.
func NumberValue(n float64) PropertyValue {
	return PropertyValue{kind: propertyKindNumber, number: n}
}

// DateValue builds a date-time property value, rendered as RFC 3339.
func DateValue(t time.Time) PropertyValue {
	return PropertyValue{kind: propertyKindDate, date: t}
}

// Raw returns the JSON-encodable form of the value, or nil when absent.
func (v PropertyValue) Raw() interface{} {
	switch v.kind {
	case propertyKindText:
		return v.text
	case propertyKindNumber:
		return v.number
	case propertyKindDate:
		return v.date.Format(time.RFC3339)
	default:
		return nil
	}
}

// PageProperty is one page property to write: a name and its new value.
// It is a value type; two properties with the same name and value
// compare equal.
type PageProperty struct {
	Name  string
	Value PropertyValue
}

// UpdateProperties builds the {"properties": {...}} fragment for a page
// update from an ordered list of properties. Duplicate names collapse
// with last-write-wins.
func UpdateProperties(properties []PageProperty) (map[string]interface{}, error) {
	slog.Debug("building update properties", "count", len(properties))

	if len(properties) == 0 {
		return nil, &ValidationError{Field: "properties", Message: "cannot be empty"}
	}

	values := make(map[string]interface{}, len(properties))
	for _, property := range properties {
		values[property.Name] = property.Value.Raw()
	}

	fragment := map[string]interface{}{"properties": values}

	slog.Debug("built update properties", "properties", values)
	return fragment, nil
}
