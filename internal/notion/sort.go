package notion

import "log/slog"

// SortDirection is the direction of a database query sort.
type SortDirection string

const (
	// Ascending sorts from smallest to largest.
	Ascending SortDirection = "ascending"
	// Descending sorts from largest to smallest.
	Descending SortDirection = "descending"
)

// String returns the canonical wire form of the direction.
func (d SortDirection) String() string {
	return string(d)
}

// Valid reports whether d is a member of the enumeration.
func (d SortDirection) Valid() bool {
	return d == Ascending || d == Descending
}

// Sorter is a request-body fragment of the form
// {"sorts": [{"property": ..., "direction": ...}]}.
type Sorter map[string]interface{}

// SingleSorter builds a sorter fragment for one property.
// The direction is checked for enumeration membership before the
// property name is checked for emptiness.
func SingleSorter(property string, direction SortDirection) (Sorter, error) {
	slog.Debug("building sorter", "property", property, "direction", direction.String())

	if !direction.Valid() {
		return nil, &DirectionError{Direction: direction}
	}
	if property == "" {
		return nil, &ValidationError{Field: "property", Message: "cannot be empty"}
	}

	sorter := Sorter{
		"sorts": []map[string]interface{}{
			{
				"property":  property,
				"direction": direction.String(),
			},
		},
	}

	slog.Debug("built sorter", "sorter", sorter)
	return sorter, nil
}
