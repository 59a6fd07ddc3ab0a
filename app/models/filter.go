package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFilter is returned when a filter name is not one of All, Active, Completed.
var ErrUnknownFilter = errors.New("unknown filter")

// Filter selects which tasks are visible.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// Valid reports whether f is one of the enumerated filters.
func (f Filter) Valid() bool {
	return f >= FilterAll && f <= FilterCompleted
}

// Normalize returns f, or FilterAll when f is out of range.
func (f Filter) Normalize() Filter {
	if !f.Valid() {
		return FilterAll
	}
	return f
}

func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Match reports whether a task is visible under f.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// ParseFilter parses a filter name case-insensitively.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return FilterAll, nil
	case "active":
		return FilterActive, nil
	case "completed":
		return FilterCompleted, nil
	}
	return FilterAll, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// MarshalText encodes the filter by name.
func (f Filter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText decodes a filter name; unknown names are rejected.
func (f *Filter) UnmarshalText(text []byte) error {
	parsed, err := ParseFilter(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
