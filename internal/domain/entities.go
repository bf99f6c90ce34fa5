package domain

import "strings"

// Star represents a single starred repository as served by the feed
// backend. Items are immutable once received; the loader never patches
// individual fields after mapping.
type Star struct {
	ID          string // Backend-assigned unique identifier (stable per item)
	Name        string // Display label
	URL         string // Link target
	Description string // Free text, may be empty
}

// FilterValue returns the string used for fuzzy filtering.
func (s Star) FilterValue() string {
	if s.Description == "" {
		return s.Name
	}
	return s.Name + " " + s.Description
}

// SortTitle returns the key used when the list is sorted by name.
func (s Star) SortTitle() string {
	return strings.ToLower(s.Name)
}
