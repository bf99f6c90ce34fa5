package tui

import "stargaze/internal/domain"

// Message types for the TUI

// ErrMsg represents a failed load cycle. Seq identifies the cycle so
// that a late failure from an abandoned cycle cannot reopen a state
// that already resolved.
type ErrMsg struct {
	Err     error
	Context string
	Seq     int
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// StarsLoadedMsg signals that the star list has been loaded
type StarsLoadedMsg struct {
	Stars []domain.Star
	Seq   int
}

// LinkOpenedMsg signals that the selected star's URL was handed to the
// browser
type LinkOpenedMsg struct {
	Name string
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// AuditCompletedMsg reports the development render audit result
type AuditCompletedMsg struct {
	Findings int
}
