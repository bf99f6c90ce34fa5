package domain

import "context"

// StarRepository provides access to the starred repository feed
type StarRepository interface {
	// GetStars returns all stars in the order the backend serves them
	GetStars(ctx context.Context) ([]Star, error)
}
