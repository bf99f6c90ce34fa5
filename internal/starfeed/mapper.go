package starfeed

import "stargaze/internal/domain"

// MapStars converts API DTOs to domain stars, preserving feed order
func MapStars(dtos []starDTO) []domain.Star {
	stars := make([]domain.Star, len(dtos))
	for i, d := range dtos {
		stars[i] = domain.Star{
			ID:          string(d.ID),
			Name:        d.Name,
			URL:         d.URL,
			Description: d.Description,
		}
	}
	return stars
}
