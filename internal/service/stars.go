package service

import (
	"context"
	"log/slog"
	"time"

	"stargaze/internal/domain"
)

// cacheTTL bounds how long a saved list is served without refetching.
// The backend exposes no change timestamps, so freshness is age-based.
const cacheTTL = 5 * time.Minute

// StarCache persists the last successful fetch between runs
type StarCache interface {
	GetStars() ([]domain.Star, bool)
	SaveStars(stars []domain.Star, fetchedAt time.Time) error
	FetchedAt() (time.Time, bool)
	Invalidate()
}

// StarService handles star list loading with caching
type StarService struct {
	repo   domain.StarRepository
	cache  StarCache
	logger *slog.Logger

	now func() time.Time
}

// NewStarService creates a new star service
func NewStarService(repo domain.StarRepository, cache StarCache, logger *slog.Logger) *StarService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StarService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// GetStars returns the star list, serving the cached copy when it is
// fresh enough and fetching from the backend otherwise.
func (s *StarService) GetStars(ctx context.Context) ([]domain.Star, error) {
	if stars, ok := s.cache.GetStars(); ok {
		if ts, tsOK := s.cache.FetchedAt(); tsOK && s.now().Sub(ts) < cacheTTL {
			s.logger.Debug("cache hit", "count", len(stars), "fetchedAt", ts)
			return stars, nil
		}
	}
	return s.fetch(ctx)
}

// Refresh bypasses the cache and fetches from the backend
func (s *StarService) Refresh(ctx context.Context) ([]domain.Star, error) {
	return s.fetch(ctx)
}

// CachedStars returns the last saved list regardless of age, or nil.
// Used to keep something on screen next to an error status.
func (s *StarService) CachedStars() []domain.Star {
	stars, ok := s.cache.GetStars()
	if !ok {
		return nil
	}
	return stars
}

// InvalidateCache drops the saved list
func (s *StarService) InvalidateCache() {
	s.cache.Invalidate()
}

func (s *StarService) fetch(ctx context.Context) ([]domain.Star, error) {
	stars, err := s.repo.GetStars(ctx)
	if err != nil {
		s.logger.Error("failed to get stars", "error", err)
		return nil, err
	}

	if err := s.cache.SaveStars(stars, s.now()); err != nil {
		// Cache failures never fail the load
		s.logger.Warn("failed to save stars to cache", "error", err)
	}

	s.logger.Info("loaded stars", "count", len(stars))
	return stars, nil
}
