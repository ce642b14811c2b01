package repository

import (
	"context"
	"time"

	"github.com/cat-tracker/internal/domain"
)

// SightingRepository is the persistence contract for cat sightings.
// Not-found is signalled with errors.ErrSightingNotFound, never a nil row.
type SightingRepository interface {
	Create(ctx context.Context, s *domain.Sighting) (*domain.Sighting, error)
	List(ctx context.Context) ([]domain.Sighting, error)
	GetByID(ctx context.Context, id int64) (*domain.Sighting, error)

	// Range queries filter on created_at, inclusive on both bounds.
	ListRange(ctx context.Context, start, end time.Time) ([]domain.Sighting, error)
	CountBySource(ctx context.Context, start, end time.Time) (int, map[string]int, error)
	CountPerDay(ctx context.Context, start, end time.Time) ([]domain.DayCount, error)
}
