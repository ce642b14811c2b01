package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cat-tracker/internal/domain"
	"github.com/cat-tracker/internal/domain/repository"
	"github.com/cat-tracker/internal/usecase/dto"
)

// SightingUseCase handles create/list/get business logic for sightings.
type SightingUseCase struct {
	sightingRepo repository.SightingRepository
	logger       *zap.Logger
}

func NewSightingUseCase(
	sightingRepo repository.SightingRepository,
	logger *zap.Logger,
) *SightingUseCase {
	return &SightingUseCase{
		sightingRepo: sightingRepo,
		logger:       logger,
	}
}

// Create persists one sighting. Source defaults to "map" and spotted_at to
// the current UTC time when the client did not provide them.
func (uc *SightingUseCase) Create(ctx context.Context, req dto.CreateSightingRequest) (*domain.Sighting, error) {
	req.Normalize()
	s := req.ToDomain()

	if s.Source == "" {
		s.Source = domain.SourceMap
	}
	if s.SpottedAt == nil {
		now := time.Now().UTC()
		s.SpottedAt = &now
	}

	row, err := uc.sightingRepo.Create(ctx, s)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Sighting created",
		zap.Int64("id", row.ID),
		zap.String("source", row.Source),
	)
	return row, nil
}

// List returns every sighting, newest first.
func (uc *SightingUseCase) List(ctx context.Context) ([]domain.Sighting, error) {
	sightings, err := uc.sightingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sightings: %w", err)
	}
	return sightings, nil
}

// GetByID returns one sighting or ErrSightingNotFound.
func (uc *SightingUseCase) GetByID(ctx context.Context, id int64) (*domain.Sighting, error) {
	return uc.sightingRepo.GetByID(ctx, id)
}
