package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/cat-tracker/internal/domain"
)

type MockSightingRepository struct {
	mock.Mock
}

func (m *MockSightingRepository) Create(ctx context.Context, s *domain.Sighting) (*domain.Sighting, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sighting), args.Error(1)
}

func (m *MockSightingRepository) List(ctx context.Context) ([]domain.Sighting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sighting), args.Error(1)
}

func (m *MockSightingRepository) GetByID(ctx context.Context, id int64) (*domain.Sighting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sighting), args.Error(1)
}

func (m *MockSightingRepository) ListRange(ctx context.Context, start, end time.Time) ([]domain.Sighting, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sighting), args.Error(1)
}

func (m *MockSightingRepository) CountBySource(ctx context.Context, start, end time.Time) (int, map[string]int, error) {
	args := m.Called(ctx, start, end)
	var bySource map[string]int
	if args.Get(1) != nil {
		bySource = args.Get(1).(map[string]int)
	}
	return args.Int(0), bySource, args.Error(2)
}

func (m *MockSightingRepository) CountPerDay(ctx context.Context, start, end time.Time) ([]domain.DayCount, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DayCount), args.Error(1)
}

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
