package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cat-tracker/internal/domain"
	"github.com/cat-tracker/internal/usecase"
	"github.com/cat-tracker/internal/usecase/dto"
)

func TestResolveReportRange(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 45, 0, time.UTC)

	t.Run("both bounds absent: trailing 30-day window ending now", func(t *testing.T) {
		rng := usecase.ResolveReportRange("", "", now)

		assert.Equal(t, now, rng.End)
		assert.Equal(t, now.AddDate(0, 0, -29), rng.Start)
		// 29 full days between start and end, preserving end's time-of-day.
		assert.Equal(t, 29*24*time.Hour, rng.End.Sub(rng.Start))
	})

	t.Run("end expands to last instant of the day", func(t *testing.T) {
		rng := usecase.ResolveReportRange("", "2024-01-31", now)

		assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999999000, time.UTC), rng.End)
		assert.Equal(t, rng.End.AddDate(0, 0, -29), rng.Start)
	})

	t.Run("start expands to first instant of the day", func(t *testing.T) {
		rng := usecase.ResolveReportRange("2024-01-01", "2024-01-31", now)

		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), rng.Start)
		assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999999000, time.UTC), rng.End)
	})

	t.Run("unparseable bounds count as absent", func(t *testing.T) {
		rng := usecase.ResolveReportRange("last week", "soonish", now)

		assert.Equal(t, now, rng.End)
		assert.Equal(t, now.AddDate(0, 0, -29), rng.Start)
	})
}

func TestReportUseCase_Summary(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("aggregates totals, sources and days", func(t *testing.T) {
		mockRepo := &MockSightingRepository{}
		uc := usecase.NewReportUseCase(mockRepo, nil, logger, time.Minute)

		mockRepo.On("CountBySource", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return(3, map[string]int{"map": 2, "address": 1}, nil)
		mockRepo.On("CountPerDay", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]domain.DayCount{
				{Date: "2024-01-10", Count: 1},
				{Date: "2024-01-12", Count: 2},
			}, nil)

		summary, err := uc.Summary(ctx, dto.ReportRequest{Start: "2024-01-01", End: "2024-01-31"})
		require.NoError(t, err)

		assert.Equal(t, 3, summary.Total)
		assert.Equal(t, map[string]int{"map": 2, "address": 1}, summary.BySource)
		require.Len(t, summary.PerDay, 2)
		// Ascending by date, zero days omitted.
		assert.Equal(t, "2024-01-10", summary.PerDay[0].Date)
		assert.Equal(t, "2024-01-12", summary.PerDay[1].Date)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), summary.Start)
		assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999999000, time.UTC), summary.End)

		mockRepo.AssertExpectations(t)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		mockRepo := &MockSightingRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewReportUseCase(mockRepo, mockCache, logger, time.Minute)

		cached := domain.Summary{
			Total:    5,
			BySource: map[string]int{"map": 5},
			PerDay:   []domain.DayCount{{Date: "2024-01-02", Count: 5}},
		}
		encoded, err := json.Marshal(&cached)
		require.NoError(t, err)

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(encoded, nil)

		summary, err := uc.Summary(ctx, dto.ReportRequest{Start: "2024-01-01", End: "2024-01-31"})
		require.NoError(t, err)
		assert.Equal(t, 5, summary.Total)

		mockRepo.AssertNotCalled(t, "CountBySource")
		mockCache.AssertExpectations(t)
	})

	t.Run("cache failure falls through to the repository", func(t *testing.T) {
		mockRepo := &MockSightingRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewReportUseCase(mockRepo, mockCache, logger, time.Minute)

		mockCache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, errors.New("redis down"))
		mockCache.On("Set", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8"), time.Minute).
			Return(errors.New("redis down"))

		mockRepo.On("CountBySource", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return(1, map[string]int{"map": 1}, nil)
		mockRepo.On("CountPerDay", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]domain.DayCount{{Date: "2024-01-05", Count: 1}}, nil)

		summary, err := uc.Summary(ctx, dto.ReportRequest{Start: "2024-01-01", End: "2024-01-31"})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Total)

		mockRepo.AssertExpectations(t)
	})
}

func TestReportUseCase_ExportCSV(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	name := "Whiskers"
	spotted := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	rows := []domain.Sighting{
		{
			ID: 2, Lat: 40.7128, Lng: -74.0060,
			CatName: &name, Source: domain.SourceAddress,
			SpottedAt: &spotted,
			CreatedAt: time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC),
		},
		{
			ID: 1, Lat: 40.0, Lng: -73.0,
			Source:    domain.SourceMap,
			CreatedAt: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		},
	}

	mockRepo := &MockSightingRepository{}
	uc := usecase.NewReportUseCase(mockRepo, nil, logger, time.Minute)

	mockRepo.On("ListRange", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(rows, nil)

	export, err := uc.ExportCSV(ctx, dto.ReportRequest{Start: "2024-01-01", End: "2024-01-31"})
	require.NoError(t, err)
	assert.Equal(t, "cat_sightings_2024-01-01_2024-01-31.csv", export.Filename)

	records, err := csv.NewReader(bytes.NewReader(export.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, []string{
		"id", "lat", "lng", "address", "description", "cat_name",
		"image_url", "source", "spotted_at", "created_at", "updated_at",
	}, records[0])

	// Same descending created_at order as the list endpoint.
	assert.Equal(t, "2", records[1][0])
	assert.Equal(t, "Whiskers", records[1][5])
	assert.Equal(t, "2024-01-15T12:00:00Z", records[1][8])

	// Absent optionals render as empty strings.
	assert.Equal(t, "1", records[2][0])
	assert.Equal(t, "", records[2][3])
	assert.Equal(t, "", records[2][5])
	assert.Equal(t, "", records[2][8])

	mockRepo.AssertExpectations(t)
}
