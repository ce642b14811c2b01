package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/cat-tracker/internal/domain"
	"github.com/cat-tracker/internal/domain/repository"
	"github.com/cat-tracker/internal/usecase/dto"
)

const reportDateLayout = "2006-01-02"

// csvHeader is the fixed export column order.
var csvHeader = []string{
	"id", "lat", "lng", "address", "description", "cat_name",
	"image_url", "source", "spotted_at", "created_at", "updated_at",
}

// ReportUseCase aggregates sightings over a created_at date range.
type ReportUseCase struct {
	sightingRepo repository.SightingRepository
	cacheRepo    repository.CacheRepository // nil when redis is not configured
	logger       *zap.Logger
	cacheTTL     time.Duration
}

func NewReportUseCase(
	sightingRepo repository.SightingRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ReportUseCase {
	return &ReportUseCase{
		sightingRepo: sightingRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
	}
}

// ResolveReportRange turns optional YYYY-MM-DD bounds into a concrete UTC
// window. A present end expands to the last instant of that day; a missing
// end is now. A present start expands to the first instant of that day; a
// missing start is a trailing 30-day window ending at end (end minus 29
// days, preserving end's time-of-day). Unparseable values count as absent.
func ResolveReportRange(start, end string, now time.Time) domain.ReportRange {
	var rng domain.ReportRange

	if d, err := time.ParseInLocation(reportDateLayout, end, time.UTC); err == nil {
		rng.End = time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999999000, time.UTC)
	} else {
		rng.End = now.UTC()
	}

	if d, err := time.ParseInLocation(reportDateLayout, start, time.UTC); err == nil {
		rng.Start = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		rng.Start = rng.End.AddDate(0, 0, -29)
	}

	return rng
}

// Summary computes total, per-source and per-day counts for the range,
// through the cache when one is configured. Cache failures are logged and
// never fail the request.
func (uc *ReportUseCase) Summary(ctx context.Context, req dto.ReportRequest) (*domain.Summary, error) {
	rng := ResolveReportRange(req.Start, req.End, time.Now())

	cacheKey := fmt.Sprintf("report:summary:%d:%d", rng.Start.Unix(), rng.End.Unix())
	if uc.cacheRepo != nil {
		if cached, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && cached != nil {
			var summary domain.Summary
			if err := json.Unmarshal(cached, &summary); err == nil {
				uc.logger.Debug("Summary served from cache", zap.String("key", cacheKey))
				return &summary, nil
			}
		} else if err != nil {
			uc.logger.Warn("Failed to read summary from cache", zap.Error(err))
		}
	}

	total, bySource, err := uc.sightingRepo.CountBySource(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("summary counts: %w", err)
	}

	perDay, err := uc.sightingRepo.CountPerDay(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("summary per-day counts: %w", err)
	}

	summary := &domain.Summary{
		Start:    rng.Start,
		End:      rng.End,
		Total:    total,
		BySource: bySource,
		PerDay:   perDay,
	}

	if uc.cacheRepo != nil {
		if encoded, err := json.Marshal(summary); err == nil {
			if err := uc.cacheRepo.Set(ctx, cacheKey, encoded, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache summary", zap.Error(err))
			}
		}
	}

	return summary, nil
}

// ExportCSV renders every sighting in the range as a CSV document, newest
// first, with the fixed 11-column header.
func (uc *ReportUseCase) ExportCSV(ctx context.Context, req dto.ReportRequest) (*dto.CSVExport, error) {
	rng := ResolveReportRange(req.Start, req.End, time.Now())

	sightings, err := uc.sightingRepo.ListRange(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("export range: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i := range sightings {
		if err := w.Write(csvRecord(&sightings[i])); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	uc.logger.Info("CSV export generated",
		zap.Int("rows", len(sightings)),
		zap.Time("start", rng.Start),
		zap.Time("end", rng.End),
	)

	return &dto.CSVExport{
		Filename: fmt.Sprintf("cat_sightings_%s_%s.csv",
			rng.Start.Format(reportDateLayout), rng.End.Format(reportDateLayout)),
		Data: buf.Bytes(),
	}, nil
}

func csvRecord(s *domain.Sighting) []string {
	return []string{
		strconv.FormatInt(s.ID, 10),
		strconv.FormatFloat(s.Lat, 'f', -1, 64),
		strconv.FormatFloat(s.Lng, 'f', -1, 64),
		stringOrEmpty(s.Address),
		stringOrEmpty(s.Description),
		stringOrEmpty(s.CatName),
		stringOrEmpty(s.ImageURL),
		s.Source,
		timeOrEmpty(s.SpottedAt),
		s.CreatedAt.UTC().Format(time.RFC3339),
		s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
