package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/cat-tracker/internal/domain"
	"github.com/cat-tracker/internal/domain/repository"
	apperrors "github.com/cat-tracker/internal/pkg/errors"
)

// SQLSTATE for CHECK constraint violations; the source column is validated
// only here, at the storage layer.
const checkViolationCode = "23514"

const sightingColumns = `id, lat, lng, address, description, cat_name, image_url, source, spotted_at, created_at, updated_at`

// isCheckViolation recognizes a CHECK violation from either postgres driver:
// pgx (production) and lib/pq (test database).
func isCheckViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == checkViolationCode
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == checkViolationCode
	}
	return false
}

type sightingRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewSightingRepository(db *DB, logger *zap.Logger) repository.SightingRepository {
	return &sightingRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sightingRepository) Create(ctx context.Context, s *domain.Sighting) (*domain.Sighting, error) {
	query := `
		INSERT INTO cat_sightings (lat, lng, address, description, cat_name, image_url, source, spotted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + sightingColumns

	var row domain.Sighting
	err := r.db.GetContext(ctx, &row, query,
		s.Lat, s.Lng, s.Address, s.Description, s.CatName, s.ImageURL, s.Source, s.SpottedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			r.logger.Warn("Rejected sighting with invalid source",
				zap.String("source", s.Source),
			)
			return nil, apperrors.ErrInvalidSource
		}
		r.logger.Error("Failed to insert sighting", zap.Error(err))
		return nil, fmt.Errorf("insert sighting: %w", err)
	}

	return &row, nil
}

func (r *sightingRepository) List(ctx context.Context) ([]domain.Sighting, error) {
	query := `
		SELECT ` + sightingColumns + `
		FROM cat_sightings
		ORDER BY created_at DESC`

	sightings := make([]domain.Sighting, 0)
	if err := r.db.SelectContext(ctx, &sightings, query); err != nil {
		r.logger.Error("Failed to list sightings", zap.Error(err))
		return nil, fmt.Errorf("list sightings: %w", err)
	}

	return sightings, nil
}

func (r *sightingRepository) GetByID(ctx context.Context, id int64) (*domain.Sighting, error) {
	query := `
		SELECT ` + sightingColumns + `
		FROM cat_sightings
		WHERE id = $1`

	var row domain.Sighting
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrSightingNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get sighting", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("get sighting %d: %w", id, err)
	}

	return &row, nil
}

func (r *sightingRepository) ListRange(ctx context.Context, start, end time.Time) ([]domain.Sighting, error) {
	query := `
		SELECT ` + sightingColumns + `
		FROM cat_sightings
		WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at DESC`

	sightings := make([]domain.Sighting, 0)
	if err := r.db.SelectContext(ctx, &sightings, query, start, end); err != nil {
		r.logger.Error("Failed to list sightings in range", zap.Error(err))
		return nil, fmt.Errorf("list sightings in range: %w", err)
	}

	return sightings, nil
}

func (r *sightingRepository) CountBySource(ctx context.Context, start, end time.Time) (int, map[string]int, error) {
	query := `
		SELECT COALESCE(source, 'unknown') AS source, COUNT(*) AS count
		FROM cat_sightings
		WHERE created_at BETWEEN $1 AND $2
		GROUP BY COALESCE(source, 'unknown')`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		r.logger.Error("Failed to count sightings by source", zap.Error(err))
		return 0, nil, fmt.Errorf("count by source: %w", err)
	}
	defer rows.Close()

	total := 0
	bySource := make(map[string]int)
	for rows.Next() {
		var source string
		var count int
		if err := rows.Scan(&source, &count); err != nil {
			return 0, nil, fmt.Errorf("scan source count: %w", err)
		}
		bySource[source] = count
		total += count
	}
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("source count rows error: %w", err)
	}

	return total, bySource, nil
}

func (r *sightingRepository) CountPerDay(ctx context.Context, start, end time.Time) ([]domain.DayCount, error) {
	// Day buckets are UTC so the report is stable regardless of server zone.
	query := `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*) AS count
		FROM cat_sightings
		WHERE created_at BETWEEN $1 AND $2
		GROUP BY day
		ORDER BY day ASC`

	perDay := make([]domain.DayCount, 0)
	if err := r.db.SelectContext(ctx, &perDay, query, start, end); err != nil {
		r.logger.Error("Failed to count sightings per day", zap.Error(err))
		return nil, fmt.Errorf("count per day: %w", err)
	}

	return perDay, nil
}
