package domain

import "time"

// Allowed sighting sources, enforced by a CHECK constraint in storage.
const (
	SourceMap     = "map"
	SourceAddress = "address"
)

// SourceUnknown is the aggregation bucket for rows without a source value.
const SourceUnknown = "unknown"

// Sighting is one reported cat observation.
type Sighting struct {
	ID          int64      `db:"id" json:"id"`
	Lat         float64    `db:"lat" json:"lat"`
	Lng         float64    `db:"lng" json:"lng"`
	Address     *string    `db:"address" json:"address"`
	Description *string    `db:"description" json:"description"`
	CatName     *string    `db:"cat_name" json:"cat_name"`
	ImageURL    *string    `db:"image_url" json:"image_url"`
	Source      string     `db:"source" json:"source"`
	SpottedAt   *time.Time `db:"spotted_at" json:"spotted_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
