package dto

import (
	"github.com/cat-tracker/internal/domain"
	"github.com/cat-tracker/internal/pkg/timeutil"
)

// CreateSightingRequest is the create-sighting body. The web client has
// shipped both snake_case and camelCase spellings for the cat-name and
// image-url fields, so both are declared as first-class aliases and folded
// by Normalize; there is no second pass over raw JSON.
type CreateSightingRequest struct {
	Lat         *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng         *float64 `json:"lng" validate:"required,min=-180,max=180"`
	Address     string   `json:"address"`
	Description string   `json:"description"`

	CatName      string `json:"cat_name"`
	CatNameAlias string `json:"catName"`

	ImageURL      string `json:"image_url"`
	ImageURLAlias string `json:"imageUrl"`

	// Source is deliberately not validated here; the storage CHECK
	// constraint is the only gate.
	Source string `json:"source"`

	SpottedAt timeutil.FlexTime `json:"spotted_at"`
}

// Normalize folds the alias spellings into the canonical fields. The
// snake_case spelling wins when both are present.
func (r *CreateSightingRequest) Normalize() {
	if r.CatName == "" {
		r.CatName = r.CatNameAlias
	}
	if r.ImageURL == "" {
		r.ImageURL = r.ImageURLAlias
	}
}

// ToDomain maps the request onto a Sighting. Absent optionals become nil;
// business defaults (source, spotted_at) are applied by the usecase.
func (r *CreateSightingRequest) ToDomain() *domain.Sighting {
	s := &domain.Sighting{
		Lat:         *r.Lat,
		Lng:         *r.Lng,
		Address:     optional(r.Address),
		Description: optional(r.Description),
		CatName:     optional(r.CatName),
		ImageURL:    optional(r.ImageURL),
		Source:      r.Source,
	}
	if !r.SpottedAt.IsZero() {
		t := r.SpottedAt.Time
		s.SpottedAt = &t
	}
	return s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ReportRequest carries the raw start/end query parameters of the reporting
// endpoints. Both are optional YYYY-MM-DD strings; unparseable values are
// treated as absent.
type ReportRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
