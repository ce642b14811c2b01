package domain

import "time"

// DayCount is the number of sightings recorded on one UTC calendar day.
// Days with zero sightings are omitted from report output.
type DayCount struct {
	Date  string `db:"day" json:"date"`
	Count int    `db:"count" json:"count"`
}

// ReportRange is a resolved, inclusive created_at window. Both bounds are UTC.
type ReportRange struct {
	Start time.Time
	End   time.Time
}

// Summary aggregates sightings inside a report range.
type Summary struct {
	Start    time.Time      `json:"start"`
	End      time.Time      `json:"end"`
	Total    int            `json:"total"`
	BySource map[string]int `json:"by_source"`
	PerDay   []DayCount     `json:"per_day"`
}
