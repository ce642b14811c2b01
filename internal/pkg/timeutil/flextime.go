// Package timeutil normalizes the loosely-typed date/time values the web
// client sends for spotted_at: epoch numbers, full ISO date-times with or
// without an offset, Z-suffixed strings and bare calendar dates all resolve
// to a UTC instant; anything unparseable resolves to "absent".
package timeutil

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// FlexTime is a time.Time whose zero value means "not provided".
// Unmarshaling never fails on bad input; it falls back to the zero value so
// callers can apply their own default.
type FlexTime struct {
	time.Time
}

// Offset-bearing layouts are tried first, then naive ones which are assumed
// UTC. Fractional seconds are optional in every layout.
var (
	offsetLayouts = []string{
		"2006-01-02T15:04:05.999999999-07:00",
		"2006-01-02 15:04:05.999999999-07:00",
	}
	naiveLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
	}
)

const dateLayout = "2006-01-02"

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			t.Time = time.Time{}
			return nil
		}
		parsed, _ := ParseString(str)
		t.Time = parsed
		return nil
	}

	// Bare JSON number: Unix epoch seconds, UTC.
	var epoch float64
	if err := json.Unmarshal(data, &epoch); err != nil {
		t.Time = time.Time{}
		return nil
	}
	sec, frac := math.Modf(epoch)
	t.Time = time.Unix(int64(sec), int64(frac*1e9)).UTC()
	return nil
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time)
}

// ParseString resolves a date/time-like string to a UTC instant. The second
// return value reports whether the input was parseable at all.
func ParseString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// A trailing Z is the UTC designator; swap it for an explicit offset so
	// the offset layouts below cover it.
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}

	for _, layout := range offsetLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), true
		}
	}

	// No offset information: assume UTC.
	for _, layout := range naiveLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), true
		}
	}

	// Bare calendar date. Pin to noon UTC so the displayed date cannot shift
	// across common client timezones.
	if parsed, err := time.Parse(dateLayout, s); err == nil {
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 12, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}
