package timeutil_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cat-tracker/internal/pkg/timeutil"
)

func TestFlexTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		absent bool
	}{
		{
			name:  "rfc3339 with Z",
			input: `"2024-01-15T10:30:00Z"`,
			want:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with offset",
			input: `"2024-01-15T10:30:00+02:00"`,
			want:  time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "naive datetime assumed UTC",
			input: `"2024-01-15T10:30:00"`,
			want:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "space-separated naive datetime",
			input: `"2024-01-15 10:30:00"`,
			want:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "fractional seconds",
			input: `"2024-01-15T10:30:00.500Z"`,
			want:  time.Date(2024, 1, 15, 10, 30, 0, 500000000, time.UTC),
		},
		{
			name:  "bare date expands to noon UTC",
			input: `"2024-01-15"`,
			want:  time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "epoch seconds",
			input: `1700000000`,
			want:  time.Unix(1700000000, 0).UTC(),
		},
		{
			name:   "null is absent",
			input:  `null`,
			absent: true,
		},
		{
			name:   "empty string is absent",
			input:  `""`,
			absent: true,
		},
		{
			name:   "garbage is absent, not an error",
			input:  `"next tuesday-ish"`,
			absent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ft timeutil.FlexTime
			err := json.Unmarshal([]byte(tt.input), &ft)
			require.NoError(t, err)

			if tt.absent {
				assert.True(t, ft.IsZero())
				return
			}
			assert.True(t, ft.Equal(tt.want), "got %v, want %v", ft.Time, tt.want)
		})
	}
}

func TestParseString_EpochNumberViaJSONOnly(t *testing.T) {
	// Epoch handling belongs to the JSON number path; a numeric string is
	// not a date and resolves to absent.
	_, ok := timeutil.ParseString("1700000000")
	assert.False(t, ok)
}

func TestFlexTime_MarshalJSON(t *testing.T) {
	var zero timeutil.FlexTime
	data, err := json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	set := timeutil.FlexTime{Time: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)}
	data, err = json.Marshal(set)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15T10:30:00Z"`, string(data))
}
