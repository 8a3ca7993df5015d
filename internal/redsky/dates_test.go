package redsky_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/target-inventory/internal/redsky"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

func TestParseDate_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  string
		layout string
		want   time.Time
	}{
		{
			name:   "release date millisecond UTC",
			value:  "2024-11-29T00:00:00.000Z",
			layout: redsky.AvailabilityLayout,
			want:   time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "release date with milliseconds",
			value:  "2024-11-29T08:30:15.250Z",
			layout: redsky.AvailabilityLayout,
			want:   time.Date(2024, 11, 29, 8, 30, 15, 250_000_000, time.UTC),
		},
		{
			name:   "review submission time zero offset",
			value:  "2023-07-04T18:22:05+0000",
			layout: redsky.ReviewLayout,
			want:   time.Date(2023, 7, 4, 18, 22, 5, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := redsky.ParseDate("field", tt.value, tt.layout)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
			assert.Equal(t, tt.value, got.Format(tt.layout))
		})
	}
}

func TestParseDate_NormalizesOffset(t *testing.T) {
	t.Parallel()

	got, err := redsky.ParseDate("submissionTime", "2023-07-04T13:22:05-0500", redsky.ReviewLayout)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 7, 4, 18, 22, 5, 0, time.UTC), got)
}

func TestParseDate_WrongForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  string
		layout string
	}{
		{name: "review form in availability field", value: "2023-07-04T18:22:05+0000", layout: redsky.AvailabilityLayout},
		{name: "availability form in review field", value: "2024-11-29T00:00:00.000Z", layout: redsky.ReviewLayout},
		{name: "date only", value: "2024-11-29", layout: redsky.AvailabilityLayout},
		{name: "garbage", value: "soon", layout: redsky.ReviewLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := redsky.ParseDate("release_date", tt.value, tt.layout)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrSchemaMismatch))

			var de *redsky.DateError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, "release_date", de.Field)
			assert.Equal(t, tt.value, de.Value)
			assert.Contains(t, err.Error(), tt.value)
		})
	}
}
