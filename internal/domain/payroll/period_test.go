package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod_MonthBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		month     int
		year      int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "march 2026",
			month:     3,
			year:      2026,
			wantStart: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.March, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "december wraps the year",
			month:     12,
			year:      2025,
			wantStart: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.December, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "february leap year",
			month:     2,
			year:      2024,
			wantStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:      "february non-leap year",
			month:     2,
			year:      2026,
			wantStart: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.February, 28, 23, 59, 59, 999999999, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := ResolvePeriod(tt.month, tt.year)
			require.NoError(t, err)
			assert.True(t, period.Start.Equal(tt.wantStart), "start = %v, want %v", period.Start, tt.wantStart)
			assert.True(t, period.End.Equal(tt.wantEnd), "end = %v, want %v", period.End, tt.wantEnd)
		})
	}
}

func TestResolvePeriod_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
	}{
		{"month zero", 0, 2026},
		{"month thirteen", 13, 2026},
		{"negative month", -1, 2026},
		{"year too early", 6, 1999},
		{"year too late", 6, 2101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePeriod(tt.month, tt.year)
			assert.ErrorIs(t, err, ErrInvalidPeriod)
		})
	}
}

func TestPeriod_NextPayrollDate(t *testing.T) {
	period, err := ResolvePeriod(3, 2026)
	require.NoError(t, err)

	next := period.NextPayrollDate()
	assert.True(t, next.Equal(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)), "next = %v", next)
}

func TestPeriod_Contains(t *testing.T) {
	period, err := ResolvePeriod(3, 2026)
	require.NoError(t, err)

	assert.True(t, period.Contains(period.Start))
	assert.True(t, period.Contains(period.End))
	assert.True(t, period.Contains(time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)))
	assert.False(t, period.Contains(period.Start.Add(-time.Nanosecond)))
	assert.False(t, period.Contains(period.NextPayrollDate()))
}

func TestIdempotencyKey_Deterministic(t *testing.T) {
	key := IdempotencyKey("org-1", 3, 2026)
	assert.Equal(t, "run-org-1-3-2026", key)
	assert.Equal(t, key, IdempotencyKey("org-1", 3, 2026))
	assert.NotEqual(t, key, IdempotencyKey("org-1", 4, 2026))
	assert.NotEqual(t, key, IdempotencyKey("org-2", 3, 2026))
}
