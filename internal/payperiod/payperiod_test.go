package payperiod_test

import (
	"testing"
	"time"

	"github.com/madhavny/mavi-hrms-sub002/internal/payperiod"

	"github.com/stretchr/testify/assert"
)

func TestResolver_WorkingDays(t *testing.T) {
	r := payperiod.NewResolver(time.UTC)

	tests := []struct {
		name    string
		year    int
		month   int
		total   int
		weekend int
		working int
	}{
		{"january 2025", 2025, 1, 31, 8, 23},
		{"february 2025", 2025, 2, 28, 8, 20},
		{"february 2024 leap", 2024, 2, 29, 8, 21},
		{"june 2025 starts on sunday", 2025, 6, 30, 9, 21},
		{"august 2025 five weekends", 2025, 8, 31, 10, 21},
		{"november 2025 starts on saturday", 2025, 11, 30, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.total, r.TotalDays(tt.year, tt.month))
			assert.Equal(t, tt.weekend, r.WeekendDays(tt.year, tt.month))
			assert.Equal(t, tt.working, r.WorkingDays(tt.year, tt.month))
		})
	}
}

func TestResolver_MonthBounds(t *testing.T) {
	r := payperiod.NewResolver(time.UTC)

	start, end := r.MonthBounds(2025, 2)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), end)

	start, end = r.MonthBounds(2024, 12)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestResolver_TimezoneIsExplicit(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	r := payperiod.NewResolver(jakarta)
	start, _ := r.MonthBounds(2025, 3)
	assert.Equal(t, jakarta, start.Location())

	// nil location falls back to UTC
	r = payperiod.NewResolver(nil)
	start, _ = r.MonthBounds(2025, 3)
	assert.Equal(t, time.UTC, start.Location())
}

func TestNewResolverFromName(t *testing.T) {
	r, err := payperiod.NewResolverFromName("")
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, r.Location())

	_, err = payperiod.NewResolverFromName("Not/AZone")
	assert.Error(t, err)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClipRange(t *testing.T) {
	periodStart := day(2025, 2, 1)
	periodEnd := day(2025, 2, 28)

	t.Run("fully inside", func(t *testing.T) {
		r, ok := payperiod.ClipRange(day(2025, 2, 10), day(2025, 2, 12), periodStart, periodEnd)
		assert.True(t, ok)
		assert.Equal(t, day(2025, 2, 10), r.Start)
		assert.Equal(t, day(2025, 2, 12), r.End)
	})

	t.Run("starts before the month", func(t *testing.T) {
		r, ok := payperiod.ClipRange(day(2025, 1, 28), day(2025, 2, 3), periodStart, periodEnd)
		assert.True(t, ok)
		assert.Equal(t, periodStart, r.Start)
		assert.Equal(t, day(2025, 2, 3), r.End)
	})

	t.Run("ends after the month", func(t *testing.T) {
		r, ok := payperiod.ClipRange(day(2025, 2, 26), day(2025, 3, 4), periodStart, periodEnd)
		assert.True(t, ok)
		assert.Equal(t, day(2025, 2, 26), r.Start)
		assert.Equal(t, periodEnd, r.End)
	})

	t.Run("spans the whole month", func(t *testing.T) {
		r, ok := payperiod.ClipRange(day(2025, 1, 1), day(2025, 3, 31), periodStart, periodEnd)
		assert.True(t, ok)
		assert.Equal(t, periodStart, r.Start)
		assert.Equal(t, periodEnd, r.End)
	})

	t.Run("wholly before", func(t *testing.T) {
		_, ok := payperiod.ClipRange(day(2025, 1, 5), day(2025, 1, 20), periodStart, periodEnd)
		assert.False(t, ok)
	})

	t.Run("wholly after", func(t *testing.T) {
		_, ok := payperiod.ClipRange(day(2025, 3, 1), day(2025, 3, 5), periodStart, periodEnd)
		assert.False(t, ok)
	})
}

func TestInclusiveDays(t *testing.T) {
	assert.Equal(t, 1, payperiod.InclusiveDays(day(2025, 2, 10), day(2025, 2, 10)))
	assert.Equal(t, 3, payperiod.InclusiveDays(day(2025, 2, 10), day(2025, 2, 12)))
	assert.Equal(t, 28, payperiod.InclusiveDays(day(2025, 2, 1), day(2025, 2, 28)))
	assert.Equal(t, 0, payperiod.InclusiveDays(day(2025, 2, 12), day(2025, 2, 10)))
}

func TestInclusiveDays_AcrossDSTBoundary(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	// March 2025 contains the spring-forward transition; the count must
	// still be pure calendar days.
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, ny)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, ny)
	assert.Equal(t, 31, payperiod.InclusiveDays(start, end))
}
