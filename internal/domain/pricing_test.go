package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeCost_DayRental(t *testing.T) {
	start := ts("2026-03-01T10:00:00Z")
	end := ts("2026-03-02T10:00:00Z")

	got := ComputeCost(100, start, end, false, 0)

	assert.Equal(t, int64(2400), got.BaseCost)
	assert.Equal(t, int64(0), got.DriverFee)
	assert.Equal(t, int64(648), got.Tax)
	assert.Equal(t, int64(0), got.Discount)
	assert.Equal(t, int64(3048), got.TotalCost)
}

func TestComputeCost_WithDriverAndDiscount(t *testing.T) {
	start := ts("2026-03-01T10:00:00Z")
	end := ts("2026-03-02T10:00:00Z")

	got := ComputeCost(100, start, end, true, 200)

	assert.Equal(t, int64(2400), got.BaseCost)
	assert.Equal(t, int64(500), got.DriverFee)
	assert.Equal(t, int64(648), got.Tax)
	assert.Equal(t, int64(200), got.Discount)
	assert.Equal(t, int64(3348), got.TotalCost)
}

func TestComputeCost_FractionalHoursTruncated(t *testing.T) {
	start := ts("2026-03-01T10:00:00Z")
	end := ts("2026-03-02T10:30:00Z") // 24.5 часа

	got := ComputeCost(100, start, end, false, 0)

	// floor(24.5 * 100) = 2450
	assert.Equal(t, int64(2450), got.BaseCost)
}

func TestComputeCost_DiscountClampedAtZero(t *testing.T) {
	start := ts("2026-03-01T10:00:00Z")
	end := ts("2026-03-02T10:00:00Z")

	// Скидка больше полной суммы, итог не уходит в минус
	got := ComputeCost(1, start, end, false, 100000)

	assert.Equal(t, int64(0), got.TotalCost)
}

func TestComputeCost_Deterministic(t *testing.T) {
	start := ts("2026-03-01T10:00:00Z")
	end := ts("2026-03-04T16:30:00Z")

	first := ComputeCost(137, start, end, true, 250)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComputeCost(137, start, end, true, 250))
	}
}

func TestValidateRentalWindow(t *testing.T) {
	base := ts("2026-03-01T10:00:00Z")

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{
			name:  "exactly 24 hours is accepted",
			start: base,
			end:   base.Add(24 * time.Hour),
		},
		{
			name:  "exactly 30 days is accepted",
			start: base,
			end:   base.Add(30 * 24 * time.Hour),
		},
		{
			name:    "one minute short of a day",
			start:   base,
			end:     base.Add(24*time.Hour - time.Minute),
			wantErr: ErrRentalTooShort,
		},
		{
			name:    "30 days plus one hour",
			start:   base,
			end:     base.Add(30*24*time.Hour + time.Hour),
			wantErr: ErrRentalTooLong,
		},
		{
			name:    "end equals start",
			start:   base,
			end:     base,
			wantErr: ErrInvalidRange,
		},
		{
			name:    "end before start",
			start:   base,
			end:     base.Add(-time.Hour),
			wantErr: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRentalWindow(tt.start, tt.end)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIntervalsOverlap(t *testing.T) {
	s1 := ts("2026-03-01T10:00:00Z")
	e1 := ts("2026-03-02T10:00:00Z")

	tests := []struct {
		name string
		s2   time.Time
		e2   time.Time
		want bool
	}{
		{"identical intervals", s1, e1, true},
		{"contained", s1.Add(time.Hour), e1.Add(-time.Hour), true},
		{"partial overlap at end", e1.Add(-time.Hour), e1.Add(time.Hour), true},
		{"back-to-back after", e1, e1.Add(24 * time.Hour), false},
		{"back-to-back before", s1.Add(-24 * time.Hour), s1, false},
		{"disjoint", e1.Add(time.Hour), e1.Add(2 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntervalsOverlap(s1, e1, tt.s2, tt.e2))
			// Пересечение симметрично
			assert.Equal(t, tt.want, IntervalsOverlap(tt.s2, tt.e2, s1, e1))
		})
	}
}
