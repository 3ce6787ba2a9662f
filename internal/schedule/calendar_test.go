package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateDueDates(t *testing.T) {
	tests := []struct {
		name    string
		cadence domain.Cadence
		start   time.Time
		end     time.Time
		want    []time.Time
		wantErr error
	}{
		{
			name:    "daily covers every day inclusive",
			cadence: domain.CadenceDaily,
			start:   day(2024, time.January, 1),
			end:     day(2024, time.January, 4),
			want:    []time.Time{day(2024, time.January, 1), day(2024, time.January, 2), day(2024, time.January, 3), day(2024, time.January, 4)},
		},
		{
			name:    "weekly keeps the start weekday",
			cadence: domain.CadenceWeekly,
			start:   day(2024, time.January, 3),
			end:     day(2024, time.January, 31),
			want:    []time.Time{day(2024, time.January, 3), day(2024, time.January, 10), day(2024, time.January, 17), day(2024, time.January, 24), day(2024, time.January, 31)},
		},
		{
			name:    "weekly stops before end when end is mid-week",
			cadence: domain.CadenceWeekly,
			start:   day(2024, time.January, 3),
			end:     day(2024, time.January, 16),
			want:    []time.Time{day(2024, time.January, 3), day(2024, time.January, 10)},
		},
		{
			name:    "monthly clamps to short months without drifting",
			cadence: domain.CadenceMonthly,
			start:   day(2024, time.January, 31),
			end:     day(2024, time.May, 31),
			want:    []time.Time{day(2024, time.January, 31), day(2024, time.February, 29), day(2024, time.March, 31), day(2024, time.April, 30), day(2024, time.May, 31)},
		},
		{
			name:    "monthly in a non-leap year",
			cadence: domain.CadenceMonthly,
			start:   day(2023, time.January, 30),
			end:     day(2023, time.March, 30),
			want:    []time.Time{day(2023, time.January, 30), day(2023, time.February, 28), day(2023, time.March, 30)},
		},
		{
			name:    "start equals end",
			cadence: domain.CadenceMonthly,
			start:   day(2024, time.June, 15),
			end:     day(2024, time.June, 15),
			want:    []time.Time{day(2024, time.June, 15)},
		},
		{
			name:    "end before start is empty",
			cadence: domain.CadenceDaily,
			start:   day(2024, time.June, 15),
			end:     day(2024, time.June, 14),
			want:    []time.Time{},
		},
		{
			name:    "time of day is ignored",
			cadence: domain.CadenceDaily,
			start:   time.Date(2024, time.June, 1, 17, 30, 0, 0, time.UTC),
			end:     time.Date(2024, time.June, 2, 8, 0, 0, 0, time.UTC),
			want:    []time.Time{day(2024, time.June, 1), day(2024, time.June, 2)},
		},
		{
			name:    "unknown cadence",
			cadence: domain.Cadence("yearly"),
			start:   day(2024, time.June, 1),
			end:     day(2024, time.June, 30),
			wantErr: ErrUnknownCadence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateDueDates(tt.cadence, tt.start, tt.end)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateDueDates_Properties(t *testing.T) {
	start := day(2024, time.January, 29)
	end := day(2025, time.March, 15)

	for _, cadence := range []domain.Cadence{domain.CadenceDaily, domain.CadenceWeekly, domain.CadenceMonthly} {
		t.Run(string(cadence), func(t *testing.T) {
			dates, err := GenerateDueDates(cadence, start, end)
			require.NoError(t, err)
			require.NotEmpty(t, dates)

			assert.Equal(t, start, dates[0])
			for i, d := range dates {
				assert.False(t, d.Before(start))
				assert.False(t, d.After(end))
				if i > 0 {
					assert.True(t, d.After(dates[i-1]), "dates must be strictly increasing")
				}
				switch cadence {
				case domain.CadenceWeekly:
					assert.Equal(t, start.Weekday(), d.Weekday())
				case domain.CadenceMonthly:
					assert.True(t, d.Day() == start.Day() || IsLastDayOfMonth(d))
				}
			}

			again, err := GenerateDueDates(cadence, start, end)
			require.NoError(t, err)
			assert.Equal(t, dates, again)
		})
	}
}

func TestEndDate(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		code    string
		want    time.Time
		wantErr bool
	}{
		{"days", day(2024, time.January, 1), "30D", day(2024, time.January, 30), false},
		{"weeks", day(2024, time.January, 1), "2W", day(2024, time.January, 14), false},
		{"months", day(2024, time.January, 1), "3M", day(2024, time.March, 31), false},
		{"months from end of month", day(2024, time.January, 31), "1M", day(2024, time.February, 28), false},
		{"year", day(2024, time.March, 1), "1Y", day(2025, time.February, 28), false},
		{"lower case unit", day(2024, time.January, 1), "6m", day(2024, time.June, 30), false},
		{"zero count", day(2024, time.January, 1), "0M", time.Time{}, true},
		{"unknown unit", day(2024, time.January, 1), "3Q", time.Time{}, true},
		{"empty", day(2024, time.January, 1), "", time.Time{}, true},
		{"no count", day(2024, time.January, 1), "M", time.Time{}, true},
		{"ten years", day(2024, time.January, 1), "10Y", day(2033, time.December, 31), false},
		{"longest in days", day(2024, time.January, 1), "3650D", day(2033, time.December, 28), false},
		{"over ten years", day(2024, time.January, 1), "11Y", time.Time{}, true},
		{"huge year count", day(2024, time.January, 1), "2000000Y", time.Time{}, true},
		{"too many days", day(2024, time.January, 1), "3651D", time.Time{}, true},
		{"too many weeks", day(2024, time.January, 1), "522W", time.Time{}, true},
		{"too many months", day(2024, time.January, 1), "121M", time.Time{}, true},
		{"count overflow", day(2024, time.January, 1), "99999999999999999999D", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EndDate(tt.start, tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDuration)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthlyContractCollectionCount(t *testing.T) {
	start := day(2024, time.January, 1)
	end, err := EndDate(start, "3M")
	require.NoError(t, err)

	dates, err := GenerateDueDates(domain.CadenceMonthly, start, end)
	require.NoError(t, err)
	assert.Len(t, dates, 3)
}
