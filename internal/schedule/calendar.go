package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
)

var (
	ErrUnknownCadence  = errors.New("unknown cadence")
	ErrInvalidDuration = errors.New("invalid duration")
)

// GenerateDueDates returns every due date of a contract between start and end,
// both inclusive, in increasing order. Monthly dates keep start's day of month
// and fall back to the last day of shorter months.
func GenerateDueDates(cadence domain.Cadence, start, end time.Time) ([]time.Time, error) {
	if !cadence.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCadence, cadence)
	}

	start = StartOfDay(start)
	end = StartOfDay(end.In(start.Location()))

	dates := make([]time.Time, 0)
	for i := 0; ; i++ {
		d := step(cadence, start, i)
		if d.After(end) {
			break
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func step(cadence domain.Cadence, start time.Time, i int) time.Time {
	switch cadence {
	case domain.CadenceDaily:
		return start.AddDate(0, 0, i)
	case domain.CadenceWeekly:
		return start.AddDate(0, 0, 7*i)
	case domain.CadenceMonthly:
		return addMonths(start, i)
	default:
		panic(fmt.Sprintf("schedule: unhandled cadence %q", cadence))
	}
}

// addMonths moves t by n calendar months, clamping the day to the length of
// the target month.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(target.Year(), target.Month()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

type Unit byte

const (
	UnitDay   Unit = 'D'
	UnitWeek  Unit = 'W'
	UnitMonth Unit = 'M'
	UnitYear  Unit = 'Y'
)

// maxCount caps every unit at ten years so a calendar stays small.
var maxCount = map[Unit]int{
	UnitDay:   3650,
	UnitWeek:  521,
	UnitMonth: 120,
	UnitYear:  10,
}

// Duration is a contract length such as 30D, 12W, 6M or 1Y.
type Duration struct {
	Count int
	Unit  Unit
}

func ParseDuration(code string) (Duration, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, code)
	}

	unit := Unit(code[len(code)-1])
	switch unit {
	case UnitDay, UnitWeek, UnitMonth, UnitYear:
	default:
		return Duration{}, fmt.Errorf("%w: unknown unit in %q", ErrInvalidDuration, code)
	}

	n, err := strconv.Atoi(code[:len(code)-1])
	if err != nil || n < 1 {
		return Duration{}, fmt.Errorf("%w: bad count in %q", ErrInvalidDuration, code)
	}
	if n > maxCount[unit] {
		return Duration{}, fmt.Errorf("%w: %q is longer than ten years", ErrInvalidDuration, code)
	}
	return Duration{Count: n, Unit: unit}, nil
}

func (d Duration) String() string {
	return strconv.Itoa(d.Count) + string(d.Unit)
}

func (d Duration) addTo(t time.Time) time.Time {
	switch d.Unit {
	case UnitDay:
		return t.AddDate(0, 0, d.Count)
	case UnitWeek:
		return t.AddDate(0, 0, 7*d.Count)
	case UnitMonth:
		return addMonths(t, d.Count)
	case UnitYear:
		return addMonths(t, 12*d.Count)
	default:
		panic(fmt.Sprintf("schedule: unhandled duration unit %q", d.Unit))
	}
}

// EndDate returns the last day covered by a contract of the given duration
// starting on start.
func EndDate(start time.Time, code string) (time.Time, error) {
	d, err := ParseDuration(code)
	if err != nil {
		return time.Time{}, err
	}
	return d.addTo(StartOfDay(start)).AddDate(0, 0, -1), nil
}
