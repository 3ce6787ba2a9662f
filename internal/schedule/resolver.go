package schedule

import "time"

// ClosestDueDate picks the due date nearest to today in whole calendar days.
// On a tie the earlier date wins. ok is false for an empty calendar.
func ClosestDueDate(today time.Time, calendar []time.Time) (closest time.Time, ok bool) {
	if len(calendar) == 0 {
		return time.Time{}, false
	}

	today = StartOfDay(today)
	best := -1
	bestDist := 0
	for i, d := range calendar {
		dist := abs(daysBetween(today, d))
		if best == -1 || dist < bestDist || (dist == bestDist && d.Before(calendar[best])) {
			best, bestDist = i, dist
		}
	}
	return calendar[best], true
}

// IsDueToday compares calendar days and ignores the time of day.
func IsDueToday(date, today time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := today.In(date.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func daysBetween(from, to time.Time) int {
	y1, m1, d1 := from.Date()
	y2, m2, d2 := to.In(from.Location()).Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Microsecond)
}

func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// LastDayOfMonth returns the start of the last calendar day of t's month.
func LastDayOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, daysIn(y, m), 0, 0, 0, 0, t.Location())
}

func IsLastDayOfMonth(t time.Time) bool {
	return t.Day() == daysIn(t.Year(), t.Month())
}

// DateIn rebuilds a calendar date read from a DATE column as midnight in loc.
func DateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
