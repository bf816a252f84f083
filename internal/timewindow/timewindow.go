// Package timewindow resolves reporting periods into inclusive time
// ranges. Resolution is a pure function of the reference instant, so
// windows are recomputed per request and never go stale across
// midnight, week or month rollovers.
package timewindow

import "time"

type Period string

const (
	Day   Period = "day"
	Week  Period = "week"
	Month Period = "month"
)

// ParsePeriod maps a raw period tag to a Period. Anything other than
// "week" or "month" collapses to Day.
func ParsePeriod(s string) Period {
	switch s {
	case string(Week):
		return Week
	case string(Month):
		return Month
	default:
		return Day
	}
}

// Window is an inclusive [Start, End] range.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Resolve computes the window containing now for the given period.
// Day covers the calendar date, week runs Monday through Sunday, month
// covers the 1st through the last day of now's month. The end bound is
// the last representable microsecond of the range, so an instant at
// 23:59:59.999999 is inside and the next midnight is not.
func Resolve(now time.Time, period Period) Window {
	switch period {
	case Week:
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		start := midnight(now).AddDate(0, 0, -daysSinceMonday)
		return Window{Start: start, End: lastInstant(start.AddDate(0, 0, 7))}
	case Month:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Window{Start: start, End: lastInstant(start.AddDate(0, 1, 0))}
	default:
		start := midnight(now)
		return Window{Start: start, End: lastInstant(start.AddDate(0, 0, 1))}
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func lastInstant(nextStart time.Time) time.Time {
	return nextStart.Add(-time.Microsecond)
}
