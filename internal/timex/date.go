package timex

import (
	"math"
	"time"
)

// DateLayout is the calendar-day format stored in documents (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Clock returns the current instant. Tests substitute a fixed one.
type Clock func() time.Time

// SystemClock reads the wall clock.
var SystemClock Clock = time.Now

// Today formats the local calendar day of now.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// DaysBetween returns the whole number of days from a to b (b-a).
// Both are local-midnight dates; rounding absorbs DST shifts.
// Unparsable input yields ok=false.
func DaysBetween(a, b string) (days int, ok bool) {
	ta, err := time.ParseInLocation(DateLayout, a, time.Local)
	if err != nil {
		return 0, false
	}
	tb, err := time.ParseInLocation(DateLayout, b, time.Local)
	if err != nil {
		return 0, false
	}
	return int(math.Round(tb.Sub(ta).Hours() / 24)), true
}
