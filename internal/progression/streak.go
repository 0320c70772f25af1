package progression

import (
	"github.com/dmitrijs2005/questkeeper/internal/models"
	"github.com/dmitrijs2005/questkeeper/internal/timex"
)

// UpdateStreak applies one day of activity on today, then records today as
// the last active date.
//
// A gap of exactly one day extends the streak, a longer gap restarts it at 1
// and same-day activity leaves it alone. A negative gap (the clock went
// backwards) is treated like same-day activity. An unreadable stored date
// counts as a broken streak.
func UpdateStreak(u *models.User, today string) {
	switch {
	case u.LastActiveDate == nil:
		u.Streak = 1
	default:
		d, ok := timex.DaysBetween(*u.LastActiveDate, today)
		switch {
		case !ok || d > 1:
			u.Streak = 1
		case d == 1:
			u.Streak++
		}
	}
	u.LastActiveDate = models.Ptr(today)
}
