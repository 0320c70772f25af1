// Package leaderboard ranks the accounts stored on this device.
package leaderboard

import (
	"cmp"
	"math"
	"slices"

	"github.com/dmitrijs2005/questkeeper/internal/models"
	"github.com/dmitrijs2005/questkeeper/internal/progression"
)

// Size is the number of entries Rank returns at most.
const Size = 20

type Entry struct {
	Rank      int
	UserID    string
	Username  string
	Level     int
	XP        int
	Quests    int
	Streak    int
	Score     int
	IsCurrent bool
}

// Score is floor(xp + 25*quests + 15*streak + 0.2*coins), clamped to the
// int range.
func Score(u *models.User) int {
	f := math.Floor(float64(u.XP) + float64(u.TotalQuestsCompleted)*25 +
		float64(u.Streak)*15 + float64(u.Coins)*0.2)
	switch {
	case f >= float64(math.MaxInt):
		return math.MaxInt
	case f <= float64(math.MinInt):
		return math.MinInt
	}
	return int(f)
}

// Rank orders users by descending score and keeps the top Size. Equal
// scores keep their stored order. currentID marks the signed-in entry and
// may be empty.
func Rank(users []*models.User, currentID string) []Entry {
	entries := make([]Entry, 0, len(users))
	for _, u := range users {
		entries = append(entries, Entry{
			UserID:    u.ID,
			Username:  u.Username,
			Level:     progression.LevelFromXP(u.XP),
			XP:        u.XP,
			Quests:    u.TotalQuestsCompleted,
			Streak:    u.Streak,
			Score:     Score(u),
			IsCurrent: currentID != "" && u.ID == currentID,
		})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int { return cmp.Compare(b.Score, a.Score) })

	if len(entries) > Size {
		entries = entries[:Size]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
