// Package achievements holds the fixed achievement catalog and unlocks
// entries whose condition a user now satisfies.
package achievements

import (
	"github.com/dmitrijs2005/questkeeper/internal/models"
	"github.com/dmitrijs2005/questkeeper/internal/progression"
)

type Achievement struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Check       func(u *models.User) bool
}

var catalog = []Achievement{
	{"a_firstquest", "First Blood", "🗡️", "Complete your first quest.",
		func(u *models.User) bool { return u.TotalQuestsCompleted >= 1 }},
	{"a_10quests", "Questing Habit", "📜", "Complete 10 quests total.",
		func(u *models.User) bool { return u.TotalQuestsCompleted >= 10 }},
	{"a_50quests", "Guild Veteran", "🏰", "Complete 50 quests total.",
		func(u *models.User) bool { return u.TotalQuestsCompleted >= 50 }},
	{"a_level5", "Apprentice", "✨", "Reach level 5.",
		func(u *models.User) bool { return progression.LevelFromXP(u.XP) >= 5 }},
	{"a_level10", "Adept", "🌟", "Reach level 10.",
		func(u *models.User) bool { return progression.LevelFromXP(u.XP) >= 10 }},
	{"a_streak3", "On Fire", "🔥", "Maintain a 3-day streak.",
		func(u *models.User) bool { return u.Streak >= 3 }},
	{"a_streak7", "Unstoppable", "🔥🔥", "Maintain a 7-day streak.",
		func(u *models.User) bool { return u.Streak >= 7 }},
	{"a_1000coins", "Merchant Mindset", "🪙", "Hold 1000 coins at once.",
		func(u *models.User) bool { return u.Coins >= 1000 }},
	{"a_buy1", "First Purchase", "🛍️", "Buy an item from the shop.",
		func(u *models.User) bool { return u.Owned.Count() >= 1 }},
	{"a_profilepic", "Portrait Ready", "🖼️", "Set a custom profile picture.",
		func(u *models.User) bool { return u.AvatarData != nil && *u.AvatarData != "" }},
}

// Catalog returns the achievements in display order.
func Catalog() []Achievement {
	out := make([]Achievement, len(catalog))
	copy(out, catalog)
	return out
}

// ByID returns false for unknown ids, such as ones carried in by an import.
func ByID(id string) (Achievement, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// Evaluate appends every newly satisfied achievement id to u.Achievements
// and returns those achievements in catalog order. Already unlocked entries
// are never returned again, and none are ever removed.
func Evaluate(u *models.User) []Achievement {
	var unlocked []Achievement
	for _, a := range catalog {
		if u.HasAchievement(a.ID) || !a.Check(u) {
			continue
		}
		u.Achievements = append(u.Achievements, a.ID)
		unlocked = append(unlocked, a)
	}
	return unlocked
}

// Status pairs a catalog entry with whether u has it.
type Status struct {
	Achievement
	Unlocked bool
}

func StatusFor(u *models.User) []Status {
	out := make([]Status, 0, len(catalog))
	for _, a := range catalog {
		out = append(out, Status{Achievement: a, Unlocked: u.HasAchievement(a.ID)})
	}
	return out
}
