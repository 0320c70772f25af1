package progression

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/questkeeper/internal/common"
	"github.com/dmitrijs2005/questkeeper/internal/models"
)

// Completion summarizes what CompleteQuest granted.
type Completion struct {
	Quest     *models.Quest
	Reward    Reward
	LeveledUp bool
	NewLevel  int
	Bonus     int
}

// AddQuest validates and inserts a new quest at the front of u.Quests.
func AddQuest(u *models.User, id, title, difficulty, notes, today string) (*models.Quest, error) {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < models.MinQuestTitle {
		return nil, common.Validation("Quest title is too short.")
	}

	q := &models.Quest{
		ID:         id,
		Title:      truncate(title, models.MaxQuestTitle),
		Notes:      truncate(strings.TrimSpace(notes), models.MaxQuestNotes),
		Difficulty: difficulty,
		CreatedAt:  today,
	}
	u.Quests = append([]*models.Quest{q}, u.Quests...)
	u.LogActivity(today, "Added quest: "+q.Title)
	return q, nil
}

// CompleteQuest marks an active quest done and grants its reward. It
// reports false, changing nothing, when the quest is missing or already
// completed.
func CompleteQuest(u *models.User, id, today string) (Completion, bool) {
	q := u.Quest(id)
	if q == nil || !q.Active() {
		return Completion{}, false
	}

	q.CompletedAt = models.Ptr(today)
	r := RewardFor(q.Difficulty)

	UpdateStreak(u, today)

	before := LevelFromXP(u.XP)
	u.XP = addSat(u.XP, r.XP)
	u.Coins = addSat(u.Coins, r.Coins)
	u.TotalCoinsEarned = addSat(u.TotalCoinsEarned, r.Coins)
	u.TotalQuestsCompleted = addSat(u.TotalQuestsCompleted, 1)

	c := Completion{Quest: q, Reward: r, NewLevel: LevelFromXP(u.XP)}
	if c.NewLevel > before {
		c.LeveledUp = true
		c.Bonus = LevelUpBonus(c.NewLevel)
		u.LogActivity(today, fmt.Sprintf("Leveled up to %d.", c.NewLevel))
		u.Coins = addSat(u.Coins, c.Bonus)
		u.LogActivity(today, fmt.Sprintf("Received level-up bonus: +%d coins.", c.Bonus))
	}

	u.LogActivity(today, fmt.Sprintf("Completed quest: %s (+%d XP, +%d coins)", q.Title, r.XP, r.Coins))
	return c, true
}

// UndoQuest reopens a completed quest. Rewards, streak and totals are kept
// as they are. It reports false when there is nothing to reopen.
func UndoQuest(u *models.User, id, today string) bool {
	q := u.Quest(id)
	if q == nil || q.Active() {
		return false
	}
	q.CompletedAt = nil
	u.LogActivity(today, "Reopened quest: "+q.Title)
	return true
}

// EditQuest replaces title and notes with the same bounds as AddQuest.
func EditQuest(u *models.User, id, title, notes, today string) (*models.Quest, error) {
	q := u.Quest(id)
	if q == nil {
		return nil, common.State("Quest not found.")
	}
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < models.MinQuestTitle {
		return nil, common.Validation("Title too short.")
	}

	q.Title = truncate(title, models.MaxQuestTitle)
	q.Notes = truncate(strings.TrimSpace(notes), models.MaxQuestNotes)
	u.LogActivity(today, "Edited quest: "+q.Title)
	return q, nil
}

// DeleteQuest removes the quest with id.
func DeleteQuest(u *models.User, id, today string) (*models.Quest, error) {
	q := u.Quest(id)
	if q == nil {
		return nil, common.State("Quest not found.")
	}
	u.Quests = slices.DeleteFunc(u.Quests, func(x *models.Quest) bool { return x.ID == id })
	u.LogActivity(today, "Deleted quest: "+q.Title)
	return q, nil
}

// Example is a sample quest offered to new users.
type Example struct {
	Title      string
	Difficulty string
	Notes      string
}

var Examples = []Example{
	{"Clean your room (10 mins)", models.DifficultyEasy, "Just do a quick reset."},
	{"Study 30 minutes", models.DifficultyMedium, "Focus session, no phone."},
	{"Finish project milestone", models.DifficultyHard, "Break into steps."},
	{"Deep clean + organize desk", models.DifficultyEpic, "Reward yourself after."},
}

// Filter values for ListQuests.
const (
	FilterAll       = "all"
	FilterActive    = "active"
	FilterCompleted = "completed"
)

// ListQuests returns active quests before completed ones (otherwise in
// stored order), narrowed by filter and a case-insensitive substring search
// over title and notes.
func ListQuests(u *models.User, filter, search string) []*models.Quest {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]*models.Quest, 0, len(u.Quests))
	for _, q := range u.Quests {
		if filter == FilterActive && !q.Active() {
			continue
		}
		if filter == FilterCompleted && q.Active() {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(q.Title+" "+q.Notes), needle) {
			continue
		}
		out = append(out, q)
	}

	slices.SortStableFunc(out, func(a, b *models.Quest) int {
		return rank(a) - rank(b)
	})
	return out
}

func rank(q *models.Quest) int {
	if q.Active() {
		return 0
	}
	return 1
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
