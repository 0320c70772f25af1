package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/questkeeper/internal/core"
	"github.com/dmitrijs2005/questkeeper/internal/leaderboard"
	"github.com/dmitrijs2005/questkeeper/internal/models"
	"github.com/dmitrijs2005/questkeeper/internal/progression"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
}

func TestBar(t *testing.T) {
	assert.Equal(t, "[----]", bar(0, 4))
	assert.Equal(t, "[##--]", bar(50, 4))
	assert.Equal(t, "[####]", bar(120, 4))
}

func TestRenderer_Leaderboard(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, fixedNow)

	r.Leaderboard([]leaderboard.Entry{
		{Rank: 1, Username: "Ava", Level: 12, XP: 4321, Quests: 80, Streak: 3, Score: 6412, IsCurrent: true},
		{Rank: 2, Username: "Bo", Level: 2, XP: 120, Quests: 4},
	})

	out := buf.String()
	assert.Contains(t, out, "Ava (you)")
	assert.Contains(t, out, "4,321")
	assert.Contains(t, out, "6,412")
	assert.NotContains(t, out, "Bo (you)")
}

func TestRenderer_EmptyViews(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, fixedNow)

	r.Leaderboard(nil)
	r.Quests(nil)
	r.Inventory(nil)

	out := buf.String()
	assert.Contains(t, out, "No adventurers on this device yet.")
	assert.Contains(t, out, "No quests here.")
	assert.Contains(t, out, "No cosmetics owned yet.")
}

func TestRenderer_Dashboard(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, fixedNow)
	u := &models.User{Username: "Ava", XP: 150, Coins: 1500, Streak: 2}

	r.Dashboard(core.Dashboard{
		User:     u,
		Progress: progression.LevelProgress(u.XP),
		Active:   1,
		Recent:   []models.Activity{{Date: "2024-03-10", Text: "Completed: Walk"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Ava  Lv 2")
	assert.Contains(t, out, "Coins: 1,500")
	assert.Contains(t, out, "2024-03-10  Completed: Walk")
}

func TestRenderer_ProfileDates(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, fixedNow)
	u := &models.User{
		Username:       "Ava",
		Created:        "2024-01-01",
		LastLoginDate:  models.Ptr("2024-03-10"),
		LastActiveDate: models.Ptr("2024-03-07"),
	}

	r.Profile(u)

	out := buf.String()
	assert.Contains(t, out, "today")
	assert.Contains(t, out, "days ago")
	assert.Equal(t, 3, strings.Count(out, "none"))
}

func TestNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifier(&buf)

	n.Notify("Quest completed!", core.NoticeInfo, "+15 XP")
	n.Notify("Not enough coins.", core.NoticeError, "")

	assert.Equal(t, "✔ Quest completed!\n  +15 XP\n✖ Not enough coins.\n", buf.String())
}

func TestConfirmer(t *testing.T) {
	var buf bytes.Buffer
	c := NewConfirmer(rdr("YES\nn\n"), &buf)

	assert.True(t, c.Confirm("Delete?"))
	assert.False(t, c.Confirm("Delete?"))
	assert.False(t, c.Confirm("Delete?"))
	assert.Contains(t, buf.String(), "Delete? (y/N)")
}
