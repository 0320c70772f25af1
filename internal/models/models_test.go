package models

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser() *User {
	u := NewUser("u1", "2024-01-01")
	u.Username = "Ava"
	u.Email = "ava@x.com"
	u.Equipped.Frame = Ptr("frame-glow")
	u.Owned.Frames = []string{"frame-glow"}
	u.LastActiveDate = Ptr("2024-01-02")
	u.Quests = []*Quest{{ID: "q1", Title: "Read", Difficulty: DifficultyEasy, CreatedAt: "2024-01-01", CompletedAt: Ptr("2024-01-02")}}
	u.Achievements = []string{"a_firstquest"}
	u.LogActivity("2024-01-01", "Created an account.")
	return u
}

func TestNewUser_Defaults(t *testing.T) {
	u := NewUser("id", "2024-05-01")

	assert.Equal(t, StartingCoins, u.Coins)
	assert.Zero(t, u.XP)
	assert.Zero(t, u.Streak)
	assert.Nil(t, u.LastActiveDate)
	assert.NotNil(t, u.Owned.Frames)
	assert.NotNil(t, u.Owned.Themes)
	assert.NotNil(t, u.Quests)
	assert.NotNil(t, u.Activity)
	assert.NotNil(t, u.Achievements)
}

func TestLogActivity_NewestFirstCapped(t *testing.T) {
	u := NewUser("id", "2024-05-01")
	for i := 0; i < MaxActivity+5; i++ {
		u.LogActivity("2024-05-01", fmt.Sprintf("entry %d", i))
	}

	require.Len(t, u.Activity, MaxActivity)
	assert.Equal(t, fmt.Sprintf("entry %d", MaxActivity+4), u.Activity[0].Text)
	assert.Equal(t, "entry 5", u.Activity[MaxActivity-1].Text)
}

func TestDocument_NormalizeFillsDefaults(t *testing.T) {
	var d Document
	require.NoError(t, json.Unmarshal([]byte(`{"users":[{"id":"a"},null]}`), &d))

	d.Normalize()

	assert.Equal(t, CurrentVersion, d.Meta.Version)
	require.Len(t, d.Users, 1)
	assert.NotNil(t, d.Users[0].Quests)
	assert.NotNil(t, d.Users[0].Owned.Themes)
}

func TestDocument_Lookups(t *testing.T) {
	d := NewDocument()
	d.Users = append(d.Users, sampleUser())

	assert.NotNil(t, d.UserByID("u1"))
	assert.Nil(t, d.UserByID("nope"))
	assert.NotNil(t, d.UserByEmail("ava@x.com"))
	assert.Nil(t, d.CurrentUser())

	d.Session.CurrentUserID = Ptr("u1")
	assert.Equal(t, "Ava", d.CurrentUser().Username)

	assert.True(t, d.RemoveUser("u1"))
	assert.False(t, d.RemoveUser("u1"))
	assert.Nil(t, d.CurrentUser())
}

func TestDocument_CloneIsDeep(t *testing.T) {
	d := NewDocument()
	d.Users = append(d.Users, sampleUser())
	d.Session.CurrentUserID = Ptr("u1")

	c := d.Clone()
	require.Empty(t, cmp.Diff(d, c))

	cu := c.Users[0]
	cu.Coins = 1
	*cu.Equipped.Frame = "changed"
	cu.Owned.Frames[0] = "changed"
	cu.Quests[0].Title = "changed"
	*cu.Quests[0].CompletedAt = "changed"
	cu.Achievements[0] = "changed"
	cu.Activity[0].Text = "changed"
	*c.Session.CurrentUserID = "changed"

	orig := d.Users[0]
	assert.Equal(t, StartingCoins, orig.Coins)
	assert.Equal(t, "frame-glow", *orig.Equipped.Frame)
	assert.Equal(t, "frame-glow", orig.Owned.Frames[0])
	assert.Equal(t, "Read", orig.Quests[0].Title)
	assert.Equal(t, "2024-01-02", *orig.Quests[0].CompletedAt)
	assert.Equal(t, "a_firstquest", orig.Achievements[0])
	assert.Equal(t, "Created an account.", orig.Activity[0].Text)
	assert.Equal(t, "u1", *d.Session.CurrentUserID)
}

func TestDocument_JSONFieldNames(t *testing.T) {
	d := NewDocument()
	d.Users = append(d.Users, sampleUser())

	b, err := json.Marshal(d)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	session := raw["session"].(map[string]any)
	assert.Contains(t, session, "currentUserId")
	assert.Contains(t, session, "lastHelloForUserId")

	user := raw["users"].([]any)[0].(map[string]any)
	for _, k := range []string{"passHash", "security", "avatarDataUrl", "totalQuestsCompleted", "lastActiveDate", "quests", "achievements"} {
		assert.Contains(t, user, k)
	}
	sec := user["security"].(map[string]any)
	assert.Contains(t, sec, "q")
	assert.Contains(t, sec, "aHash")
}

func TestQuest_Active(t *testing.T) {
	q := &Quest{}
	assert.True(t, q.Active())
	q.CompletedAt = Ptr("2024-01-01")
	assert.False(t, q.Active())
}
