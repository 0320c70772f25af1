package models

import "slices"

// MaxActivity caps the newest-first activity log.
const MaxActivity = 20

type Security struct {
	Question   string `json:"q"`
	AnswerHash string `json:"aHash"`
}

// Equipped holds the active cosmetic keys; nil means nothing equipped.
type Equipped struct {
	Frame *string `json:"frame"`
	Theme *string `json:"theme"`
}

type Owned struct {
	Frames []string `json:"frames"`
	Themes []string `json:"themes"`
}

// Count is the total number of owned cosmetics across kinds.
func (o Owned) Count() int {
	return len(o.Frames) + len(o.Themes)
}

type Activity struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	PassHash string   `json:"passHash"`
	Security Security `json:"security"`

	Created       string  `json:"created"`
	LastLoginDate *string `json:"lastLoginDate"`

	Bio        string   `json:"bio"`
	AvatarData *string  `json:"avatarDataUrl"`
	Equipped   Equipped `json:"equipped"`
	Owned      Owned    `json:"owned"`

	XP                   int     `json:"xp"`
	Coins                int     `json:"coins"`
	TotalQuestsCompleted int     `json:"totalQuestsCompleted"`
	TotalCoinsEarned     int     `json:"totalCoinsEarned"`
	Streak               int     `json:"streak"`
	LastActiveDate       *string `json:"lastActiveDate"`

	Activity     []Activity `json:"activity"`
	Quests       []*Quest   `json:"quests"`
	Achievements []string   `json:"achievements"`
}

// StartingCoins is the balance every new (or reset) account begins with.
const StartingCoins = 200

// NewUser returns a user with default progression. Identity and credential
// fields are filled by the caller.
func NewUser(id, created string) *User {
	u := &User{
		ID:      id,
		Created: created,
		Coins:   StartingCoins,
	}
	u.Normalize()
	return u
}

// Normalize replaces nil collections with empty ones.
func (u *User) Normalize() {
	if u.Owned.Frames == nil {
		u.Owned.Frames = []string{}
	}
	if u.Owned.Themes == nil {
		u.Owned.Themes = []string{}
	}
	if u.Activity == nil {
		u.Activity = []Activity{}
	}
	if u.Quests == nil {
		u.Quests = []*Quest{}
	}
	u.Quests = slices.DeleteFunc(u.Quests, func(q *Quest) bool { return q == nil })
	if u.Achievements == nil {
		u.Achievements = []string{}
	}
}

// LogActivity prepends an entry and keeps the newest MaxActivity.
func (u *User) LogActivity(date, text string) {
	u.Activity = append([]Activity{{Date: date, Text: text}}, u.Activity...)
	if len(u.Activity) > MaxActivity {
		u.Activity = u.Activity[:MaxActivity]
	}
}

// Quest returns nil when no quest has id.
func (u *User) Quest(id string) *Quest {
	for _, q := range u.Quests {
		if q.ID == id {
			return q
		}
	}
	return nil
}

func (u *User) HasAchievement(id string) bool {
	return slices.Contains(u.Achievements, id)
}

func (u *User) Clone() *User {
	c := *u
	c.LastLoginDate = cloneString(u.LastLoginDate)
	c.AvatarData = cloneString(u.AvatarData)
	c.LastActiveDate = cloneString(u.LastActiveDate)
	c.Equipped = Equipped{Frame: cloneString(u.Equipped.Frame), Theme: cloneString(u.Equipped.Theme)}
	c.Owned = Owned{Frames: slices.Clone(u.Owned.Frames), Themes: slices.Clone(u.Owned.Themes)}
	c.Activity = slices.Clone(u.Activity)
	c.Achievements = slices.Clone(u.Achievements)
	if u.Quests != nil {
		c.Quests = make([]*Quest, len(u.Quests))
		for i, q := range u.Quests {
			qc := *q
			qc.CompletedAt = cloneString(q.CompletedAt)
			c.Quests[i] = &qc
		}
	}
	return &c
}
