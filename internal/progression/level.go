// Package progression implements the leveling curve, difficulty rewards,
// daily streaks and the quest lifecycle. Functions mutate the *models.User
// they are given and never touch persistence; callers commit afterwards.
package progression

import "math"

// XPForLevel is the total XP needed to reach level. Level 1 starts at 0.
// Thresholds past the int range saturate at math.MaxInt.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	f := math.Floor(100 * math.Pow(float64(level-1), 1.6))
	if f >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(f)
}

// LevelFromXP returns the greatest level whose threshold xp has reached.
// A saturated threshold is never reached.
func LevelFromXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	// Closed-form inverse of the curve, then fix float rounding.
	lvl := 1 + int(math.Pow(float64(xp)/100, 1/1.6))
	for lvl > 1 && (XPForLevel(lvl) > xp || XPForLevel(lvl) == math.MaxInt) {
		lvl--
	}
	for {
		next := XPForLevel(lvl + 1)
		if next == math.MaxInt || xp < next {
			return lvl
		}
		lvl++
	}
}

// Progress describes where xp sits inside its level.
type Progress struct {
	Level              int
	XPIntoLevel        int
	XPSpanOfLevel      int
	Percent            float64
	NextLevelThreshold int
}

func LevelProgress(xp int) Progress {
	lvl := LevelFromXP(xp)
	cur := XPForLevel(lvl)
	next := XPForLevel(lvl + 1)
	into := xp - cur
	span := max(1, next-cur)

	pct := float64(into) / float64(span) * 100
	pct = math.Max(0, math.Min(100, pct))

	return Progress{
		Level:              lvl,
		XPIntoLevel:        into,
		XPSpanOfLevel:      span,
		Percent:            pct,
		NextLevelThreshold: next,
	}
}

// Reward is what completing a quest grants.
type Reward struct {
	XP    int
	Coins int
}

// RewardFor maps a difficulty label to its reward; unknown labels get 20/15.
func RewardFor(difficulty string) Reward {
	switch difficulty {
	case "Easy":
		return Reward{XP: 15, Coins: 12}
	case "Medium":
		return Reward{XP: 30, Coins: 22}
	case "Hard":
		return Reward{XP: 55, Coins: 40}
	case "Epic":
		return Reward{XP: 90, Coins: 70}
	default:
		return Reward{XP: 20, Coins: 15}
	}
}

// addSat adds a non-negative delta to n, stopping at math.MaxInt.
func addSat(n, delta int) int {
	if n > math.MaxInt-delta {
		return math.MaxInt
	}
	return n + delta
}

// LevelUpBonus is the coin bonus granted on reaching level.
func LevelUpBonus(level int) int {
	return 50 + 5*level
}
