package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrijs2005/questkeeper/internal/achievements"
	"github.com/dmitrijs2005/questkeeper/internal/core"
	"github.com/dmitrijs2005/questkeeper/internal/leaderboard"
	"github.com/dmitrijs2005/questkeeper/internal/models"
	"github.com/dmitrijs2005/questkeeper/internal/progression"
	"github.com/dmitrijs2005/questkeeper/internal/timex"
)

// Renderer turns read-only views into text. Numbers are grouped the
// English way (1,234).
type Renderer struct {
	w   io.Writer
	p   *message.Printer
	now timex.Clock
}

func NewRenderer(w io.Writer, now timex.Clock) *Renderer {
	return &Renderer{w: w, p: message.NewPrinter(language.English), now: now}
}

func (r *Renderer) table() *tabwriter.Writer {
	return tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
}

func bar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// ago renders a stored calendar day relative to now ("3 days ago").
func (r *Renderer) ago(day *string) string {
	if day == nil {
		return "never"
	}
	t, err := time.ParseInLocation(timex.DateLayout, *day, time.Local)
	if err != nil {
		return *day
	}
	if timex.Today(r.now()) == *day {
		return "today"
	}
	return humanize.RelTime(t, r.now(), "ago", "from now")
}

func (r *Renderer) Dashboard(d core.Dashboard) {
	u, lp := d.User, d.Progress
	r.p.Fprintf(r.w, "%s  Lv %d  %s %.0f%%  (%d / %d XP, next level at %d)\n",
		u.Username, lp.Level, bar(lp.Percent, 20), lp.Percent, lp.XPIntoLevel, lp.XPSpanOfLevel, lp.NextLevelThreshold)
	r.p.Fprintf(r.w, "Coins: %d 🪙   Streak: %d 🔥   Quests: %d active, %d completed\n",
		u.Coins, u.Streak, d.Active, d.Completed)

	fmt.Fprintln(r.w, "Recent activity:")
	if len(d.Recent) == 0 {
		fmt.Fprintln(r.w, "  (nothing yet)")
		return
	}
	for _, a := range d.Recent {
		fmt.Fprintf(r.w, "  %s  %s\n", a.Date, a.Text)
	}
}

// Quests prints a numbered table; numbers index into the same slice.
func (r *Renderer) Quests(list []*models.Quest) {
	if len(list) == 0 {
		fmt.Fprintln(r.w, "No quests here. Try 'add' or 'examples'.")
		return
	}
	tw := r.table()
	fmt.Fprintln(tw, "#\tSTATUS\tDIFFICULTY\tREWARD\tTITLE\tNOTES")
	for i, q := range list {
		status := "active"
		if !q.Active() {
			status = "done " + *q.CompletedAt
		}
		rw := progression.RewardFor(q.Difficulty)
		r.p.Fprintf(tw, "%d\t%s\t%s\t+%d XP +%d 🪙\t%s\t%s\n", i+1, status, q.Difficulty, rw.XP, rw.Coins, q.Title, q.Notes)
	}
	_ = tw.Flush()
}

func (r *Renderer) Shop(items []core.ShopEntry, coins int) {
	r.p.Fprintf(r.w, "You have %d 🪙\n", coins)
	tw := r.table()
	fmt.Fprintln(tw, "ID\tNAME\tKIND\tPRICE\tSTATUS\tDESCRIPTION")
	for _, it := range items {
		status := "buy"
		switch {
		case it.Owned:
			status = "owned"
		case !it.Affordable:
			status = "too pricey"
		}
		r.p.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n", it.ID, it.Name, it.Kind, it.Price, status, it.Description)
	}
	_ = tw.Flush()
}

func (r *Renderer) Inventory(items []core.InventoryEntry) {
	if len(items) == 0 {
		fmt.Fprintln(r.w, "No cosmetics owned yet. Visit the shop.")
		return
	}
	tw := r.table()
	fmt.Fprintln(tw, "KIND\tKEY\tNAME\tSTATUS")
	for _, it := range items {
		status := "owned"
		if it.Equipped {
			status = "equipped"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", it.Kind, it.Key, it.Name, status)
	}
	_ = tw.Flush()
}

func (r *Renderer) Achievements(list []achievements.Status) {
	got := 0
	tw := r.table()
	for _, a := range list {
		status := "locked"
		if a.Unlocked {
			status = "unlocked"
			got++
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%s\n", a.Icon, a.Name, a.Description, status)
	}
	_ = tw.Flush()
	fmt.Fprintf(r.w, "%d of %d unlocked\n", got, len(list))
}

func (r *Renderer) Leaderboard(entries []leaderboard.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(r.w, "No adventurers on this device yet.")
		return
	}
	tw := r.table()
	fmt.Fprintln(tw, "RANK\tNAME\tLEVEL\tXP\tQUESTS\tSTREAK\tSCORE")
	for _, e := range entries {
		name := e.Username
		if e.IsCurrent {
			name += " (you)"
		}
		r.p.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\n", e.Rank, name, e.Level, e.XP, e.Quests, e.Streak, e.Score)
	}
	_ = tw.Flush()
}

func (r *Renderer) Profile(u *models.User) {
	tw := r.table()
	fmt.Fprintf(tw, "Username\t%s\n", u.Username)
	fmt.Fprintf(tw, "Email\t%s\n", u.Email)
	fmt.Fprintf(tw, "Bio\t%s\n", u.Bio)
	fmt.Fprintf(tw, "Member since\t%s\n", u.Created)
	fmt.Fprintf(tw, "Last login\t%s\n", r.ago(u.LastLoginDate))
	fmt.Fprintf(tw, "Last quest\t%s\n", r.ago(u.LastActiveDate))
	fmt.Fprintf(tw, "Picture\t%s\n", picture(u))
	fmt.Fprintf(tw, "Frame\t%s\n", orNone(u.Equipped.Frame))
	fmt.Fprintf(tw, "Theme\t%s\n", orNone(u.Equipped.Theme))
	r.p.Fprintf(tw, "Coins earned\t%d\n", u.TotalCoinsEarned)
	_ = tw.Flush()
}

func picture(u *models.User) string {
	if u.AvatarData == nil || *u.AvatarData == "" {
		return "none"
	}
	return humanize.Bytes(uint64(len(*u.AvatarData))) + " image"
}

func orNone(s *string) string {
	if s == nil {
		return "none"
	}
	return *s
}
