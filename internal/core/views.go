package core

import (
	"github.com/dmitrijs2005/questkeeper/internal/achievements"
	"github.com/dmitrijs2005/questkeeper/internal/economy"
	"github.com/dmitrijs2005/questkeeper/internal/leaderboard"
	"github.com/dmitrijs2005/questkeeper/internal/models"
	"github.com/dmitrijs2005/questkeeper/internal/progression"
)

// RecentActivity is how many activity entries the dashboard shows.
const RecentActivity = 8

// Dashboard is the signed-in user's overview.
type Dashboard struct {
	User      *models.User
	Progress  progression.Progress
	Active    int
	Completed int
	Recent    []models.Activity
}

// Dashboard builds the overview of the signed-in user.
func (s *Service) Dashboard() (Dashboard, error) {
	u, ok := s.CurrentUser()
	if !ok {
		return Dashboard{}, errNotLoggedIn()
	}

	d := Dashboard{User: u, Progress: progression.LevelProgress(u.XP)}
	for _, q := range u.Quests {
		if q.Active() {
			d.Active++
		} else {
			d.Completed++
		}
	}
	d.Recent = u.Activity[:min(len(u.Activity), RecentActivity)]
	return d, nil
}

// ShopEntry is a catalog item as seen by the signed-in user.
type ShopEntry struct {
	economy.Item
	Owned      bool
	Affordable bool
}

// Shop lists the catalog with ownership and affordability.
func (s *Service) Shop() ([]ShopEntry, error) {
	u := s.doc.CurrentUser()
	if u == nil {
		return nil, errNotLoggedIn()
	}
	var out []ShopEntry
	for _, it := range economy.Catalog() {
		out = append(out, ShopEntry{
			Item:       it,
			Owned:      economy.Owns(u, it.Kind, it.Key),
			Affordable: u.Coins >= it.Price,
		})
	}
	return out, nil
}

// InventoryEntry is one owned cosmetic. Keys without a catalog entry, such
// as ones carried in by an import, get a bare Item named after the key.
type InventoryEntry struct {
	economy.Item
	Equipped bool
}

// Inventory lists the owned cosmetics, frames first.
func (s *Service) Inventory() ([]InventoryEntry, error) {
	u := s.doc.CurrentUser()
	if u == nil {
		return nil, errNotLoggedIn()
	}

	var out []InventoryEntry
	add := func(kind economy.Kind, keys []string) {
		for _, k := range keys {
			it, ok := economy.ByKey(kind, k)
			if !ok {
				it = economy.Item{Name: k, Kind: kind, Key: k}
			}
			out = append(out, InventoryEntry{Item: it, Equipped: economy.IsEquipped(u, kind, k)})
		}
	}
	add(economy.KindFrame, u.Owned.Frames)
	add(economy.KindTheme, u.Owned.Themes)
	return out, nil
}

// Achievements lists the catalog with unlock state.
func (s *Service) Achievements() ([]achievements.Status, error) {
	u := s.doc.CurrentUser()
	if u == nil {
		return nil, errNotLoggedIn()
	}
	return achievements.StatusFor(u), nil
}

// Leaderboard ranks every account on the device. It works signed out.
func (s *Service) Leaderboard() []leaderboard.Entry {
	cur := ""
	if id := s.doc.Session.CurrentUserID; id != nil {
		cur = *id
	}
	return leaderboard.Rank(s.doc.Users, cur)
}
