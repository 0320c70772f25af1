// Package economy implements the cosmetic shop: purchasing items with coins
// and equipping owned frames and themes.
package economy

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/questkeeper/internal/common"
	"github.com/dmitrijs2005/questkeeper/internal/models"
)

// Kind is the cosmetic slot an item occupies.
type Kind string

const (
	KindFrame Kind = "frame"
	KindTheme Kind = "theme"
)

// ParseKind accepts "frame" or "theme".
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindFrame, KindTheme:
		return Kind(s), nil
	}
	return "", common.Validation("Unknown item type %q.", s)
}

// Item is a catalog entry. Key is what ownership and equipment record.
type Item struct {
	ID          string
	Name        string
	Description string
	Kind        Kind
	Key         string
	Price       int
}

var catalog = []Item{
	{"frame_glow", "Glow Frame", "A bright, icy-blue glow around your avatar.", KindFrame, "frame-glow", 250},
	{"frame_royal", "Royal Frame", "A golden, legendary-looking border.", KindFrame, "frame-royal", 400},
	{"frame_shadow", "Shadow Frame", "A dark, sleek border for stealth builds.", KindFrame, "frame-shadow", 200},
	{"theme_neon", "Neon Theme", "Stronger neon highlights across the UI.", KindTheme, "neon", 300},
	{"theme_emerald", "Emerald Theme", "Green-tinted highlights for calm focus.", KindTheme, "emerald", 300},
	{"theme_rose", "Rose Theme", "Warm rose accents. Cozy and confident.", KindTheme, "rose", 300},
}

func Catalog() []Item {
	return slices.Clone(catalog)
}

func ByID(id string) (Item, bool) {
	for _, it := range catalog {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// ByKey finds the catalog item recorded under key for kind.
func ByKey(kind Kind, key string) (Item, bool) {
	for _, it := range catalog {
		if it.Kind == kind && it.Key == key {
			return it, true
		}
	}
	return Item{}, false
}

func owned(u *models.User, kind Kind) *[]string {
	if kind == KindFrame {
		return &u.Owned.Frames
	}
	return &u.Owned.Themes
}

func equipped(u *models.User, kind Kind) **string {
	if kind == KindFrame {
		return &u.Equipped.Frame
	}
	return &u.Equipped.Theme
}

// Owns reports whether u holds key in kind's inventory.
func Owns(u *models.User, kind Kind, key string) bool {
	return slices.Contains(*owned(u, kind), key)
}

// IsEquipped reports whether key is the active cosmetic for kind.
func IsEquipped(u *models.User, kind Kind, key string) bool {
	cur := *equipped(u, kind)
	return cur != nil && *cur == key
}

// Purchase deducts the price of itemID and records ownership.
func Purchase(u *models.User, itemID, today string) (Item, error) {
	item, ok := ByID(itemID)
	if !ok {
		return Item{}, common.State("Unknown shop item.")
	}
	if u.Coins < item.Price {
		return Item{}, common.Economy("Not enough coins.")
	}
	inv := owned(u, item.Kind)
	if slices.Contains(*inv, item.Key) {
		return Item{}, common.Economy("Already owned.")
	}

	*inv = append(*inv, item.Key)
	u.Coins -= item.Price
	u.LogActivity(today, fmt.Sprintf("Bought: %s (-%d coins)", item.Name, item.Price))
	return item, nil
}

// Equip makes an owned key the active cosmetic for kind.
func Equip(u *models.User, kind Kind, key, today string) error {
	if !Owns(u, kind, key) {
		return common.Economy("You don't own that %s.", kind)
	}
	*equipped(u, kind) = models.Ptr(key)
	u.LogActivity(today, fmt.Sprintf("Equipped %s.", kind))
	return nil
}

// Unequip clears kind's slot. Clearing an empty slot still succeeds.
func Unequip(u *models.User, kind Kind, today string) {
	*equipped(u, kind) = nil
	u.LogActivity(today, fmt.Sprintf("Unequipped %s.", kind))
}
