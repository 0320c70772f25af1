package core

import (
	"context"

	"github.com/dmitrijs2005/questkeeper/internal/economy"
	"github.com/dmitrijs2005/questkeeper/internal/models"
)

// Purchase buys a catalog item for the signed-in user.
func (s *Service) Purchase(ctx context.Context, itemID string) (economy.Item, error) {
	var item economy.Item
	err := s.withUser(ctx, "purchase", func(_ *models.Document, u *models.User) error {
		var err error
		item, err = economy.Purchase(u, itemID, s.today())
		return err
	})
	if err != nil {
		return economy.Item{}, err
	}
	s.notify.Notify("Purchased!", NoticeInfo, item.Name)
	return item, nil
}

// Equip makes an owned cosmetic the active one for its kind.
func (s *Service) Equip(ctx context.Context, kind economy.Kind, key string) error {
	err := s.withUser(ctx, "equip", func(_ *models.Document, u *models.User) error {
		return economy.Equip(u, kind, key, s.today())
	})
	if err != nil {
		return err
	}
	msg := "Theme equipped!"
	if kind == economy.KindFrame {
		msg = "Frame equipped!"
	}
	s.notify.Notify(msg, NoticeInfo, "")
	return nil
}

// Unequip clears the active cosmetic of kind. It is a no-op when none is set.
func (s *Service) Unequip(ctx context.Context, kind economy.Kind) error {
	err := s.withUser(ctx, "unequip", func(_ *models.Document, u *models.User) error {
		economy.Unequip(u, kind, s.today())
		return nil
	})
	if err != nil {
		return err
	}
	s.notify.Notify("Unequipped.", NoticeInfo, "")
	return nil
}
