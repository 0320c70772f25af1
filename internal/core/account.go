package core

import (
	"context"

	"github.com/dmitrijs2005/questkeeper/internal/models"
	"github.com/dmitrijs2005/questkeeper/internal/saves"
)

// ResetAccount wipes the signed-in user's progression, quests, activity
// and achievements. Identity, credentials, profile, cosmetics and coins
// survive.
func (s *Service) ResetAccount(ctx context.Context) error {
	if s.doc.CurrentUser() == nil {
		return errNotLoggedIn()
	}
	if err := s.gate(ctx, "reset account", "Reset your quests and stats?"); err != nil {
		return err
	}

	err := s.commit(ctx, "reset account", func(doc *models.Document) (*models.User, error) {
		u := doc.CurrentUser()
		if u == nil {
			return nil, errNotLoggedIn()
		}
		fresh := models.NewUser(u.ID, u.Created)
		fresh.Username = u.Username
		fresh.Email = u.Email
		fresh.PassHash = u.PassHash
		fresh.Security = u.Security
		fresh.AvatarData = u.AvatarData
		fresh.Bio = u.Bio
		fresh.Owned = u.Owned
		fresh.Equipped = u.Equipped
		fresh.Coins = u.Coins

		for i := range doc.Users {
			if doc.Users[i].ID == u.ID {
				doc.Users[i] = fresh
			}
		}
		return nil, nil
	})
	if err != nil {
		return err
	}
	s.notify.Notify("Account reset done.", NoticeInfo, "")
	return nil
}

// DeleteAccount removes the signed-in user from this device and signs out.
func (s *Service) DeleteAccount(ctx context.Context) error {
	if s.doc.CurrentUser() == nil {
		return errNotLoggedIn()
	}
	if err := s.gate(ctx, "delete account", "Delete your account from this device?"); err != nil {
		return err
	}

	err := s.commit(ctx, "delete account", func(doc *models.Document) (*models.User, error) {
		doc.RemoveUser(*doc.Session.CurrentUserID)
		doc.Session.CurrentUserID = nil
		return nil, nil
	})
	if err != nil {
		return err
	}
	s.notify.Notify("Account deleted.", NoticeInfo, "")
	return nil
}

// FactoryReset erases the stored document, dropping every account.
func (s *Service) FactoryReset(ctx context.Context) error {
	if err := s.gate(ctx, "factory reset", "Factory reset deletes ALL users from this device. Continue?"); err != nil {
		return err
	}
	if err := s.store.Erase(ctx); err != nil {
		s.log.Error(ctx, "erase failed", "error", err)
		return err
	}
	s.doc = models.NewDocument()
	s.log.Info(ctx, "factory reset")
	s.notify.Notify("Factory reset complete.", NoticeInfo, "")
	return nil
}

// Export serializes the live document.
func (s *Service) Export() ([]byte, error) {
	return saves.Export(s.doc)
}

// Import replaces users and session with those in raw. Nothing changes
// when raw is rejected.
func (s *Service) Import(ctx context.Context, raw []byte) error {
	next, err := saves.Import(s.doc, raw)
	if err != nil {
		s.log.Warn(ctx, "import rejected", "error", err)
		return err
	}

	err = s.commit(ctx, "import", func(doc *models.Document) (*models.User, error) {
		doc.Users = next.Users
		doc.Session = next.Session
		return nil, nil
	})
	if err != nil {
		return err
	}
	s.notify.Notify("Save imported!", NoticeInfo, "")
	return nil
}
