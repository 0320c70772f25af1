package core

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/questkeeper/internal/avatar"
	"github.com/dmitrijs2005/questkeeper/internal/common"
	"github.com/dmitrijs2005/questkeeper/internal/models"
)

// MaxBio is the stored bio length in characters.
const MaxBio = 140

// UpdateProfile changes the display name and bio of the signed-in user.
// Names are unique on the device, ignoring case.
func (s *Service) UpdateProfile(ctx context.Context, username, bio string) error {
	username = strings.TrimSpace(username)
	if err := validateUsername(username, "Username too short.", "Username too long."); err != nil {
		return err
	}
	bio = strings.TrimSpace(bio)
	if r := []rune(bio); len(r) > MaxBio {
		bio = string(r[:MaxBio])
	}

	err := s.withUser(ctx, "update profile", func(doc *models.Document, u *models.User) error {
		for _, other := range doc.Users {
			if other.ID != u.ID && strings.EqualFold(other.Username, username) {
				return common.Conflict("That username is taken on this device.")
			}
		}
		u.Username = username
		u.Bio = bio
		u.LogActivity(s.today(), "Updated profile.")
		return nil
	})
	if err != nil {
		return err
	}
	s.notify.Notify("Profile saved!", NoticeInfo, "")
	return nil
}

// SetAvatar runs raw through the avatar pipeline and stores the result.
func (s *Service) SetAvatar(ctx context.Context, raw []byte) error {
	if s.doc.CurrentUser() == nil {
		return errNotLoggedIn()
	}
	url, err := avatar.Process(raw)
	if err != nil {
		return err
	}

	err = s.withUser(ctx, "set avatar", func(_ *models.Document, u *models.User) error {
		u.AvatarData = models.Ptr(url)
		u.LogActivity(s.today(), "Set a new profile picture.")
		return nil
	})
	if err != nil {
		return err
	}
	s.notify.Notify("Profile picture updated!", NoticeInfo, "")
	return nil
}

// ClearAvatar removes the profile picture of the signed-in user.
func (s *Service) ClearAvatar(ctx context.Context) error {
	err := s.withUser(ctx, "clear avatar", func(_ *models.Document, u *models.User) error {
		u.AvatarData = nil
		u.LogActivity(s.today(), "Removed profile picture.")
		return nil
	})
	if err != nil {
		return err
	}
	s.notify.Notify("Profile picture removed.", NoticeInfo, "")
	return nil
}
