package core

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/questkeeper/internal/common"
	"github.com/dmitrijs2005/questkeeper/internal/models"
	"github.com/dmitrijs2005/questkeeper/internal/progression"
)

// AddQuest creates a quest for the signed-in user.
func (s *Service) AddQuest(ctx context.Context, title, difficulty, notes string) (*models.Quest, error) {
	var q *models.Quest
	err := s.withUser(ctx, "add quest", func(_ *models.Document, u *models.User) error {
		var err error
		q, err = progression.AddQuest(u, s.newID(), title, difficulty, notes, s.today())
		return err
	})
	if err != nil {
		return nil, err
	}
	s.notify.Notify("Quest added!", NoticeInfo, "")
	return cloneQuest(q), nil
}

// AddExampleQuests adds the sample quests in one commit and returns how
// many were added.
func (s *Service) AddExampleQuests(ctx context.Context) (int, error) {
	n := 0
	err := s.withUser(ctx, "add example quests", func(_ *models.Document, u *models.User) error {
		today := s.today()
		for _, e := range progression.Examples {
			if _, err := progression.AddQuest(u, s.newID(), e.Title, e.Difficulty, e.Notes, today); err == nil {
				n++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.notify.Notify("Example quests added!", NoticeInfo, "")
	return n, nil
}

// CompleteQuest grants the quest's reward. ok is false, and nothing is
// saved, when the quest is unknown or already completed.
func (s *Service) CompleteQuest(ctx context.Context, id string) (c progression.Completion, ok bool, err error) {
	u := s.doc.CurrentUser()
	if u == nil {
		return c, false, errNotLoggedIn()
	}
	if q := u.Quest(id); q == nil || !q.Active() {
		return c, false, nil
	}

	err = s.withUser(ctx, "complete quest", func(_ *models.Document, u *models.User) error {
		c, ok = progression.CompleteQuest(u, id, s.today())
		return nil
	})
	if err != nil {
		return progression.Completion{}, false, err
	}

	if c.LeveledUp {
		s.notify.Notify(fmt.Sprintf("LEVEL UP! You're now level %d", c.NewLevel), NoticeInfo, "Keep going!")
	}
	s.notify.Notify("Quest completed!", NoticeInfo, fmt.Sprintf("+%d XP • +%d 🪙", c.Reward.XP, c.Reward.Coins))
	c.Quest = cloneQuest(c.Quest)
	return c, ok, nil
}

// UndoQuest reopens a completed quest without taking back its reward.
// It reports false, saving nothing, when there is nothing to reopen.
func (s *Service) UndoQuest(ctx context.Context, id string) (bool, error) {
	u := s.doc.CurrentUser()
	if u == nil {
		return false, errNotLoggedIn()
	}
	if q := u.Quest(id); q == nil || q.Active() {
		return false, nil
	}

	err := s.withUser(ctx, "undo quest", func(_ *models.Document, u *models.User) error {
		progression.UndoQuest(u, id, s.today())
		return nil
	})
	if err != nil {
		return false, err
	}
	s.notify.Notify("Quest reopened.", NoticeInfo, "")
	return true, nil
}

// EditQuest changes the title and notes of a quest.
func (s *Service) EditQuest(ctx context.Context, id, title, notes string) (*models.Quest, error) {
	var q *models.Quest
	err := s.withUser(ctx, "edit quest", func(_ *models.Document, u *models.User) error {
		var err error
		q, err = progression.EditQuest(u, id, title, notes, s.today())
		return err
	})
	if err != nil {
		return nil, err
	}
	s.notify.Notify("Quest updated.", NoticeInfo, "")
	return cloneQuest(q), nil
}

// DeleteQuest removes a quest after confirmation.
func (s *Service) DeleteQuest(ctx context.Context, id string) error {
	u := s.doc.CurrentUser()
	if u == nil {
		return errNotLoggedIn()
	}
	q := u.Quest(id)
	if q == nil {
		return common.State("Quest not found.")
	}
	if err := s.gate(ctx, "delete quest", fmt.Sprintf("Delete quest %q?", q.Title)); err != nil {
		return err
	}

	err := s.withUser(ctx, "delete quest", func(_ *models.Document, u *models.User) error {
		_, err := progression.DeleteQuest(u, id, s.today())
		return err
	})
	if err != nil {
		return err
	}
	s.notify.Notify("Quest deleted.", NoticeInfo, "")
	return nil
}

// Quests lists the signed-in user's quests; see progression.ListQuests.
func (s *Service) Quests(filter, search string) ([]*models.Quest, error) {
	u := s.doc.CurrentUser()
	if u == nil {
		return nil, errNotLoggedIn()
	}
	list := progression.ListQuests(u, filter, search)
	out := make([]*models.Quest, len(list))
	for i, q := range list {
		out[i] = cloneQuest(q)
	}
	return out, nil
}

func cloneQuest(q *models.Quest) *models.Quest {
	if q == nil {
		return nil
	}
	c := *q
	if q.CompletedAt != nil {
		c.CompletedAt = models.Ptr(*q.CompletedAt)
	}
	return &c
}
