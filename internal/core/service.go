// Package core is the single entry point the presentation layer talks to.
//
// A Service owns the in-memory application document. Every mutating
// operation runs against a deep copy: the copy is validated and changed,
// achievements are re-evaluated, the copy is saved, and only then does it
// replace the live document. A failed operation therefore leaves both the
// live document and the stored one exactly as they were.
//
// The presentation layer supplies a Notifier for outcome messages and a
// Confirmer that gates irreversible operations. Errors are returned, never
// notified; the caller decides how to surface them.
package core

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/questkeeper/internal/achievements"
	"github.com/dmitrijs2005/questkeeper/internal/common"
	"github.com/dmitrijs2005/questkeeper/internal/credentials"
	"github.com/dmitrijs2005/questkeeper/internal/logging"
	"github.com/dmitrijs2005/questkeeper/internal/models"
	"github.com/dmitrijs2005/questkeeper/internal/timex"
)

// Store persists the whole document. persist.Store implements it.
type Store interface {
	Load(ctx context.Context) *models.Document
	Save(ctx context.Context, doc *models.Document) error
	Erase(ctx context.Context) error
}

// NoticeKind classifies a notification.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

// Notifier receives user-facing outcome messages. detail may be empty.
type Notifier interface {
	Notify(msg string, kind NoticeKind, detail string)
}

// Confirmer asks the user a yes/no question before an irreversible change.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Deps wires a Service. Store, Notifier and Confirmer are required; the
// rest fall back to the fingerprint hasher, the wall clock, a no-op logger
// and random UUIDs.
type Deps struct {
	Store     Store
	Notifier  Notifier
	Confirmer Confirmer
	Hasher    credentials.Hasher
	Clock     timex.Clock
	Log       logging.Logger
	NewID     func() string
}

// Service holds the live document and runs every operation against it.
type Service struct {
	store   Store
	notify  Notifier
	confirm Confirmer
	hasher  credentials.Hasher
	clock   timex.Clock
	log     logging.Logger
	newID   func() string

	doc *models.Document
}

// New builds a Service holding an empty document. Call Boot to load the
// stored one.
func New(d Deps) *Service {
	s := &Service{
		store:   d.Store,
		notify:  d.Notifier,
		confirm: d.Confirmer,
		hasher:  d.Hasher,
		clock:   d.Clock,
		log:     d.Log,
		newID:   d.NewID,
		doc:     models.NewDocument(),
	}
	if s.hasher == nil {
		s.hasher = credentials.FingerprintHasher{}
	}
	if s.clock == nil {
		s.clock = timex.SystemClock
	}
	if s.log == nil {
		s.log = logging.NewNop()
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

// Boot loads the stored document. A session pointing at a user that no
// longer exists is cleared; otherwise the signed-in user's achievements are
// re-evaluated. Either way the result is saved.
func (s *Service) Boot(ctx context.Context) error {
	s.doc = s.store.Load(ctx)

	return s.commit(ctx, "boot", func(doc *models.Document) (*models.User, error) {
		u := doc.CurrentUser()
		if u == nil {
			doc.Session.CurrentUserID = nil
		}
		return u, nil
	})
}

func (s *Service) today() string {
	return timex.Today(s.clock())
}

// commit runs fn on a copy of the document. fn returns the user whose
// achievements should be evaluated, or nil. The copy is saved and swapped
// in only when fn and the save both succeed; unlock notifications are sent
// after that.
func (s *Service) commit(ctx context.Context, op string, fn func(doc *models.Document) (*models.User, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	next := s.doc.Clone()
	u, err := fn(next)
	if err != nil {
		s.log.Warn(ctx, "operation rejected", "op", op, "error", err)
		return err
	}

	var unlocked []achievements.Achievement
	if u != nil {
		unlocked = achievements.Evaluate(u)
	}

	if err := s.store.Save(ctx, next); err != nil {
		s.log.Error(ctx, "save failed", "op", op, "error", err)
		return err
	}
	s.doc = next
	s.log.Debug(ctx, "operation committed", "op", op, "unlocked", len(unlocked))

	for _, a := range unlocked {
		s.notify.Notify("Achievement unlocked: "+a.Icon+" "+a.Name, NoticeInfo, a.Description)
	}
	return nil
}

// withUser is commit for operations that need a signed-in user.
func (s *Service) withUser(ctx context.Context, op string, fn func(doc *models.Document, u *models.User) error) error {
	return s.commit(ctx, op, func(doc *models.Document) (*models.User, error) {
		u := doc.CurrentUser()
		if u == nil {
			return nil, errNotLoggedIn()
		}
		if err := fn(doc, u); err != nil {
			return nil, err
		}
		return u, nil
	})
}

func errNotLoggedIn() error {
	return common.State("You are not logged in.")
}

// gate asks the Confirmer and returns common.ErrCancelled on refusal.
func (s *Service) gate(ctx context.Context, op, prompt string) error {
	if s.confirm.Confirm(prompt) {
		return nil
	}
	s.log.Debug(ctx, "operation declined", "op", op)
	return common.ErrCancelled
}

// CurrentUser returns a copy of the signed-in user.
func (s *Service) CurrentUser() (*models.User, bool) {
	u := s.doc.CurrentUser()
	if u == nil {
		return nil, false
	}
	return u.Clone(), true
}

// Document returns a copy of the live document.
func (s *Service) Document() *models.Document {
	return s.doc.Clone()
}
