package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/questkeeper/internal/common"
	"github.com/dmitrijs2005/questkeeper/internal/models"
)

type fakeStore struct {
	doc     *models.Document
	saves   int
	saveErr error
	erased  bool
}

func (f *fakeStore) Load(ctx context.Context) *models.Document {
	if f.doc == nil {
		return models.NewDocument()
	}
	return f.doc.Clone()
}

func (f *fakeStore) Save(ctx context.Context, doc *models.Document) error {
	if f.saveErr != nil {
		return common.Persistence("save document", f.saveErr)
	}
	f.saves++
	f.doc = doc.Clone()
	return nil
}

func (f *fakeStore) Erase(ctx context.Context) error {
	f.erased = true
	f.doc = nil
	return nil
}

type notice struct {
	Msg    string
	Kind   NoticeKind
	Detail string
}

type recorder struct{ got []notice }

func (r *recorder) Notify(msg string, kind NoticeKind, detail string) {
	r.got = append(r.got, notice{msg, kind, detail})
}

func (r *recorder) messages() []string {
	out := make([]string, 0, len(r.got))
	for _, n := range r.got {
		out = append(out, n.Msg)
	}
	return out
}

func (r *recorder) reset() { r.got = nil }

type confirmer struct {
	answer  bool
	prompts []string
}

func (c *confirmer) Confirm(prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

type harness struct {
	svc     *Service
	store   *fakeStore
	notes   *recorder
	confirm *confirmer
	now     time.Time
}

func (h *harness) advance(days int) {
	h.now = h.now.AddDate(0, 0, days)
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		store:   &fakeStore{},
		notes:   &recorder{},
		confirm: &confirmer{answer: true},
		now:     time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local),
	}
	n := 0
	h.svc = New(Deps{
		Store:     h.store,
		Notifier:  h.notes,
		Confirmer: h.confirm,
		Clock:     func() time.Time { return h.now },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	})
	require.NoError(t, h.svc.Boot(context.Background()))
	return h
}

func ava() Registration {
	return Registration{
		Username:        "Ava",
		Email:           "ava@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Question:        "pet name?",
		Answer:          "Rex",
	}
}

// signedIn returns a harness with Ava registered and signed in.
func signedIn(t *testing.T) *harness {
	t.Helper()
	h := newHarness(t)
	_, err := h.svc.Register(context.Background(), ava())
	require.NoError(t, err)
	h.notes.reset()
	return h
}
