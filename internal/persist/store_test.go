package persist

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/questkeeper/internal/common"
	"github.com/dmitrijs2005/questkeeper/internal/logging"
	"github.com/dmitrijs2005/questkeeper/internal/models"
)

type memBackend struct {
	data   map[string][]byte
	getErr error
	setErr error
	delErr error
}

func newMem() *memBackend { return &memBackend{data: map[string][]byte{}} }

func (m *memBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.data[key], nil
}

func (m *memBackend) Set(ctx context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memBackend) Delete(ctx context.Context, key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	return nil
}

func (m *memBackend) Close() error { return nil }

func TestLoad_DefaultsOnMissingOrCorrupt(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"absent", nil},
		{"garbage", []byte("{not json")},
		{"array", []byte(`[1,2,3]`)},
		{"null", []byte(`null`)},
		{"string", []byte(`"hello"`)},
		{"wrong users type", []byte(`{"users":"nope"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := newMem()
			if tt.raw != nil {
				mem.data["slot"] = tt.raw
			}
			s := New(mem, "slot", logging.NewNop())

			doc := s.Load(context.Background())
			assert.Empty(t, cmp.Diff(models.NewDocument(), doc))
		})
	}
}

func TestLoad_BackendErrorYieldsDefault(t *testing.T) {
	mem := newMem()
	mem.getErr = errors.New("locked")
	s := New(mem, "slot", logging.NewNop())

	doc := s.Load(context.Background())
	assert.Empty(t, doc.Users)
	assert.Nil(t, doc.Session.CurrentUserID)
}

func TestLoad_FillsMissingSessionAndUsers(t *testing.T) {
	mem := newMem()
	mem.data["slot"] = []byte(`{"meta":{"version":1}}`)
	s := New(mem, "slot", logging.NewNop())

	doc := s.Load(context.Background())
	require.NotNil(t, doc.Users)
	assert.Empty(t, doc.Users)
	assert.Nil(t, doc.Session.CurrentUserID)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := newMem()
	s := New(mem, "slot", logging.NewNop())

	doc := models.NewDocument()
	u := models.NewUser("u1", "2024-01-01")
	u.Username = "Ava"
	u.LogActivity("2024-01-01", "Created an account.")
	doc.Users = append(doc.Users, u)
	doc.Session.CurrentUserID = models.Ptr("u1")

	require.NoError(t, s.Save(ctx, doc))
	got := s.Load(ctx)
	assert.Empty(t, cmp.Diff(doc, got))
}

func TestSave_WrapsBackendError(t *testing.T) {
	mem := newMem()
	mem.setErr = errors.New("read-only")
	s := New(mem, "slot", logging.NewNop())

	err := s.Save(context.Background(), models.NewDocument())
	require.ErrorIs(t, err, common.ErrPersistence)
	require.ErrorIs(t, err, mem.setErr)
}

func TestErase(t *testing.T) {
	ctx := context.Background()
	mem := newMem()
	s := New(mem, "slot", logging.NewNop())

	require.NoError(t, s.Save(ctx, models.NewDocument()))
	require.NoError(t, s.Erase(ctx))
	assert.NotContains(t, mem.data, "slot")

	mem.delErr = errors.New("nope")
	require.ErrorIs(t, s.Erase(ctx), common.ErrPersistence)
}
