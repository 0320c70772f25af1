// Package persist keeps the whole application document in one key/value
// slot. Load never fails: a missing, unparsable or non-object slot yields
// the default document and the loss is logged, not surfaced.
package persist

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/questkeeper/internal/common"
	"github.com/dmitrijs2005/questkeeper/internal/logging"
	"github.com/dmitrijs2005/questkeeper/internal/models"
	"github.com/dmitrijs2005/questkeeper/internal/storage"
)

type Store struct {
	backend storage.Backend
	key     string
	log     logging.Logger
}

func New(backend storage.Backend, key string, log logging.Logger) *Store {
	return &Store{backend: backend, key: key, log: log.With("component", "persist", "key", key)}
}

// Load reads and structurally defaults the document.
func (s *Store) Load(ctx context.Context) *models.Document {
	raw, err := s.backend.Get(ctx, s.key)
	if err != nil {
		s.log.Warn(ctx, "document unreadable, starting fresh", "error", err)
		return models.NewDocument()
	}
	if raw == nil {
		s.log.Debug(ctx, "no saved document, starting fresh")
		return models.NewDocument()
	}

	doc, err := Decode(raw)
	if err != nil {
		s.log.Warn(ctx, "document corrupt, starting fresh", "error", err, "bytes", len(raw))
		return models.NewDocument()
	}
	return doc
}

// Save writes the full document. Nothing is written if encoding fails.
func (s *Store) Save(ctx context.Context, doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return common.Persistence("encode document", err)
	}
	if err := s.backend.Set(ctx, s.key, raw); err != nil {
		return common.Persistence("save document", err)
	}
	s.log.Debug(ctx, "document saved", "bytes", len(raw), "users", len(doc.Users))
	return nil
}

// Erase removes the slot entirely; the next Load returns the default document.
func (s *Store) Erase(ctx context.Context) error {
	if err := s.backend.Delete(ctx, s.key); err != nil {
		return common.Persistence("erase document", err)
	}
	return nil
}

// Decode parses raw into a normalized document. Anything other than a JSON
// object is rejected.
func Decode(raw []byte) (*models.Document, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, common.Import("document is not a JSON object")
	}

	doc := models.NewDocument()
	if err := json.Unmarshal(trimmed, doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return doc, nil
}
