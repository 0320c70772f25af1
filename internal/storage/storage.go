// Package storage provides the local key/value slots QuestKeeper persists
// into. Two backends exist: SQLite (default, a single kv table managed by
// goose migrations) and bbolt (a single bucket in a bolt file).
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/questkeeper/internal/filex"
)

// Backend is a minimal byte-oriented key/value store.
//
// Get returns (nil, nil) when the key is absent. Set overwrites.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	sqliteFileName = "questkeeper.db"
	boltFileName   = "questkeeper.bolt"
)

// Options select and configure a backend.
type Options struct {
	Kind            string // "sqlite" or "bolt"
	Dir             string
	BoltOpenTimeout time.Duration
}

// Open creates the data directory if needed and opens the chosen backend.
func Open(ctx context.Context, opts Options) (Backend, error) {
	dir, err := filex.EnsureDir(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	switch opts.Kind {
	case "sqlite", "":
		return OpenSQLite(ctx, filepath.Join(dir, sqliteFileName))
	case "bolt":
		return OpenBolt(filepath.Join(dir, boltFileName), opts.BoltOpenTimeout)
	}
	return nil, fmt.Errorf("unknown storage backend %q", opts.Kind)
}
