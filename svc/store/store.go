package store

import (
	"context"

	"pastepad/cfg"
	"pastepad/pkg/domain"

	"github.com/pkg/errors"
)

// Store is a key-value home for pastes. Get returns domain.ErrPasteNotFound
// for missing or unparsable records; List skips records it cannot parse and
// makes no ordering promise.
type Store interface {
	Put(ctx context.Context, p *domain.Paste) error
	Get(ctx context.Context, id string) (*domain.Paste, error)
	List(ctx context.Context) ([]*domain.Paste, error)
	Ping(ctx context.Context) error
	Close() error
}

// Open builds the store selected by STORE_BACKEND.
func Open(c *cfg.Cfg) (Store, error) {
	switch c.StoreBackend {
	case cfg.BackendFile:
		return NewFileStore(c.StoreDir)
	case cfg.BackendSQLite:
		return NewSQLite(c.DatabasePath, c.DBMaxOpenConns, c.DBMaxIdleConns, c.DBQueryTimeout)
	case cfg.BackendRedis:
		return NewRedis(c.RedisURL, c)
	default:
		return nil, errors.Errorf("unknown store backend %q", c.StoreBackend)
	}
}
