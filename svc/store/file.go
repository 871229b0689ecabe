package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"pastepad/pkg/domain"
	"pastepad/svc/util"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// FileStore keeps one JSON document per paste under dir, named {id}.json.
// Writes are plain os.WriteFile calls: concurrent writes to the same id race
// at the filesystem level and the last one wins.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("store dir required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create store dir")
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) pathFor(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *FileStore) Put(ctx context.Context, p *domain.Paste) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "marshal paste")
	}
	if err := os.WriteFile(s.pathFor(p.ID), data, 0o600); err != nil {
		return errors.Wrapf(err, "write %s", s.pathFor(p.ID))
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, id string) (*domain.Paste, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrPasteNotFound
		}
		return nil, errors.Wrapf(err, "read %s", s.pathFor(id))
	}
	var p domain.Paste
	if err := json.Unmarshal(data, &p); err != nil {
		// A record we cannot parse is as good as absent.
		util.Warn().Err(err).Str("id", id).Msg("unparsable paste record")
		return nil, domain.ErrPasteNotFound
	}
	return &p, nil
}

func (s *FileStore) List(ctx context.Context) ([]*domain.Paste, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(err, "scan store dir")
	}
	var (
		mu     sync.Mutex
		pastes []*domain.Paste
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU() * 2)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		id := strings.TrimSuffix(name, ".json")
		g.Go(func() error {
			p, err := s.Get(ctx, id)
			if err != nil {
				if errors.Is(err, domain.ErrPasteNotFound) {
					return nil
				}
				return err
			}
			mu.Lock()
			pastes = append(pastes, p)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pastes, nil
}

func (s *FileStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.dir)
	if err != nil {
		return errors.Wrap(err, "stat store dir")
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", s.dir)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
