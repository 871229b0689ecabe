package cache

import (
	"context"
	"errors"
	"sync"

	"pastepad/pkg/domain"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU is a read cache for pastes. Pastes are immutable after creation, so
// entries never go stale and carry no TTL.
type LRU struct {
	c  *lru.Cache[string, *domain.Paste]
	mu sync.Mutex
}

func NewLRU(size int) (*LRU, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be positive")
	}
	if size > 100000 {
		return nil, errors.New("cache size too large")
	}
	c, err := lru.New[string, *domain.Paste](size)
	if err != nil {
		return nil, err
	}
	return &LRU{c: c}, nil
}

func (l *LRU) Get(ctx context.Context, id string) *domain.Paste {
	select {
	case <-ctx.Done():
		return nil
	default:
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.c.Get(id)
	if !ok {
		return nil
	}
	return p
}

func (l *LRU) Set(p *domain.Paste) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.c.Add(p.ID, p)
}
