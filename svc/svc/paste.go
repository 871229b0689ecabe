package svc

import (
	"context"
	"sort"
	"time"

	"pastepad/cfg"
	"pastepad/metrics"
	"pastepad/pkg/domain"
	"pastepad/svc/cache"
	"pastepad/svc/store"
	"pastepad/svc/util"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

type Paste struct {
	store store.Store
	lru   *cache.LRU
	cfg   *cfg.Cfg
}

func NewPaste(st store.Store, lru *cache.LRU, c *cfg.Cfg) *Paste {
	if st == nil || lru == nil || c == nil {
		panic("paste service: nil dependency (store, lru, or cfg)")
	}
	return &Paste{store: st, lru: lru, cfg: c}
}

// Create persists a new paste. The generated id is not checked against
// existing records; a collision overwrites the older paste.
func (p *Paste) Create(ctx context.Context, params domain.CreateParams) (*domain.Paste, error) {
	if params.Content == "" {
		return nil, domain.ErrContentRequired
	}
	if int64(len(params.Content)) > p.cfg.MaxPasteSize {
		return nil, domain.ErrPasteTooLarge
	}
	id := util.NewPasteID()
	title := norm.NFC.String(params.Title)
	if title == "" {
		title = domain.DefaultTitle(id)
	}
	paste := &domain.Paste{
		ID:          id,
		Content:     params.Content,
		Title:       title,
		Description: norm.NFC.String(params.Description),
		CreatedAt:   time.Now(),
	}
	if err := p.store.Put(ctx, paste); err != nil {
		return nil, errors.Wrap(err, "put paste")
	}
	p.lru.Set(paste)
	metrics.PasteCreated.Inc()
	util.Info().Str("paste_id", id).Int("content_len", len(params.Content)).Msg("paste created")
	return paste, nil
}

func (p *Paste) Get(ctx context.Context, id string) (*domain.Paste, error) {
	if paste := p.lru.Get(ctx, id); paste != nil {
		metrics.CacheHits.Inc()
		metrics.PasteRetrieved.Inc()
		return paste, nil
	}
	metrics.CacheMisses.Inc()
	paste, err := p.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPasteNotFound) {
			return nil, domain.ErrPasteNotFound
		}
		return nil, errors.Wrap(err, "get paste")
	}
	p.lru.Set(paste)
	metrics.PasteRetrieved.Inc()
	return paste, nil
}

// List returns every parsable paste in the store, newest first.
func (p *Paste) List(ctx context.Context) ([]*domain.Paste, error) {
	pastes, err := p.store.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list pastes")
	}
	sort.Slice(pastes, func(i, j int) bool {
		if !pastes[i].CreatedAt.Equal(pastes[j].CreatedAt) {
			return pastes[i].CreatedAt.After(pastes[j].CreatedAt)
		}
		return pastes[i].ID < pastes[j].ID
	})
	metrics.ListScans.Inc()
	return pastes, nil
}
