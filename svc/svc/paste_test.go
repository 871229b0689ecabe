package svc

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pastepad/cfg"
	"pastepad/pkg/domain"
	"pastepad/svc/cache"
	"pastepad/svc/store"
	"pastepad/svc/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *cfg.Cfg {
	return &cfg.Cfg{
		Port:           "0",
		Environment:    "test",
		LogLevel:       "error",
		StoreBackend:   cfg.BackendFile,
		LRUCacheSize:   100,
		MaxPasteSize:   64 * 1024,
		ContextTimeout: 5 * time.Second,
	}
}

func newTestService(t *testing.T) (*Paste, *store.FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := store.NewFileStore(dir)
	require.NoError(t, err)
	lru, err := cache.NewLRU(100)
	require.NoError(t, err)
	return NewPaste(st, lru, testConfig()), st, dir
}

func TestCreateAppliesDefaults(t *testing.T) {
	p, _, _ := newTestService(t)
	paste, err := p.Create(context.Background(), domain.CreateParams{Content: "hello world"})
	require.NoError(t, err)
	assert.Len(t, paste.ID, util.PasteIDLen)
	assert.Equal(t, "Paste "+paste.ID, paste.Title)
	assert.Equal(t, "", paste.Description)
	assert.WithinDuration(t, time.Now(), paste.CreatedAt, 5*time.Second)
}

func TestCreateKeepsExplicitMetadata(t *testing.T) {
	p, _, _ := newTestService(t)
	paste, err := p.Create(context.Background(), domain.CreateParams{
		Content:     "hello",
		Title:       "my title",
		Description: "my description",
	})
	require.NoError(t, err)
	assert.Equal(t, "my title", paste.Title)
	assert.Equal(t, "my description", paste.Description)
}

func TestCreateRequiresContent(t *testing.T) {
	p, _, _ := newTestService(t)
	_, err := p.Create(context.Background(), domain.CreateParams{Title: "no body"})
	assert.ErrorIs(t, err, domain.ErrContentRequired)
}

func TestCreateRejectsOversizedContent(t *testing.T) {
	p, _, _ := newTestService(t)
	_, err := p.Create(context.Background(), domain.CreateParams{
		Content: strings.Repeat("x", 64*1024+1),
	})
	assert.ErrorIs(t, err, domain.ErrPasteTooLarge)
}

func TestGetRoundTripsContentVerbatim(t *testing.T) {
	p, _, _ := newTestService(t)
	content := "line one\nline two\ttabbed\n<script>not escaped</script>"
	created, err := p.Create(context.Background(), domain.CreateParams{Content: content})
	require.NoError(t, err)
	got, err := p.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, content, got.Content)
}

func TestGetMissing(t *testing.T) {
	p, _, _ := newTestService(t)
	_, err := p.Get(context.Background(), "nope1234")
	assert.ErrorIs(t, err, domain.ErrPasteNotFound)
}

func TestGetServesFromCache(t *testing.T) {
	p, _, dir := newTestService(t)
	created, err := p.Create(context.Background(), domain.CreateParams{Content: "cached"})
	require.NoError(t, err)
	// Remove the backing file; the paste should still come out of the LRU.
	require.NoError(t, os.Remove(filepath.Join(dir, created.ID+".json")))
	got, err := p.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "cached", got.Content)
}

func TestListNewestFirstSkippingCorrupt(t *testing.T) {
	p, st, dir := newTestService(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"old00000", "mid00000", "new00000"} {
		require.NoError(t, st.Put(ctx, &domain.Paste{
			ID:        id,
			Content:   "c",
			Title:     domain.DefaultTitle(id),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corrupt0.json"), []byte("{"), 0o600))

	pastes, err := p.List(ctx)
	require.NoError(t, err)
	require.Len(t, pastes, 3)
	assert.Equal(t, "new00000", pastes[0].ID)
	assert.Equal(t, "mid00000", pastes[1].ID)
	assert.Equal(t, "old00000", pastes[2].ID)
}
