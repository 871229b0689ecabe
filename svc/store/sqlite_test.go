package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pastepad/pkg/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *SQLite {
	t.Helper()
	dsn := fmt.Sprintf("file:memdb%d?mode=memory&cache=shared", time.Now().UnixNano())
	s, err := NewSQLite(dsn, 0, 0, 0)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	p := testPaste("ab12cd34", time.Now())
	require.NoError(t, s.Put(ctx, p))

	got, err := s.Get(ctx, "ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Content, got.Content)
	assert.Equal(t, p.Title, got.Title)
}

func TestSQLiteGetMissing(t *testing.T) {
	s := newSQLiteStore(t)
	_, err := s.Get(context.Background(), "nope1234")
	assert.ErrorIs(t, err, domain.ErrPasteNotFound)
}

func TestSQLitePutOverwrites(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	p := testPaste("ab12cd34", time.Now())
	require.NoError(t, s.Put(ctx, p))
	p.Content = "replacement"
	require.NoError(t, s.Put(ctx, p))
	got, err := s.Get(ctx, "ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, "replacement", got.Content)
}

func TestSQLiteList(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("paste%03d", i)
		require.NoError(t, s.Put(ctx, testPaste(id, time.Now())))
	}
	pastes, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, pastes, 3)
}

func TestSQLitePing(t *testing.T) {
	s := newSQLiteStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}
