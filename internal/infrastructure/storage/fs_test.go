package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engines/internal/domain"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{ID: "abc", Name: "sample", CreatedAt: 42}
	p.Board.Values[0][0] = 5
	p.Board.Fixed[0][0] = true
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestSaveRequiresID(t *testing.T) {
	s := NewFS(t.TempDir())
	assert.Error(t, s.Save(context.Background(), &domain.Puzzle{}))
	assert.Error(t, s.Save(context.Background(), nil))
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListSkipsGarbage(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &domain.Puzzle{ID: "one", CreatedAt: 1}))
	require.NoError(t, s.Save(ctx, &domain.Puzzle{ID: "two", CreatedAt: 2}))
	require.NoError(t, os.WriteFile(dir+"/junk.json", []byte("{"), 0o644))
	require.NoError(t, os.WriteFile(dir+"/readme.txt", []byte("x"), 0o644))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, metas, 2)
}

func TestListEmptyDir(t *testing.T) {
	s := NewFS(t.TempDir() + "/missing")
	metas, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, metas)
}
