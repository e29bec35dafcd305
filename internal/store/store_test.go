package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "users")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "users", []byte(`[{"id":"u1"}]`)))

	got, err := s.Get(ctx, "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"u1"}]`, string(got))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	value := []byte(`[1,2,3]`)
	require.NoError(t, s.Set(ctx, "k", value))
	value[1] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(got))
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "dojo.json")

	s, err := OpenFileStore(path)
	require.NoError(t, err)

	_, err = s.Get(ctx, "ranks")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "ranks", []byte(`[{"id":"g1"}]`)))
	require.NoError(t, s.Set(ctx, "exams", []byte(`[]`)))
	require.NoError(t, s.Close())

	// Reopen: both documents must survive the restart.
	reopened, err := OpenFileStore(path)
	require.NoError(t, err)

	ranks, err := reopened.Get(ctx, "ranks")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"g1"}]`, string(ranks))

	exams, err := reopened.Get(ctx, "exams")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(exams))
}

func TestFileStoreCreatesDataDirectory(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "dojo.json")

	s, err := OpenFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "users", []byte(`[]`)))

	reopened, err := OpenFileStore(path)
	require.NoError(t, err)
	_, err = reopened.Get(ctx, "users")
	assert.NoError(t, err)
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dojo.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := OpenFileStore(path)
	assert.Error(t, err)
}
