package jobs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "jobs"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_CreateAndGet(t *testing.T) {
	store := openTestStore(t)

	created, err := store.Create(KindEncode, "/tmp/in.bin", "/tmp/out.b64")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, StatusRunning, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, KindEncode, got.Kind)
	assert.Equal(t, "/tmp/in.bin", got.InputPath)
	assert.Equal(t, "/tmp/out.b64", got.OutputPath)
}

func TestStore_Complete(t *testing.T) {
	store := openTestStore(t)

	created, err := store.Create(KindDecode, "in.b64", "out.bin")
	require.NoError(t, err)

	completed, err := store.Complete(created.ID, 12345)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, completed.Status)
	assert.Equal(t, int64(12345), completed.BytesProcessed)
	assert.False(t, completed.CompletedAt.IsZero())

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
}

func TestStore_Fail(t *testing.T) {
	store := openTestStore(t)

	created, err := store.Create(KindEncode, "in.bin", "out.b64")
	require.NoError(t, err)

	failed, err := store.Fail(created.ID, errors.New("disk full"))
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Equal(t, "disk full", failed.Error)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, "disk full", got.Error)
}

func TestStore_GetMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
