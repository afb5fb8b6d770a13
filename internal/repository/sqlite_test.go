package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestSQLite(t *testing.T) *SQLiteStore {
	logger := zerolog.Nop()
	store, err := NewSQLiteStore(":memory:", "atrika", &logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	store := setupTestSQLite(t)
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "userData", []byte(`{"name":"asha"}`)))

		got, err := store.Get(ctx, "userData")
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"asha"}`, string(got))
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "userData", []byte(`{"name":"ravi"}`)))

		got, err := store.Get(ctx, "userData")
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"ravi"}`, string(got))
	})

	t.Run("GetMissing", func(t *testing.T) {
		got, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "flightBookings", []byte(`[]`)))
		require.NoError(t, store.Delete(ctx, "flightBookings", "userData"))

		got, _ := store.Get(ctx, "flightBookings")
		assert.Nil(t, got)
		got, _ = store.Get(ctx, "userData")
		assert.Nil(t, got)
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, store.PingContext(ctx))
	})
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(path, "atrika", nil)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "flightSearchHistory", []byte(`[{"from":"Delhi (DEL)"}]`)))
	require.NoError(t, first.Close())

	assert.FileExists(t, path)

	second, err := NewSQLiteStore(path, "atrika", nil)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(ctx, "flightSearchHistory")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"from":"Delhi (DEL)"}]`, string(got))
}

func TestSQLiteStore_PrefixIsolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.db")
	ctx := context.Background()

	a, err := NewSQLiteStore(path, "a", nil)
	require.NoError(t, err)
	defer a.Close()
	require.NoError(t, a.Set(ctx, "userData", []byte(`{}`)))

	b, err := NewSQLiteStore(path, "b", nil)
	require.NoError(t, err)
	defer b.Close()

	got, err := b.Get(ctx, "userData")
	require.NoError(t, err)
	assert.Nil(t, got)
}
