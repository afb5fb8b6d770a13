package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	repo := NewMemoryStore()
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "userData", []byte(`{"name":"asha"}`)))

		got, err := repo.Get(ctx, "userData")
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"asha"}`, string(got))
	})

	t.Run("GetMissing", func(t *testing.T) {
		got, err := repo.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("ValuesAreCopied", func(t *testing.T) {
		value := []byte("abc")
		require.NoError(t, repo.Set(ctx, "k", value))
		value[0] = 'x'

		got, _ := repo.Get(ctx, "k")
		assert.Equal(t, "abc", string(got))
		got[1] = 'y'

		again, _ := repo.Get(ctx, "k")
		assert.Equal(t, "abc", string(again))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "a", []byte("1")))
		require.NoError(t, repo.Set(ctx, "b", []byte("2")))
		require.NoError(t, repo.Delete(ctx, "a", "b", "never-set"))

		got, _ := repo.Get(ctx, "a")
		assert.Nil(t, got)
		got, _ = repo.Get(ctx, "b")
		assert.Nil(t, got)
	})
}
