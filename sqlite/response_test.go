package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/sitescan"
	"github.com/fwojciec/sitescan/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseStore_SaveResponse(t *testing.T) {
	t.Parallel()

	t.Run("stores body with hash and timestamp", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewResponseStore(setupTestDB(t))
		ctx := context.Background()

		resp := &sitescan.CachedResponse{
			URL:  "https://www.example.com",
			Body: "<html>home</html>",
		}

		require.NoError(t, store.SaveResponse(ctx, resp))

		assert.NotEmpty(t, resp.ContentHash)
		assert.False(t, resp.SavedAt.IsZero())

		got, err := store.FindResponse(ctx, "https://www.example.com")
		require.NoError(t, err)
		assert.Equal(t, "<html>home</html>", got.Body)
		assert.Equal(t, resp.ContentHash, got.ContentHash)
		assert.True(t, resp.SavedAt.Equal(got.SavedAt))
	})

	t.Run("keeps provided timestamp", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewResponseStore(setupTestDB(t))
		ctx := context.Background()
		savedAt := time.Date(2024, 3, 1, 12, 30, 15, 250, time.UTC)

		require.NoError(t, store.SaveResponse(ctx, &sitescan.CachedResponse{
			URL:     "https://www.example.com",
			Body:    "x",
			SavedAt: savedAt,
		}))

		got, err := store.FindResponse(ctx, "https://www.example.com")
		require.NoError(t, err)
		assert.True(t, savedAt.Equal(got.SavedAt), "got %v", got.SavedAt)
	})

	t.Run("replaces existing entry for the same URL", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewResponseStore(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.SaveResponse(ctx, &sitescan.CachedResponse{URL: "https://a.example", Body: "old"}))
		require.NoError(t, store.SaveResponse(ctx, &sitescan.CachedResponse{URL: "https://a.example", Body: "new"}))

		got, err := store.FindResponse(ctx, "https://a.example")
		require.NoError(t, err)
		assert.Equal(t, "new", got.Body)
	})

	t.Run("returns error for invalid response", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewResponseStore(setupTestDB(t))

		err := store.SaveResponse(context.Background(), &sitescan.CachedResponse{Body: "x"})
		require.Error(t, err)
		assert.Equal(t, sitescan.EINVALID, sitescan.ErrorCode(err))
	})
}

func TestResponseStore_FindResponse(t *testing.T) {
	t.Parallel()

	t.Run("returns not found for unknown URL", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewResponseStore(setupTestDB(t))

		_, err := store.FindResponse(context.Background(), "https://missing.example")
		require.Error(t, err)
		assert.Equal(t, sitescan.ENOTFOUND, sitescan.ErrorCode(err))
	})

	t.Run("keys by exact URL", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewResponseStore(setupTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.SaveResponse(ctx, &sitescan.CachedResponse{URL: "https://a.example/", Body: "slash"}))

		_, err := store.FindResponse(ctx, "https://a.example")
		assert.Equal(t, sitescan.ENOTFOUND, sitescan.ErrorCode(err))
	})

	t.Run("treats hash mismatch as not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewResponseStore(db)
		ctx := context.Background()

		require.NoError(t, store.SaveResponse(ctx, &sitescan.CachedResponse{URL: "https://a.example", Body: "intact"}))
		_, err := db.ExecContext(ctx, `UPDATE responses SET body = 'tampered' WHERE url = ?`, "https://a.example")
		require.NoError(t, err)

		_, err = store.FindResponse(ctx, "https://a.example")
		require.Error(t, err)
		assert.Equal(t, sitescan.ENOTFOUND, sitescan.ErrorCode(err))
	})

	t.Run("returns error for malformed timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		_, err := db.ExecContext(ctx, `INSERT INTO responses (url, body, content_hash, saved_at) VALUES (?, ?, ?, ?)`,
			"https://a.example", "b", "h", "yesterday")
		require.NoError(t, err)

		_, err = sqlite.NewResponseStore(db).FindResponse(ctx, "https://a.example")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "saved_at")
	})
}
