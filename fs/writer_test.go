package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitescan"
	"github.com/fwojciec/sitescan/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWriter_WriteJSON(t *testing.T) {
	t.Parallel()

	t.Run("writes resource list with four-space indent", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		err := w.WriteJSON(context.Background(), sitescan.ResourcesFile, []string{
			"https://cdn.example.net/app.js",
			"https://fonts.googleapis.com/css?family=Roboto&display=swap",
		})

		require.NoError(t, err)
		want := `[
    "https://cdn.example.net/app.js",
    "https://fonts.googleapis.com/css?family=Roboto&display=swap"
]
`
		assert.Equal(t, want, readFile(t, filepath.Join(dir, sitescan.ResourcesFile)))
	})

	t.Run("writes frequency table with sorted keys", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		err := w.WriteJSON(context.Background(), sitescan.FrequencyFile, sitescan.FrequencyTable{
			"privacy": 2,
			"policy":  2,
			"our":     1,
		})

		require.NoError(t, err)
		want := `{
    "our": 1,
    "policy": 2,
    "privacy": 2
}
`
		assert.Equal(t, want, readFile(t, filepath.Join(dir, sitescan.FrequencyFile)))
	})

	t.Run("writes empty collections as JSON literals", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		ctx := context.Background()

		require.NoError(t, w.WriteJSON(ctx, "list.json", []string{}))
		require.NoError(t, w.WriteJSON(ctx, "table.json", sitescan.FrequencyTable{}))

		assert.Equal(t, "[]\n", readFile(t, filepath.Join(dir, "list.json")))
		assert.Equal(t, "{}\n", readFile(t, filepath.Join(dir, "table.json")))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(filepath.Join(dir, "out", "run"))

		require.NoError(t, w.WriteJSON(context.Background(), sitescan.ResourcesFile, []string{}))

		assert.FileExists(t, filepath.Join(dir, "out", "run", sitescan.ResourcesFile))
	})

	t.Run("replaces existing file and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		ctx := context.Background()

		require.NoError(t, w.WriteJSON(ctx, sitescan.ResourcesFile, []string{"https://a.example"}))
		require.NoError(t, w.WriteJSON(ctx, sitescan.ResourcesFile, []string{}))

		assert.Equal(t, "[]\n", readFile(t, filepath.Join(dir, sitescan.ResourcesFile)))
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("returns io error when directory cannot be created", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
		w := fs.NewWriter(blocker)

		err := w.WriteJSON(context.Background(), sitescan.ResourcesFile, []string{})

		require.Error(t, err)
		assert.Equal(t, sitescan.EIO, sitescan.ErrorCode(err))
	})

	t.Run("returns invalid error for unencodable value", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.WriteJSON(context.Background(), "bad.json", make(chan int))

		require.Error(t, err)
		assert.Equal(t, sitescan.EINVALID, sitescan.ErrorCode(err))
	})
}
