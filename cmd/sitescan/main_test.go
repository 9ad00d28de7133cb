package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"

	main "github.com/fwojciec/sitescan/cmd/sitescan"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSiteServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(homeHTML))
	})
	mux.HandleFunc("/privacy-policy/", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(policyHTML))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestMain_ScansSiteAndWritesResults(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := newSiteServer(t, &hits)
	dir := t.TempDir()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), []string{
		srv.URL,
		"--out", dir,
		"--cache", filepath.Join(dir, "cache.sqlite"),
		"--rps", "0",
	}, &stdout, &stderr)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "external_resources.json"))
	require.NoError(t, err)
	var resources []string
	require.NoError(t, json.Unmarshal(data, &resources))
	assert.Equal(t, []string{"https://cdn.example.net/app.js"}, resources)

	data, err = os.ReadFile(filepath.Join(dir, "word_frequency.json"))
	require.NoError(t, err)
	var freq map[string]int
	require.NoError(t, json.Unmarshal(data, &freq))
	assert.Equal(t, 2, freq["data"])
	assert.Equal(t, 1, freq["safe"])

	assert.Equal(t, int32(2), hits.Load())

	// The run ID printed in the summary tags every log entry.
	match := regexp.MustCompile(`Scan (\S+) of `).FindStringSubmatch(stdout.String())
	require.Len(t, match, 2)
	_, err = uuid.Parse(match[1])
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSpace(stderr.String()), "\n") {
		assert.Contains(t, line, "run="+match[1])
	}
}

func TestMain_ReusesCachedResponses(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := newSiteServer(t, &hits)
	dir := t.TempDir()
	args := []string{
		srv.URL,
		"--out", dir,
		"--cache", filepath.Join(dir, "cache.sqlite"),
		"--rps", "0",
	}

	for range 2 {
		var stdout, stderr bytes.Buffer
		require.NoError(t, main.NewMain().Run(context.Background(), args, &stdout, &stderr))
	}

	assert.Equal(t, int32(2), hits.Load())
}

func TestMain_VerboseLogsCacheActivity(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := newSiteServer(t, &hits)
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	err := main.NewMain().Run(context.Background(), []string{
		srv.URL,
		"--out", dir,
		"--cache", filepath.Join(dir, "cache.sqlite"),
		"--rps", "0",
		"-v",
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "cache lookup")
	assert.Contains(t, stderr.String(), "cache save")
}
