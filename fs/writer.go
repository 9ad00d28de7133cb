// Package fs provides file-based persistence for scan results.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/sitescan"
)

// Ensure Writer implements sitescan.ResultWriter at compile time.
var _ sitescan.ResultWriter = (*Writer)(nil)

// Writer writes JSON result files below a base directory.
// Each file is written to a temporary file first and renamed into place,
// so readers never observe a partially written result.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// EncodeJSON encodes v with four-space indentation and a trailing newline.
// HTML characters are not escaped, so URLs keep their literal '&'.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON writes v to path, relative to the base directory.
func (w *Writer) WriteJSON(ctx context.Context, path string, v any) error {
	data, err := EncodeJSON(v)
	if err != nil {
		return sitescan.Errorf(sitescan.EINVALID, "encode %s: %v", path, err)
	}

	fullPath := filepath.Join(w.baseDir, path)
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return sitescan.Errorf(sitescan.EIO, "write %s: %v", path, err)
	}

	if err := writeAtomic(dir, fullPath, data); err != nil {
		return sitescan.Errorf(sitescan.EIO, "write %s: %v", path, err)
	}
	return nil
}

func writeAtomic(dir, fullPath string, data []byte) error {
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fullPath)
}
