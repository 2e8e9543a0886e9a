package history

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBlob persists the history as a single JSON file on disk. It is
// the default backend for local runs.
type FileBlob struct {
	Path string
}

// Read returns the file contents, or (nil, nil) when the file does not
// exist yet.
func (b FileBlob) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write replaces the file contents wholesale, creating parent
// directories as needed.
func (b FileBlob) Write(ctx context.Context, data []byte) error {
	if dir := filepath.Dir(b.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(b.Path, data, 0o644)
}
