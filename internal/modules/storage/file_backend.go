package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
)

// FileBackend persists snapshots as a JSON document
type FileBackend struct {
	path string
}

var _ Backend = (*FileBackend)(nil)

// NewFileBackend creates a backend writing to path. Parent directories are created on first save.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the backing file path
func (f *FileBackend) Path() string {
	return f.path
}

// Load reads the snapshot. A missing file yields an empty store.
func (f *FileBackend) Load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	items := map[string]string{}
	if len(data) == 0 {
		return items, nil
	}
	if err := sonic.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode storage file %s: %w", f.path, err)
	}
	return items, nil
}

// Save writes the snapshot atomically via a temp file and rename
func (f *FileBackend) Save(snapshot map[string]string) error {
	data, err := sonic.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode storage snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}
