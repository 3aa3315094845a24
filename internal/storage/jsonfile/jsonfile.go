// Package jsonfile provides a JSON file implementation of the storage.Store interface.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mmynk/projectbook/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps the whole snapshot in one JSON document.
type Store struct {
	path string
}

// New returns a store for the file at path. The file is created on first save.
func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Close is a no-op; files are opened per call.
func (s *Store) Close() error { return nil }

// Load reads the snapshot. A missing file is not an error.
func (s *Store) Load(ctx context.Context) (*storage.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, storage.WrapIO("read data file", err)
	}
	return Decode(data)
}

// Save writes the snapshot atomically: readers see either the old or the new
// file, never a partial one.
func (s *Store) Save(ctx context.Context, snap *storage.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return storage.WrapIO("write data file", err)
	}
	return nil
}

// Encode renders snap as indented JSON with a trailing newline.
func Encode(snap *storage.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a document produced by Encode.
func Decode(data []byte) (*storage.Snapshot, error) {
	var snap storage.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrMalformedRecord, err)
	}
	if snap.Version > storage.SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", storage.ErrMalformedRecord, snap.Version)
	}
	return &snap, nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
