// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrPermissionDenied is returned when the data file cannot be read or
	// written because of file system permissions.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrMalformedRecord is returned when persisted data fails validation.
	// A malformed record fails the whole load.
	ErrMalformedRecord = errors.New("malformed record")
)

// Store defines the interface for loading and saving a project book.
// This abstraction allows swapping storage backends (JSON file, SQLite)
// without changing the service layer.
type Store interface {
	// Load reads the last saved snapshot.
	// Returns nil and no error if nothing has been saved yet.
	Load(ctx context.Context) (*Snapshot, error)

	// Save replaces the stored snapshot with s.
	Save(ctx context.Context, s *Snapshot) error

	// Path is the location of the underlying file.
	Path() string

	// Close releases any resources held by the store.
	Close() error
}

// WrapIO wraps an I/O failure, marking permission problems with
// ErrPermissionDenied so callers can tell them apart.
func WrapIO(op string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("failed to %s: %w: %w", op, ErrPermissionDenied, err)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
