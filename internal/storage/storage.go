package storage

import (
	"github.com/newslens/newslens/internal/types"
)

// Storage persists assembled article records.
type Storage interface {
	// Name returns the storage backend identifier.
	Name() string

	// Store buffers or writes the given records.
	Store(records []types.ArticleRecord) error

	// Close flushes and releases the backend.
	Close() error
}
