package storage

import (
	"context"
	"errors"

	"educonnect/models"
)

// ErrSessionNotFound is returned by SessionStore.Get for a missing key.
var ErrSessionNotFound = errors.New("session: key not found")

// SessionStore persists small JSON blobs by key for the signed-in session.
// Implementations must treat Clear of a missing key as success.
type SessionStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}

// ListingSource supplies the raw housing catalog.
type ListingSource interface {
	FetchAll(ctx context.Context) ([]*models.RawListing, error)
}

// ListingWriter is the interface for exporting a visible housing view.
type ListingWriter interface {
	Write(listings []*models.Listing) error
	Close() error
}
