// Package store persists graph documents. Two backends are provided:
// an in-memory store for development and tests, and a MongoDB store for
// server deployments. Both assign UUID identifiers and maintain creation
// and update timestamps.
package store

import (
	"context"

	"github.com/matzehuels/dotkit/pkg/graphio"
)

// Store is the interface for graph document persistence backends.
type Store interface {
	// Create validates the document, assigns it a fresh ID and timestamps,
	// and persists it. The stored document is returned.
	Create(ctx context.Context, doc *graphio.Document) (*graphio.Document, error)

	// Get retrieves a document by ID. A missing document is a NOT_FOUND
	// error.
	Get(ctx context.Context, id string) (*graphio.Document, error)

	// Update replaces the document with the given ID. The updated-at
	// timestamp is refreshed; creation time is preserved.
	Update(ctx context.Context, id string, doc *graphio.Document) (*graphio.Document, error)

	// Delete removes a document by ID. Deleting a missing document is a
	// NOT_FOUND error.
	Delete(ctx context.Context, id string) error

	// List returns all stored documents, most recently updated first.
	List(ctx context.Context) ([]graphio.Document, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
