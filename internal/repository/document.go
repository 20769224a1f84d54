package repository

import (
	"context"
	"errors"

	"docindex/internal/model"
)

// ErrNotFound is returned by FindByID and Update when no document has the given ID.
var ErrNotFound = errors.New("document not found")

// DocumentRepository is the persistence contract for documents.
// Implementations hold no business logic; derivation of category and tags happens in the service.
type DocumentRepository interface {
	// Create stores a new document. The caller assigns the ID and timestamps.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// All returns the whole corpus ordered by upload time ascending, then ID.
	All(ctx context.Context) ([]model.Document, error)

	// Update overwrites every mutable field of an existing document, or returns ErrNotFound.
	Update(ctx context.Context, doc *model.Document) (*model.Document, error)

	// Delete removes a document by ID. It returns nil if the document did not exist.
	Delete(ctx context.Context, id string) error

	// PingContext checks that the backing store is reachable.
	PingContext(ctx context.Context) error
}
