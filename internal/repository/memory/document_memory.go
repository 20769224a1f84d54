package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"docindex/internal/model"
	"docindex/internal/repository"
)

// DocumentMemory is an in-process implementation of repository.DocumentRepository.
// It backs local development and tests; every read and write works on copies.
type DocumentMemory struct {
	mu   sync.RWMutex
	docs map[string]model.Document
}

// NewDocumentMemory constructs an empty DocumentMemory.
func NewDocumentMemory() *DocumentMemory {
	return &DocumentMemory{docs: make(map[string]model.Document)}
}

var _ repository.DocumentRepository = (*DocumentMemory)(nil)

// Create stores a new document. Creating an ID twice is an error.
func (r *DocumentMemory) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[doc.ID]; ok {
		return nil, fmt.Errorf("document %s already exists", doc.ID)
	}
	stored := normalize(doc.Clone())
	r.docs[doc.ID] = stored
	out := stored.Clone()
	return &out, nil
}

// FindByID returns a copy of the document with the given ID.
func (r *DocumentMemory) FindByID(ctx context.Context, id string) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := d.Clone()
	return &out, nil
}

// All returns copies of every document, oldest upload first.
func (r *DocumentMemory) All(ctx context.Context) ([]model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	items := make([]model.Document, 0, len(r.docs))
	for _, d := range r.docs {
		items = append(items, d.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if items[i].UploadedAt != items[j].UploadedAt {
			return items[i].UploadedAt < items[j].UploadedAt
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// Update replaces the mutable fields of an existing document.
func (r *DocumentMemory) Update(ctx context.Context, doc *model.Document) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.docs[doc.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	next := doc.Clone()
	existing.Title = next.Title
	existing.Content = next.Content
	existing.Category = next.Category
	existing.Tags = next.Tags
	existing.Project = next.Project
	existing.Team = next.Team
	existing.LastModified = next.LastModified
	existing = normalize(existing)
	r.docs[doc.ID] = existing
	out := existing.Clone()
	return &out, nil
}

// Delete removes a document; deleting a missing ID is a no-op.
func (r *DocumentMemory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, id)
	return nil
}

// PingContext always succeeds while the context is live.
func (r *DocumentMemory) PingContext(ctx context.Context) error {
	return ctx.Err()
}

func normalize(d model.Document) model.Document {
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return d
}
