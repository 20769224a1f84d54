package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"docindex/internal/model"
	"docindex/internal/repository"
)

// DefaultKeyPrefix namespaces every key written by DocumentRedis.
const DefaultKeyPrefix = "docindex:"

// DocumentRedis stores each document as a JSON string and keeps a sorted set of
// IDs scored by upload time so the corpus can be listed in order.
type DocumentRedis struct {
	client goredis.UniversalClient
	prefix string
}

// NewDocumentRedis creates a Redis-backed repository. An empty prefix uses DefaultKeyPrefix.
func NewDocumentRedis(client goredis.UniversalClient, prefix string) *DocumentRedis {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &DocumentRedis{client: client, prefix: prefix}
}

var _ repository.DocumentRepository = (*DocumentRedis)(nil)

func (r *DocumentRedis) docKey(id string) string { return r.prefix + "doc:" + id }

func (r *DocumentRedis) indexKey() string { return r.prefix + "docs" }

// Create stores a new document. Creating an ID twice is an error.
func (r *DocumentRedis) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	stored := normalize(doc.Clone())
	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	ok, err := r.client.SetNX(ctx, r.docKey(stored.ID), data, 0).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("document %s already exists", stored.ID)
	}
	if err := r.client.ZAdd(ctx, r.indexKey(), goredis.Z{
		Score:  float64(stored.UploadedAt),
		Member: stored.ID,
	}).Err(); err != nil {
		// Without an index entry the document is invisible to All; drop it.
		delCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if delErr := r.client.Del(delCtx, r.docKey(stored.ID)).Err(); delErr != nil {
			return nil, fmt.Errorf("index document: %w; cleanup failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("index document: %w", err)
	}
	return &stored, nil
}

// FindByID returns the document stored under id.
func (r *DocumentRedis) FindByID(ctx context.Context, id string) (*model.Document, error) {
	data, err := r.client.Get(ctx, r.docKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return decode(data)
}

// All returns every document, oldest upload first. Documents deleted between
// reading the index and loading the bodies are skipped.
func (r *DocumentRedis) All(ctx context.Context) ([]model.Document, error) {
	ids, err := r.client.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	items := make([]model.Document, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.docKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		d, err := decode([]byte(s))
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	return items, nil
}

// Update overwrites the mutable fields of an existing document.
func (r *DocumentRedis) Update(ctx context.Context, doc *model.Document) (*model.Document, error) {
	existing, err := r.FindByID(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	next := doc.Clone()
	existing.Title = next.Title
	existing.Content = next.Content
	existing.Category = next.Category
	existing.Tags = next.Tags
	existing.Project = next.Project
	existing.Team = next.Team
	existing.LastModified = next.LastModified
	stored := normalize(*existing)

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	ok, err := r.client.SetXX(ctx, r.docKey(stored.ID), data, 0).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &stored, nil
}

// Delete removes the document and its index entry. Missing IDs are ignored.
func (r *DocumentRedis) Delete(ctx context.Context, id string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, r.docKey(id))
		pipe.ZRem(ctx, r.indexKey(), id)
		return nil
	})
	return err
}

// PingContext checks the Redis connection.
func (r *DocumentRedis) PingContext(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func decode(data []byte) (*model.Document, error) {
	var d model.Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	n := normalize(d)
	return &n, nil
}

func normalize(d model.Document) model.Document {
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return d
}
