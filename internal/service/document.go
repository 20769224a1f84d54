package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"docindex/internal/analyzer"
	"docindex/internal/facets"
	"docindex/internal/logger"
	"docindex/internal/metrics"
	"docindex/internal/model"
	"docindex/internal/repository"
	"docindex/internal/search"
	"docindex/internal/storage"
)

var tracer = otel.Tracer("docindex/internal/service")

const rollbackTimeout = 10 * time.Second

// DocumentService defines the use cases for indexing, searching and browsing documents.
type DocumentService interface {
	// Create derives category and tags from the text and stores a new document.
	Create(ctx context.Context, in model.NewDocument) (*model.Document, error)

	// Upload streams the blob to object storage, then creates the document referencing it.
	// The blob is removed again if the document cannot be stored.
	Upload(ctx context.Context, r io.Reader, in model.NewDocument, contentType string) (*model.Document, error)

	// Search ranks the whole corpus against q.
	Search(ctx context.Context, q search.Query) ([]model.Document, error)

	// Get returns a document by ID, or nil without error when it does not exist.
	Get(ctx context.Context, id string) (*model.Document, error)

	ListCategories(ctx context.Context) ([]string, error)
	ListTeams(ctx context.Context) ([]string, error)
	ListProjects(ctx context.Context) ([]string, error)
	ListRecent(ctx context.Context, limit int) ([]model.Document, error)

	// Update applies a partial update. Changing the title or content re-derives
	// category and tags and overrides any category or tags passed in the same call.
	Update(ctx context.Context, id string, patch model.DocumentPatch) (*model.Document, error)

	// Delete removes a document and its blob. Deleting a missing ID succeeds.
	Delete(ctx context.Context, id string) error
}

// Option configures a documentService.
type Option func(*documentService)

// WithEngine replaces the default substring search engine.
func WithEngine(e search.Engine) Option {
	return func(s *documentService) { s.engine = e }
}

// WithMetrics records domain metrics on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *documentService) { s.metrics = m }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *documentService) { s.now = now }
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store   storage.Storage
	repo    repository.DocumentRepository
	engine  search.Engine
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewDocumentService constructs a new DocumentService. store may be nil when no
// object storage is configured; Upload then fails with ErrStorageUnavailable.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, opts ...Option) DocumentService {
	s := &documentService{
		store:  store,
		repo:   repo,
		engine: search.NewSubstringEngine(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *documentService) Create(ctx context.Context, in model.NewDocument) (*model.Document, error) {
	if err := validateNew(in); err != nil {
		return nil, err
	}

	res := analyzer.Analyze(in.Title, in.Content, in.FileType)
	now := s.now().UnixMilli()
	doc := &model.Document{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Content:      res.Content,
		FileType:     in.FileType,
		FileName:     in.FileName,
		FileSize:     in.FileSize,
		StorageID:    in.StorageID,
		FileURL:      in.FileURL,
		Category:     res.Category,
		Tags:         res.Tags,
		Project:      in.Project,
		Team:         in.Team,
		UploadedBy:   in.UploadedBy,
		UploadedAt:   now,
		LastModified: now,
		IndexedAt:    now,
	}

	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		return nil, unavailable(err)
	}

	s.metrics.IncIndexed(stored.Category)
	logger.FromContext(ctx).Info("document indexed",
		zap.String("document_id", stored.ID),
		zap.String("category", stored.Category),
		zap.Int("tags", len(stored.Tags)),
	)
	return stored, nil
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, in model.NewDocument, contentType string) (*model.Document, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if err := validateNew(in); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, fmt.Errorf("%w: object storage is not configured", ErrStorageUnavailable)
	}

	ctx, span := tracer.Start(ctx, "DocumentService.Upload", trace.WithAttributes(
		attribute.String("document.file_type", in.FileType),
		attribute.Int64("document.file_size", in.FileSize),
	))
	defer span.End()

	// Plain-text uploads without extracted content are indexed from the blob itself.
	body := r
	if in.Content == "" && analyzer.IsPlainText(in.FileType) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read upload: %w", err)
		}
		in.Content = string(data)
		in.FileSize = int64(len(data))
		body = bytes.NewReader(data)
	}

	key := objectKey(in.FileName)
	objInfo, err := s.store.Put(ctx, key, body, storage.PutObjectOptions{
		Size:        in.FileSize,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": in.FileName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: upload to storage: %w", ErrStorageUnavailable, err)
	}

	storageID := objInfo.Key
	in.StorageID = &storageID
	doc, err := s.Create(ctx, in)
	if err != nil {
		// Rollback: delete the object from storage. The request context may be
		// the reason Create failed, so the cleanup gets its own deadline.
		rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
		defer cancel()
		if delErr := s.store.Delete(rbCtx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %w; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return doc, nil
}

func (s *documentService) Search(ctx context.Context, q search.Query) ([]model.Document, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Search", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	mode := "query"
	if strings.TrimSpace(q.Text) == "" {
		mode = "browse"
	}
	span.SetAttributes(
		attribute.String("search.mode", mode),
		attribute.Int("search.limit", q.Limit),
	)

	start := time.Now()
	corpus, err := s.repo.All(ctx)
	if err != nil {
		err = unavailable(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "load corpus")
		s.metrics.ObserveSearch(mode, time.Since(start), 0, err)
		return nil, err
	}

	results := s.engine.Search(corpus, q)
	span.SetAttributes(
		attribute.Int("search.corpus_size", len(corpus)),
		attribute.Int("search.results", len(results)),
	)
	s.metrics.ObserveSearch(mode, time.Since(start), len(results), nil)
	return results, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, unavailable(err)
	}
	return doc, nil
}

func (s *documentService) ListCategories(ctx context.Context) ([]string, error) {
	corpus, err := s.corpus(ctx)
	if err != nil {
		return nil, err
	}
	return facets.Categories(corpus), nil
}

func (s *documentService) ListTeams(ctx context.Context) ([]string, error) {
	corpus, err := s.corpus(ctx)
	if err != nil {
		return nil, err
	}
	return facets.Teams(corpus), nil
}

func (s *documentService) ListProjects(ctx context.Context) ([]string, error) {
	corpus, err := s.corpus(ctx)
	if err != nil {
		return nil, err
	}
	return facets.Projects(corpus), nil
}

func (s *documentService) ListRecent(ctx context.Context, limit int) ([]model.Document, error) {
	corpus, err := s.corpus(ctx)
	if err != nil {
		return nil, err
	}
	return facets.Recent(corpus, limit), nil
}

func (s *documentService) Update(ctx context.Context, id string, patch model.DocumentPatch) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, unavailable(err)
	}

	next := existing.Clone()
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Content != nil {
		next.Content = analyzer.ExtractText(*patch.Content, next.FileType)
	}
	if patch.Project != nil {
		project := *patch.Project
		next.Project = &project
	}
	if patch.Team != nil {
		team := *patch.Team
		next.Team = &team
	}

	if patch.TouchesText() {
		next.Category = analyzer.Categorize(next.Title, next.Content)
		next.Tags = analyzer.ExtractTags(next.Title, next.Content)
	} else {
		if patch.Category != nil {
			next.Category = *patch.Category
		}
		if patch.Tags != nil {
			next.Tags = append(make([]string, 0, len(*patch.Tags)), *patch.Tags...)
		}
	}
	next.LastModified = max(s.now().UnixMilli(), next.UploadedAt)

	stored, err := s.repo.Update(ctx, &next)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, unavailable(err)
	}

	if patch.TouchesText() {
		s.metrics.IncIndexed(stored.Category)
	}
	logger.FromContext(ctx).Info("document updated",
		zap.String("document_id", stored.ID),
		zap.Bool("reindexed", patch.TouchesText()),
		zap.String("category", stored.Category),
	)
	return stored, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return unavailable(err)
	}
	// Delete the blob first; if this fails, keep the record so the reference is not lost.
	if doc.StorageID != nil && s.store != nil {
		if err := s.store.Delete(ctx, *doc.StorageID); err != nil {
			return fmt.Errorf("%w: delete storage: %w", ErrStorageUnavailable, err)
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return unavailable(err)
	}

	s.metrics.IncDeleted()
	logger.FromContext(ctx).Info("document deleted", zap.String("document_id", id))
	return nil
}

func (s *documentService) corpus(ctx context.Context) ([]model.Document, error) {
	docs, err := s.repo.All(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return docs, nil
}

// objectKey builds a collision-free storage key that keeps the original extension.
func objectKey(fileName string) string {
	return filepath.ToSlash(filepath.Join("documents", uuid.NewString()+filepath.Ext(fileName)))
}
