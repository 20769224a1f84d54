package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"docindex/internal/storage"
)

// UploadHandle is an opaque target a client can PUT a blob to directly.
type UploadHandle struct {
	StorageID string `json:"storageId"`
	UploadURL string `json:"uploadUrl"`
	ExpiresAt int64  `json:"expiresAt"`
}

// FileService issues upload targets and download URLs for document blobs.
// It never reads or validates blob bytes.
type FileService interface {
	// CreateUploadURL reserves a storage key for fileName and presigns a PUT to it.
	CreateUploadURL(ctx context.Context, fileName string) (*UploadHandle, error)

	// ResolveDownloadURL presigns a GET for storageID, or returns "" when no such object exists.
	ResolveDownloadURL(ctx context.Context, storageID string) (string, error)
}

type fileService struct {
	store  storage.Storage
	expiry time.Duration
	now    func() time.Time
}

// NewFileService constructs a FileService whose URLs are valid for expiry.
func NewFileService(store storage.Storage, expiry time.Duration) FileService {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &fileService{store: store, expiry: expiry, now: time.Now}
}

func (s *fileService) CreateUploadURL(ctx context.Context, fileName string) (*UploadHandle, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: object storage is not configured", ErrStorageUnavailable)
	}
	key := objectKey(fileName)
	u, err := s.store.PresignPut(ctx, key, s.expiry)
	if err != nil {
		return nil, unavailable(err)
	}
	return &UploadHandle{
		StorageID: key,
		UploadURL: u,
		ExpiresAt: s.now().Add(s.expiry).UnixMilli(),
	}, nil
}

func (s *fileService) ResolveDownloadURL(ctx context.Context, storageID string) (string, error) {
	if storageID == "" {
		return "", ErrIDRequired
	}
	if s.store == nil {
		return "", fmt.Errorf("%w: object storage is not configured", ErrStorageUnavailable)
	}
	if _, err := s.store.Stat(ctx, storageID); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return "", nil
		}
		return "", unavailable(err)
	}
	u, err := s.store.PresignGet(ctx, storageID, s.expiry)
	if err != nil {
		return "", unavailable(err)
	}
	return u, nil
}
