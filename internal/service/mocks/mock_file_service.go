package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docindex/internal/service"
)

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) CreateUploadURL(ctx context.Context, fileName string) (*service.UploadHandle, error) {
	args := m.Called(ctx, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadHandle), args.Error(1)
}

func (m *MockFileService) ResolveDownloadURL(ctx context.Context, storageID string) (string, error) {
	args := m.Called(ctx, storageID)
	return args.String(0), args.Error(1)
}
