package services

import (
	"context"
	"path"
	"strings"

	"github.com/devportfolio/portfolio-api/internal/models"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/devportfolio/portfolio-api/pkg/metrics"
	"github.com/devportfolio/portfolio-api/pkg/slug"
	"github.com/devportfolio/portfolio-api/pkg/storage"
	"go.uber.org/zap"
)

const imageKeyPrefix = "images"

// UploadService stores images referenced by projects and highlights
type UploadService struct {
	storage ObjectStorage
}

func NewUploadService(objects ObjectStorage) *UploadService {
	return &UploadService{storage: objects}
}

func (s *UploadService) UploadImage(ctx context.Context, file *UploadedFile) (image *models.UploadedImage, err error) {
	defer func() { metrics.FileUploads.WithLabelValues("image", metrics.StatusLabel(err)).Inc() }()

	if s.storage == nil {
		return nil, apperrors.UnavailableError(storageNotConfig)
	}
	if err = storage.ValidateImage(file.ContentType, file.Size()); err != nil {
		return nil, apperrors.NewValidationError("image", err.Error())
	}

	key := slug.ObjectKey(imageKeyPrefix, file.Name)
	if path.Ext(key) == "" {
		key += storage.ImageExtension(file.ContentType)
	}

	url, err := s.storage.PutObject(ctx, key, file.Data, file.ContentType)
	if err != nil {
		return nil, err
	}

	logger.Info("Image uploaded", zap.String("key", key), zap.Int64("size", file.Size()))
	return &models.UploadedImage{URL: url, Key: key, Size: file.Size()}, nil
}

// DeleteImage removes an image previously returned by UploadImage. URLs that
// do not point into the bucket are rejected.
func (s *UploadService) DeleteImage(ctx context.Context, imageURL string) error {
	if s.storage == nil {
		return apperrors.UnavailableError(storageNotConfig)
	}

	key, ok := s.storage.KeyFromURL(imageURL)
	if !ok || !strings.HasPrefix(key, imageKeyPrefix+"/") {
		return apperrors.NewValidationError("imageUrl", "Image URL does not belong to this site")
	}
	return s.storage.DeleteObject(ctx, key)
}
