package services

import (
	"context"
	"io"

	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/devportfolio/portfolio-api/pkg/metrics"
	"github.com/devportfolio/portfolio-api/pkg/storage"
	"go.uber.org/zap"
)

// CacheInvalidator drops public views after writes. Invalidate drops every
// view; Delete only the named ones.
type CacheInvalidator interface {
	Invalidate()
	Delete(keys ...string)
}

// ObjectStorage stores resume files and uploaded images
type ObjectStorage interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error)
	GetObject(ctx context.Context, key string) (*storage.Object, error)
	DeleteObject(ctx context.Context, key string) error
	KeyFromURL(rawURL string) (string, bool)
}

var _ ObjectStorage = (*storage.Client)(nil)

// UploadedFile is a multipart file read into memory
type UploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f *UploadedFile) Size() int64 {
	return int64(len(f.Data))
}

// ResumeDownload is an open resume file. Callers must close Body.
type ResumeDownload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate() {}

func (noopInvalidator) Delete(...string) {}

func invalidatorOrNoop(c CacheInvalidator) CacheInvalidator {
	if c == nil {
		return noopInvalidator{}
	}
	return c
}

// afterWrite records an admin mutation and flushes public views on success
func afterWrite(cache CacheInvalidator, resource, operation string, err error) {
	metrics.AdminWrites.WithLabelValues(resource, operation, metrics.StatusLabel(err)).Inc()
	if err != nil {
		return
	}
	cache.Invalidate()
	logger.Debug("Admin write applied", zap.String("resource", resource), zap.String("operation", operation))
}
