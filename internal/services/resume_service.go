package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/devportfolio/portfolio-api/internal/cache"
	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/repository"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/devportfolio/portfolio-api/pkg/metrics"
	"github.com/devportfolio/portfolio-api/pkg/slug"
	"github.com/devportfolio/portfolio-api/pkg/storage"
	"github.com/devportfolio/portfolio-api/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	resourceResumes  = "resumes"
	resumeKeyPrefix  = "resumes"
	resumeMimeType   = "application/pdf"
	storageNotConfig = "object storage"
)

// ResumeService stores resume PDFs in object storage and their metadata in the database
type ResumeService struct {
	repo    repository.ResumeStore
	storage ObjectStorage
	cache   CacheInvalidator
}

// NewResumeService creates the service. objects may be nil when storage is not
// configured, in which case uploads and downloads report ErrUnavailable.
func NewResumeService(repo repository.ResumeStore, objects ObjectStorage, cache CacheInvalidator) *ResumeService {
	return &ResumeService{repo: repo, storage: objects, cache: invalidatorOrNoop(cache)}
}

func (s *ResumeService) List(ctx context.Context) ([]*models.Resume, error) {
	return s.repo.List(ctx, false)
}

func (s *ResumeService) Get(ctx context.Context, id string) (*models.Resume, error) {
	return s.repo.GetByID(ctx, id)
}

// Upload validates the PDF, stores it and records its metadata. The stored
// object is removed again when the database insert fails.
func (s *ResumeService) Upload(ctx context.Context, form *models.ResumeUploadForm, file *UploadedFile) (resume *models.Resume, err error) {
	ctx, span := tracing.StartSpan(ctx, "ResumeService.Upload", attribute.Int64("file.size", file.Size()))
	defer func() {
		tracing.EndSpan(span, err)
		metrics.FileUploads.WithLabelValues("resume", metrics.StatusLabel(err)).Inc()
		afterWrite(s.cache, resourceResumes, "create", err)
	}()

	if s.storage == nil {
		return nil, apperrors.UnavailableError(storageNotConfig)
	}
	if err = storage.ValidateResume(file.ContentType, file.Size()); err != nil {
		return nil, apperrors.NewValidationError("resume", err.Error())
	}

	key := slug.ObjectKey(resumeKeyPrefix, file.Name)
	if _, err = s.storage.PutObject(ctx, key, file.Data, resumeMimeType); err != nil {
		return nil, err
	}

	resume = form.ToResume(file.Name)
	resume.FileKey = key
	resume.FileSize = file.Size()
	resume.MimeType = resumeMimeType

	if err = s.repo.Create(ctx, resume); err != nil {
		if delErr := s.storage.DeleteObject(ctx, key); delErr != nil {
			logger.Error("Failed to remove orphaned resume object", zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}

	logger.Info("Resume uploaded", zap.String("resume_id", resume.ID), zap.Int64("size", resume.FileSize))
	return resume, nil
}

func (s *ResumeService) Update(ctx context.Context, id string, req *models.UpdateResumeRequest) (resume *models.Resume, err error) {
	defer func() { afterWrite(s.cache, resourceResumes, "update", err) }()

	resume, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(resume)
	if err = s.repo.Update(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// Delete removes the metadata row and then the stored file. Deleting an absent id succeeds.
func (s *ResumeService) Delete(ctx context.Context, id string) (err error) {
	defer func() { afterWrite(s.cache, resourceResumes, "delete", err) }()

	resume, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if resume == nil {
		logger.Info("Resume already absent on delete", zap.String("resume_id", id))
		return nil
	}
	if s.storage != nil && resume.FileKey != "" {
		if delErr := s.storage.DeleteObject(ctx, resume.FileKey); delErr != nil {
			logger.Error("Failed to delete resume object", zap.String("key", resume.FileKey), zap.Error(delErr))
		}
	}
	return nil
}

// ToggleActive flips the active flag. At most one resume stays active.
func (s *ResumeService) ToggleActive(ctx context.Context, id string) (resume *models.Resume, err error) {
	defer func() { afterWrite(s.cache, resourceResumes, "toggle_active", err) }()
	return s.repo.ToggleActive(ctx, id)
}

func (s *ResumeService) TogglePublic(ctx context.Context, id string) (resume *models.Resume, err error) {
	defer func() { afterWrite(s.cache, resourceResumes, "toggle_public", err) }()
	return s.repo.TogglePublic(ctx, id)
}

// Download opens a public resume for streaming and counts the download
func (s *ResumeService) Download(ctx context.Context, id string) (download *ResumeDownload, err error) {
	ctx, span := tracing.StartSpan(ctx, "ResumeService.Download", attribute.String("resume.id", id))
	defer func() {
		tracing.EndSpan(span, err)
		metrics.ResumeDownloads.WithLabelValues(metrics.StatusLabel(err)).Inc()
	}()

	resume, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !resume.IsPublic {
		return nil, apperrors.NotFoundError("resume")
	}
	if s.storage == nil {
		return nil, apperrors.UnavailableError(storageNotConfig)
	}

	obj, err := s.storage.GetObject(ctx, resume.FileKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			logger.Error("Resume file missing from storage", zap.String("resume_id", id), zap.String("key", resume.FileKey))
			return nil, apperrors.NotFoundError("resume file")
		}
		return nil, err
	}

	if err := s.repo.IncrementDownloads(ctx, id); err != nil {
		logger.Error("Failed to increment resume download count", zap.String("resume_id", id), zap.Error(err))
	} else {
		// only the resume views carry download counts
		s.cache.Delete(cache.PublicResumesKey, cache.PublicActiveKey)
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = resumeMimeType
	}
	size := obj.Size
	if size <= 0 {
		size = resume.FileSize
	}

	return &ResumeDownload{
		Filename:    downloadName(resume),
		ContentType: contentType,
		Size:        size,
		Body:        obj.Body,
	}, nil
}

func downloadName(r *models.Resume) string {
	if r.OriginalName != "" {
		return r.OriginalName
	}
	name := slug.Make(r.Title)
	if name == "" {
		name = "resume"
	}
	return fmt.Sprintf("%s.pdf", name)
}
