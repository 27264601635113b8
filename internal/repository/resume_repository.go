package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devportfolio/portfolio-api/internal/models"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const resumeColumns = `id, title, version, description, tags, is_public, is_active, file_key, file_size,
	original_name, mime_type, download_count, created_at, updated_at`

type ResumeRepository struct {
	db DB
}

func NewResumeRepository(db DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

func scanResume(row rowScanner) (*models.Resume, error) {
	var r models.Resume
	if err := row.Scan(
		&r.ID, &r.Title, &r.Version, &r.Description, &r.Tags, &r.IsPublic, &r.IsActive, &r.FileKey,
		&r.FileSize, &r.OriginalName, &r.MimeType, &r.DownloadCount, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	r.Tags = nonNil(r.Tags)
	return &r, nil
}

// List returns resumes newest first
func (r *ResumeRepository) List(ctx context.Context, publicOnly bool) (resumes []*models.Resume, err error) {
	start := time.Now()
	defer func() { observe("listResumes", start, err, zap.Int("count", len(resumes))) }()

	query := "SELECT " + resumeColumns + " FROM resumes"
	if publicOnly {
		query += " WHERE is_public"
	}
	query += " ORDER BY is_active DESC, created_at DESC"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query resumes: %w", err)
	}
	resumes, err = collect(rows, scanResume)
	if err != nil {
		return nil, fmt.Errorf("failed to scan resume row: %w", err)
	}
	return resumes, nil
}

func (r *ResumeRepository) GetByID(ctx context.Context, id string) (*models.Resume, error) {
	return getByID(ctx, r.db, "getResume", "resume", "resumes", resumeColumns, id, scanResume)
}

// GetActivePublic returns the resume shown on the public site
func (r *ResumeRepository) GetActivePublic(ctx context.Context) (resume *models.Resume, err error) {
	start := time.Now()
	defer func() { observe("getActiveResume", start, err) }()

	query := "SELECT " + resumeColumns + " FROM resumes WHERE is_active AND is_public ORDER BY updated_at DESC LIMIT 1"
	resume, err = scanResume(r.db.QueryRow(ctx, query))
	if err != nil {
		return nil, notFound(err, "active resume")
	}
	return resume, nil
}

func (r *ResumeRepository) Create(ctx context.Context, res *models.Resume) (err error) {
	start := time.Now()
	defer func() { observe("createResume", start, err) }()

	res.ID = newID()
	query := `
		INSERT INTO resumes (id, title, version, description, tags, is_public, is_active, file_key,
			file_size, original_name, mime_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING download_count, created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query,
		res.ID, res.Title, res.Version, res.Description, nonNil(res.Tags), res.IsPublic, res.IsActive,
		res.FileKey, res.FileSize, res.OriginalName, res.MimeType,
	).Scan(&res.DownloadCount, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert resume: %w", err)
	}
	return nil
}

// Update writes the editable metadata of res
func (r *ResumeRepository) Update(ctx context.Context, res *models.Resume) (err error) {
	start := time.Now()
	defer func() { observe("updateResume", start, err) }()

	err = r.db.QueryRow(ctx, `
		UPDATE resumes
		SET title = $2, version = $3, description = $4, tags = $5, is_public = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, res.ID, res.Title, res.Version, res.Description, nonNil(res.Tags), res.IsPublic).Scan(&res.UpdatedAt)
	if err != nil {
		return notFound(err, "resume")
	}
	return nil
}

// Delete removes the row and returns it so the caller can drop the stored
// file. A missing row yields (nil, nil).
func (r *ResumeRepository) Delete(ctx context.Context, id string) (resume *models.Resume, err error) {
	start := time.Now()
	defer func() { observe("deleteResume", start, err, zap.Bool("deleted", resume != nil)) }()

	if !validID(id) {
		return nil, nil
	}
	resume, err = scanResume(r.db.QueryRow(ctx, "DELETE FROM resumes WHERE id = $1 RETURNING "+resumeColumns, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete resume: %w", err)
	}
	return resume, nil
}

// ToggleActive flips the active flag. Activating a resume deactivates every
// other resume in the same transaction.
func (r *ResumeRepository) ToggleActive(ctx context.Context, id string) (resume *models.Resume, err error) {
	start := time.Now()
	defer func() { observe("toggleResumeActive", start, err) }()

	if !validID(id) {
		return nil, apperrors.NotFoundError("resume")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var active bool
	if err = tx.QueryRow(ctx, "SELECT is_active FROM resumes WHERE id = $1 FOR UPDATE", id).Scan(&active); err != nil {
		return nil, notFound(err, "resume")
	}

	if !active {
		if _, err = tx.Exec(ctx, "UPDATE resumes SET is_active = FALSE, updated_at = NOW() WHERE is_active AND id <> $1", id); err != nil {
			return nil, fmt.Errorf("failed to deactivate resumes: %w", err)
		}
	}

	resume, err = scanResume(tx.QueryRow(ctx,
		"UPDATE resumes SET is_active = NOT is_active, updated_at = NOW() WHERE id = $1 RETURNING "+resumeColumns, id))
	if err != nil {
		return nil, fmt.Errorf("failed to toggle resume: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit resume toggle: %w", err)
	}
	return resume, nil
}

func (r *ResumeRepository) TogglePublic(ctx context.Context, id string) (*models.Resume, error) {
	return updateReturning(ctx, r.db, "toggleResumePublic", "resume", "resumes",
		"is_public = NOT is_public, updated_at = NOW()", resumeColumns, id, scanResume)
}

func (r *ResumeRepository) IncrementDownloads(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { observe("incrementResumeDownloads", start, err) }()

	tag, err := r.db.Exec(ctx, "UPDATE resumes SET download_count = download_count + 1 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to increment download count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundError("resume")
	}
	return nil
}
