package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/devportfolio/portfolio-api/internal/models"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
)

const adminColumns = `id, username, email, name, role, password_hash, last_login, created_at`

type AdminRepository struct {
	db DB
}

func NewAdminRepository(db DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func scanAdmin(row rowScanner) (*models.Admin, error) {
	var a models.Admin
	if err := row.Scan(&a.ID, &a.Username, &a.Email, &a.Name, &a.Role, &a.PasswordHash, &a.LastLogin, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (admin *models.Admin, err error) {
	start := time.Now()
	defer func() { observe("getAdminByUsername", start, err) }()

	admin, err = scanAdmin(r.db.QueryRow(ctx, "SELECT "+adminColumns+" FROM admins WHERE username = $1 LIMIT 1", username))
	if err != nil {
		return nil, notFound(err, "admin")
	}
	return admin, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	return getByID(ctx, r.db, "getAdmin", "admin", "admins", adminColumns, id, scanAdmin)
}

// CreateIfMissing inserts the admin unless the username is taken and reports
// whether a row was created
func (r *AdminRepository) CreateIfMissing(ctx context.Context, a *models.Admin) (created bool, err error) {
	start := time.Now()
	defer func() { observe("createAdmin", start, err) }()

	if a.ID == "" {
		a.ID = newID()
	}
	tag, err := r.db.Exec(ctx, `
		INSERT INTO admins (id, username, email, name, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (username) DO NOTHING
	`, a.ID, a.Username, a.Email, a.Name, a.Role, a.PasswordHash)
	if err != nil {
		return false, fmt.Errorf("failed to insert admin: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { observe("updateAdminLastLogin", start, err) }()

	tag, err := r.db.Exec(ctx, "UPDATE admins SET last_login = NOW(), updated_at = NOW() WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundError("admin")
	}
	return nil
}
