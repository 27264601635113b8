package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/devportfolio/portfolio-api/internal/models"
	"go.uber.org/zap"
)

const projectColumns = `id, title, description, technologies, image_url, github_url, live_url,
	category, featured, completion_date, challenges, solutions, created_at, updated_at`

type ProjectRepository struct {
	db DB
}

func NewProjectRepository(db DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func scanProject(row rowScanner) (*models.Project, error) {
	var p models.Project
	var category string
	var completion *time.Time
	if err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Technologies, &p.ImageURL, &p.GithubURL, &p.LiveURL,
		&category, &p.Featured, &completion, &p.Challenges, &p.Solutions, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Category = models.ProjectCategory(category)
	p.CompletionDate = dateFrom(completion)
	p.Technologies = nonNil(p.Technologies)
	p.Challenges = nonNil(p.Challenges)
	p.Solutions = nonNil(p.Solutions)
	return &p, nil
}

// projectListQuery builds the filtered listing and the matching count query
func projectListQuery(filter models.ProjectFilter) (list string, count string, args []any) {
	filter = filter.Normalize()

	var where []string
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		where = append(where, fmt.Sprintf("featured = $%d", len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	count = "SELECT COUNT(*) FROM projects" + clause
	list = "SELECT " + projectColumns + " FROM projects" + clause + " ORDER BY featured DESC, created_at DESC"
	if filter.Limit > 0 {
		list += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit, (filter.Page-1)*filter.Limit)
	}
	return list, count, args
}

// List returns one page of projects and the number of projects matching the filter
func (r *ProjectRepository) List(ctx context.Context, filter models.ProjectFilter) (projects []*models.Project, total int, err error) {
	start := time.Now()
	defer func() { observe("listProjects", start, err, zap.Int("count", len(projects))) }()

	list, count, args := projectListQuery(filter)
	if err = r.db.QueryRow(ctx, count, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	rows, err := r.db.Query(ctx, list, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query projects: %w", err)
	}
	projects, err = collect(rows, scanProject)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan project row: %w", err)
	}
	return projects, total, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return getByID(ctx, r.db, "getProject", "project", "projects", projectColumns, id, scanProject)
}

// Create inserts p, assigning its id and timestamps
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) (err error) {
	start := time.Now()
	defer func() { observe("createProject", start, err) }()

	p.ID = newID()
	query := `
		INSERT INTO projects (id, title, description, technologies, image_url, github_url, live_url,
			category, featured, completion_date, challenges, solutions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query,
		p.ID, p.Title, p.Description, nonNil(p.Technologies), p.ImageURL, p.GithubURL, p.LiveURL,
		string(p.Category), p.Featured, dateArg(p.CompletionDate), nonNil(p.Challenges), nonNil(p.Solutions),
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}
	return nil
}

// Update writes every mutable column of p
func (r *ProjectRepository) Update(ctx context.Context, p *models.Project) (err error) {
	start := time.Now()
	defer func() { observe("updateProject", start, err) }()

	query := `
		UPDATE projects
		SET title = $2, description = $3, technologies = $4, image_url = $5, github_url = $6,
			live_url = $7, category = $8, featured = $9, completion_date = $10, challenges = $11,
			solutions = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err = r.db.QueryRow(ctx, query,
		p.ID, p.Title, p.Description, nonNil(p.Technologies), p.ImageURL, p.GithubURL, p.LiveURL,
		string(p.Category), p.Featured, dateArg(p.CompletionDate), nonNil(p.Challenges), nonNil(p.Solutions),
	).Scan(&p.UpdatedAt)
	if err != nil {
		return notFound(err, "project")
	}
	return nil
}

// Delete removes the project and reports whether a row existed
func (r *ProjectRepository) Delete(ctx context.Context, id string) (deleted bool, err error) {
	return deleteByID(ctx, r.db, "deleteProject", "projects", id)
}

func (r *ProjectRepository) ToggleFeatured(ctx context.Context, id string) (*models.Project, error) {
	return updateReturning(ctx, r.db, "toggleProjectFeatured", "project", "projects",
		"featured = NOT featured, updated_at = NOW()", projectColumns, id, scanProject)
}

func (r *ProjectRepository) Stats(ctx context.Context) (stats *models.ProjectStats, err error) {
	start := time.Now()
	defer func() { observe("projectStats", start, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT category, COUNT(*), COUNT(*) FILTER (WHERE featured)
		FROM projects
		GROUP BY category
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query project stats: %w", err)
	}
	defer rows.Close()

	result := models.ComputeProjectStats(nil)
	for rows.Next() {
		var category string
		var total, featured int
		if err = rows.Scan(&category, &total, &featured); err != nil {
			return nil, fmt.Errorf("failed to scan project stats: %w", err)
		}
		result.Total += total
		result.Featured += featured
		result.ByCategory[category] = total
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project stats: %w", err)
	}
	return &result, nil
}
