package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// Ping checks if the database connection is alive
func (r *StatsRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Statistics aggregates dashboard totals and the most recent activity
func (r *StatsRepository) Statistics(ctx context.Context, recent int) (stats *models.Statistics, err error) {
	start := time.Now()
	defer func() { observe("statistics", start, err) }()

	stats = &models.Statistics{}
	err = r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM projects),
			(SELECT COUNT(*) FROM projects WHERE featured),
			(SELECT COUNT(*) FROM contact_messages),
			(SELECT COUNT(*) FROM contact_messages WHERE NOT read),
			(SELECT COUNT(*) FROM skills),
			(SELECT COUNT(*) FROM highlights),
			(SELECT COUNT(*) FROM resumes),
			(SELECT COALESCE(SUM(download_count), 0) FROM resumes)
	`).Scan(
		&stats.TotalProjects, &stats.FeaturedProjects, &stats.TotalMessages, &stats.UnreadMessages,
		&stats.TotalSkills, &stats.TotalHighlights, &stats.TotalResumes, &stats.TotalDownloads,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query totals: %w", err)
	}

	projectStats, err := r.projectsByCategory(ctx)
	if err != nil {
		return nil, err
	}
	stats.ProjectsByCategory = projectStats

	stats.RecentActivity, err = r.recentActivity(ctx, recent)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *StatsRepository) projectsByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, "SELECT category, COUNT(*) FROM projects GROUP BY category")
	if err != nil {
		return nil, fmt.Errorf("failed to query projects by category: %w", err)
	}
	defer rows.Close()

	byCategory := models.ComputeProjectStats(nil).ByCategory
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		byCategory[category] = count
	}
	return byCategory, rows.Err()
}

func (r *StatsRepository) recentActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	rows, err := r.pool.Query(ctx, `
		(SELECT 'New message from ' || name, created_at FROM contact_messages ORDER BY created_at DESC LIMIT $1)
		UNION ALL
		(SELECT 'Project updated: ' || title, updated_at FROM projects ORDER BY updated_at DESC LIMIT $1)
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activity: %w", err)
	}
	defer rows.Close()

	activity := make([]models.ActivityEntry, 0, 2*limit)
	for rows.Next() {
		var entry models.ActivityEntry
		if err := rows.Scan(&entry.Action, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		activity = append(activity, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return latestActivity(activity, limit), nil
}

// latestActivity keeps the limit newest entries, newest first
func latestActivity(entries []models.ActivityEntry, limit int) []models.ActivityEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
