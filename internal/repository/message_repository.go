package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/devportfolio/portfolio-api/internal/models"
	"go.uber.org/zap"
)

const messageColumns = `id, name, email, subject, message, read, created_at`

type MessageRepository struct {
	db DB
}

func NewMessageRepository(db DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func scanMessage(row rowScanner) (*models.ContactMessage, error) {
	var m models.ContactMessage
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns the inbox newest first
func (r *MessageRepository) List(ctx context.Context, filter models.MessageFilter) (messages []*models.ContactMessage, err error) {
	start := time.Now()
	defer func() { observe("listMessages", start, err, zap.Int("count", len(messages))) }()

	query := "SELECT " + messageColumns + " FROM contact_messages"
	var args []any
	if filter.Read != nil {
		query += " WHERE read = $1"
		args = append(args, *filter.Read)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	messages, err = collect(rows, scanMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to scan message row: %w", err)
	}
	return messages, nil
}

func (r *MessageRepository) Create(ctx context.Context, m *models.ContactMessage) (err error) {
	start := time.Now()
	defer func() { observe("createMessage", start, err) }()

	m.ID = newID()
	err = r.db.QueryRow(ctx, `
		INSERT INTO contact_messages (id, name, email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING read, created_at
	`, m.ID, m.Name, m.Email, m.Subject, m.Message).Scan(&m.Read, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	return updateReturning(ctx, r.db, "markMessageRead", "message", "contact_messages",
		"read = TRUE", messageColumns, id, scanMessage)
}

func (r *MessageRepository) ToggleRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	return updateReturning(ctx, r.db, "toggleMessageRead", "message", "contact_messages",
		"read = NOT read", messageColumns, id, scanMessage)
}

func (r *MessageRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.db, "deleteMessage", "contact_messages", id)
}
