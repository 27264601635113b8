package services

import (
	"context"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/repository"
)

const resourceMessages = "messages"

// MessageService manages the contact form inbox. Messages are never part of
// a public view, so inbox writes leave the public cache alone.
type MessageService struct {
	repo  repository.MessageStore
	cache CacheInvalidator
}

func NewMessageService(repo repository.MessageStore) *MessageService {
	return &MessageService{repo: repo, cache: noopInvalidator{}}
}

func (s *MessageService) List(ctx context.Context, filter models.MessageFilter) ([]*models.ContactMessage, error) {
	return s.repo.List(ctx, filter)
}

func (s *MessageService) MarkRead(ctx context.Context, id string) (msg *models.ContactMessage, err error) {
	defer func() { afterWrite(s.cache, resourceMessages, "mark_read", err) }()
	return s.repo.MarkRead(ctx, id)
}

func (s *MessageService) ToggleRead(ctx context.Context, id string) (msg *models.ContactMessage, err error) {
	defer func() { afterWrite(s.cache, resourceMessages, "toggle_read", err) }()
	return s.repo.ToggleRead(ctx, id)
}

func (s *MessageService) Delete(ctx context.Context, id string) (err error) {
	defer func() { afterWrite(s.cache, resourceMessages, "delete", err) }()
	_, err = s.repo.Delete(ctx, id)
	return err
}
