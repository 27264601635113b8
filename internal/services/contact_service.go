package services

import (
	"context"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/repository"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/devportfolio/portfolio-api/pkg/httpclient"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/devportfolio/portfolio-api/pkg/metrics"
	"github.com/devportfolio/portfolio-api/pkg/tracing"
	"github.com/devportfolio/portfolio-api/pkg/trigger"
	"go.uber.org/zap"
)

const (
	MsgContactFieldsRequired = "All fields are required"
	MsgContactInvalidEmail   = "Please provide a valid email address"
	contactEventType         = "contact_message_created"
)

// ContactService handles contact form submissions
type ContactService struct {
	repo       repository.MessageStore
	notifyURL  string
	httpClient httpclient.Client
}

// NewContactService creates the service. An empty notifyURL disables the webhook.
func NewContactService(repo repository.MessageStore, notifyURL string, httpClient httpclient.Client) *ContactService {
	return &ContactService{repo: repo, notifyURL: notifyURL, httpClient: httpClient}
}

// Submit validates and stores a message, then notifies the owner in the background
func (s *ContactService) Submit(ctx context.Context, req *models.ContactRequest) (msg *models.ContactMessage, err error) {
	ctx, span := tracing.StartSpan(ctx, "ContactService.Submit")
	defer func() { tracing.EndSpan(span, err) }()

	req.Trim()
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		metrics.ContactFormSubmissions.WithLabelValues("invalid").Inc()
		return nil, apperrors.NewValidationError("", MsgContactFieldsRequired)
	}
	if !models.IsValidEmail(req.Email) {
		metrics.ContactFormSubmissions.WithLabelValues("invalid").Inc()
		return nil, apperrors.NewValidationError("email", MsgContactInvalidEmail)
	}

	msg = &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err = s.repo.Create(ctx, msg); err != nil {
		metrics.ContactFormSubmissions.WithLabelValues("error").Inc()
		logger.Error("Failed to store contact message", zap.Error(err))
		return nil, err
	}

	metrics.ContactFormSubmissions.WithLabelValues("success").Inc()
	logger.Info("Contact message received", zap.String("message_id", msg.ID))

	trigger.PostAsync(s.notifyURL, trigger.Event{
		Type:     contactEventType,
		RecordID: msg.ID,
		Payload:  msg,
	}, s.httpClient)

	return msg, nil
}
