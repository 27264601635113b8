package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/devportfolio/portfolio-api/internal/cache"
	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/repository"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/devportfolio/portfolio-api/pkg/jwt"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/devportfolio/portfolio-api/pkg/metrics"
	"github.com/devportfolio/portfolio-api/pkg/password"
	"github.com/devportfolio/portfolio-api/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	ErrTokenRevoked       = fmt.Errorf("token has been revoked: %w", apperrors.ErrUnauthorized)
)

// AuthService handles admin username/password login and bearer token checks.
type AuthService struct {
	admins       repository.AdminStore
	tokenManager *jwt.TokenManager
	passwords    *password.Service
	revocations  cache.RevocationStore

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(
	admins repository.AdminStore,
	tokenManager *jwt.TokenManager,
	passwords *password.Service,
	revocations cache.RevocationStore,
) *AuthService {
	return &AuthService{
		admins:       admins,
		tokenManager: tokenManager,
		passwords:    passwords,
		revocations:  revocations,
	}
}

// Login verifies credentials and issues a session token. Unknown usernames
// still pay for a bcrypt comparison.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (resp *models.LoginResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, "AuthService.Login", attribute.String("admin.username", req.Username))
	defer func() { tracing.EndSpan(span, err) }()

	admin, err := s.admins.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			metrics.AdminLogins.WithLabelValues("error").Inc()
			return nil, err
		}
		_ = s.passwords.Verify(s.dummy(), req.Password) //nolint:errcheck
		metrics.AdminLogins.WithLabelValues("invalid").Inc()
		logger.Warn("Admin login for unknown username", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	if err := s.passwords.Verify(admin.PasswordHash, req.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			metrics.AdminLogins.WithLabelValues("invalid").Inc()
			logger.Warn("Admin login with wrong password", zap.String("admin_id", admin.ID))
			return nil, ErrInvalidCredentials
		}
		metrics.AdminLogins.WithLabelValues("error").Inc()
		return nil, err
	}

	role := admin.Role
	if role == "" {
		role = models.AdminRole
	}
	token, expiresAt, err := s.tokenManager.GenerateToken(admin.ID, admin.Username, role)
	if err != nil {
		metrics.AdminLogins.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to generate admin session token: %w", err)
	}

	if err := s.admins.UpdateLastLogin(ctx, admin.ID); err != nil {
		logger.Error("Failed to update admin last login", zap.String("admin_id", admin.ID), zap.Error(err))
	}

	metrics.AdminLogins.WithLabelValues("success").Inc()
	logger.Info("Admin logged in", zap.String("admin_id", admin.ID))

	return &models.LoginResponse{Token: token, Admin: admin, ExpiresAt: expiresAt}, nil
}

// Authenticate validates a bearer token and rejects revoked ones
func (s *AuthService) Authenticate(ctx context.Context, token string) (*jwt.AdminClaims, error) {
	claims, err := s.tokenManager.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.TokenID())
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// Logout denylists the token until it would have expired
func (s *AuthService) Logout(ctx context.Context, claims *jwt.AdminClaims) error {
	if err := s.revocations.Revoke(ctx, claims.TokenID(), claims.Expiry()); err != nil {
		return err
	}
	logger.Info("Admin logged out", zap.String("admin_id", claims.AdminID))
	return nil
}

func (s *AuthService) Profile(ctx context.Context, adminID string) (*models.Admin, error) {
	return s.admins.GetByID(ctx, adminID)
}

// EnsureAdmin creates the bootstrap account when it does not exist yet
func (s *AuthService) EnsureAdmin(ctx context.Context, username, plaintext, email, name string) error {
	hash, err := s.passwords.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}

	created, err := s.admins.CreateIfMissing(ctx, &models.Admin{
		Username:     username,
		Email:        email,
		Name:         name,
		Role:         models.AdminRole,
		PasswordHash: hash,
	})
	if err != nil {
		return err
	}
	if created {
		logger.Info("Bootstrap admin created", zap.String("username", username))
	}
	return nil
}

func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := s.passwords.Hash("portfolio-timing-equalizer")
		if err != nil {
			logger.Error("Failed to build dummy password hash", zap.Error(err))
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
