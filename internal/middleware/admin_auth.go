package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/devportfolio/portfolio-api/pkg/jwt"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// AdminClaimsContextKey stores the authenticated admin claims in request context.
	AdminClaimsContextKey = "admin_claims"

	bearerPrefix = "Bearer "
)

var (
	ErrAdminClaimsNotFound = errors.New("admin claims not found in context")
	ErrInvalidAdminClaims  = errors.New("invalid admin claims type")
)

// TokenAuthenticator validates a bearer token and returns its claims
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*jwt.AdminClaims, error)
}

// AdminAuthMiddleware requires an "Authorization: Bearer <token>" header and
// stores the validated claims in context. Errors matching revoked are
// reported as revoked tokens.
func AdminAuthMiddleware(auth TokenAuthenticator, revoked error) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			logger.Warn("Missing admin bearer token",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			abortWithMessage(c, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			_ = c.Error(fmt.Errorf("admin token rejected: %w", err)) //nolint:errcheck
			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				abortWithMessage(c, http.StatusUnauthorized, "Token expired")
			case revoked != nil && errors.Is(err, revoked):
				abortWithMessage(c, http.StatusUnauthorized, "Token has been revoked")
			case errors.Is(err, jwt.ErrInvalidToken), errors.Is(err, jwt.ErrInvalidClaim):
				abortWithMessage(c, http.StatusUnauthorized, "Invalid token")
			default:
				logger.Error("Admin token check failed", zap.Error(err))
				abortWithMessage(c, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		c.Set(AdminClaimsContextKey, claims)
		c.Next()
	}
}

// GetAdminClaims returns the claims stored by AdminAuthMiddleware
func GetAdminClaims(c *gin.Context) (*jwt.AdminClaims, error) {
	val, exists := c.Get(AdminClaimsContextKey)
	if !exists {
		return nil, ErrAdminClaimsNotFound
	}

	claims, ok := val.(*jwt.AdminClaims)
	if !ok {
		return nil, ErrInvalidAdminClaims
	}

	return claims, nil
}

func bearerToken(header string) string {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

func abortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}
