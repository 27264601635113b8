package handlers

import (
	"errors"
	"net/http"

	"github.com/devportfolio/portfolio-api/internal/middleware"
	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/services"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service services.AuthServiceInterface
}

func NewAuthHandler(service services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Username and password are required", ParseValidationErrors(err), err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials", err)
			return
		}
		respondServiceError(c, "admin", err)
		return
	}

	respondOK(c, http.StatusOK, "Login successful", resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims, err := middleware.GetAdminClaims(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := h.service.Logout(c.Request.Context(), claims); err != nil {
		respondServiceError(c, "", err)
		return
	}

	respondOK(c, http.StatusOK, "Logged out successfully", nil)
}

// Verify confirms the presented token and returns the admin it belongs to
func (h *AuthHandler) Verify(c *gin.Context) {
	h.currentAdmin(c, "Token is valid")
}

func (h *AuthHandler) Profile(c *gin.Context) {
	h.currentAdmin(c, "Profile retrieved")
}

func (h *AuthHandler) currentAdmin(c *gin.Context, message string) {
	claims, err := middleware.GetAdminClaims(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	admin, err := h.service.Profile(c.Request.Context(), claims.AdminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusUnauthorized, "Invalid token", err)
			return
		}
		respondServiceError(c, "admin", err)
		return
	}

	respondOK(c, http.StatusOK, message, admin)
}
