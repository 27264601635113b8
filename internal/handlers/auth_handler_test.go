package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/devportfolio/portfolio-api/internal/middleware"
	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/services"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/devportfolio/portfolio-api/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Login(t *testing.T) {
	svc := new(MockAuthService)
	handler := NewAuthHandler(svc)
	router := gin.New()
	router.POST("/admin/login", handler.Login)

	resp := &models.LoginResponse{Token: "tok", Admin: &models.Admin{ID: "a1", Username: "owner"}, ExpiresAt: time.Now().Add(time.Hour)}
	svc.On("Login", mock.Anything, &models.LoginRequest{Username: "owner", Password: "pw"}).Return(resp, nil).Once()

	w := doJSON(router, http.MethodPost, "/admin/login", gin.H{"username": "owner", "password": "pw"})

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"token":"tok"`)
	assert.NotContains(t, string(env.Data), "passwordHash")
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	svc := new(MockAuthService)
	router := gin.New()
	router.POST("/admin/login", NewAuthHandler(svc).Login)

	svc.On("Login", mock.Anything, mock.Anything).Return(nil, services.ErrInvalidCredentials).Once()

	w := doJSON(router, http.MethodPost, "/admin/login", gin.H{"username": "owner", "password": "bad"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w).Message)
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	svc := new(MockAuthService)
	router := gin.New()
	router.POST("/admin/login", NewAuthHandler(svc).Login)

	w := doJSON(router, http.MethodPost, "/admin/login", gin.H{"username": "owner"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	if assert.NotEmpty(t, env.Errors) {
		assert.Equal(t, "password", env.Errors[0].Field)
	}
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func withClaims(claims *jwt.AdminClaims) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AdminClaimsContextKey, claims)
		c.Next()
	}
}

func TestAuthHandler_VerifyAndLogout(t *testing.T) {
	svc := new(MockAuthService)
	handler := NewAuthHandler(svc)
	claims := &jwt.AdminClaims{AdminID: "a1", Username: "owner"}

	router := gin.New()
	router.Use(withClaims(claims))
	router.GET("/admin/verify", handler.Verify)
	router.POST("/admin/logout", handler.Logout)

	svc.On("Profile", mock.Anything, "a1").Return(&models.Admin{ID: "a1", Username: "owner"}, nil).Once()
	svc.On("Logout", mock.Anything, claims).Return(nil).Once()

	w := doJSON(router, http.MethodGet, "/admin/verify", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"username":"owner"`)

	w = doJSON(router, http.MethodPost, "/admin/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestAuthHandler_VerifyDeletedAdmin(t *testing.T) {
	svc := new(MockAuthService)
	router := gin.New()
	router.Use(withClaims(&jwt.AdminClaims{AdminID: "gone"}))
	router.GET("/admin/verify", NewAuthHandler(svc).Verify)

	svc.On("Profile", mock.Anything, "gone").Return(nil, apperrors.NotFoundError("admin")).Once()

	w := doJSON(router, http.MethodGet, "/admin/verify", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
