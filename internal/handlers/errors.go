package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/devportfolio/portfolio-api/internal/models"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInternalError = "Internal server error"

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, models.Envelope{Success: true, Message: message, Data: data})
}

// respondList adds the total match count for paginated listings
func respondList(c *gin.Context, message string, data any, total int) {
	c.JSON(http.StatusOK, models.Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    map[string]any{"total": total},
	})
}

// respondError sends an error envelope and attaches the error to the gin context
// so the observability middleware can include the reason in the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, models.Envelope{Success: false, Message: message})
}

// respondErrorWithDetails sends an error envelope with field level details.
func respondErrorWithDetails(c *gin.Context, status int, message string, details []models.FieldError, err error) {
	attachError(c, err)
	c.JSON(status, models.Envelope{Success: false, Message: message, Errors: details})
}

// respondBindError reports a request body or form that failed binding. The
// message names every failing field so clients can show it as is.
func respondBindError(c *gin.Context, err error) {
	details := ParseValidationErrors(err)
	if len(details) == 0 {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	respondErrorWithDetails(c, http.StatusBadRequest, validationMessage(details), details, err)
}

func validationMessage(details []models.FieldError) string {
	messages := make([]string, len(details))
	for i, d := range details {
		messages[i] = d.Message
	}
	return strings.Join(messages, "; ")
}

// respondServiceError maps service errors to status codes. resource names the
// entity for not found responses, e.g. "project".
func respondServiceError(c *gin.Context, resource string, err error) {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		var details []models.FieldError
		if verr.Field != "" {
			details = []models.FieldError{{Field: verr.Field, Message: verr.Message}}
		}
		respondErrorWithDetails(c, http.StatusBadRequest, verr.Message, details, err)
	case errors.Is(err, apperrors.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, "Invalid request", err)
	case errors.Is(err, apperrors.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, notFoundMessage(resource), err)
	case errors.Is(err, apperrors.ErrUnavailable):
		respondError(c, http.StatusServiceUnavailable, "Service temporarily unavailable", err)
	default:
		logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		respondError(c, http.StatusInternalServerError, msgInternalError, err)
	}
}

func notFoundMessage(resource string) string {
	if resource == "" {
		return "Not found"
	}
	return strings.ToUpper(resource[:1]) + resource[1:] + " not found"
}

// NoRoute answers unknown endpoints
func NoRoute(c *gin.Context) {
	respondError(c, http.StatusNotFound, "Endpoint not found", nil)
}
