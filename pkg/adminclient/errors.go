package adminclient

import (
	"errors"
	"fmt"

	"github.com/devportfolio/portfolio-api/internal/models"
)

var (
	ErrNotAuthenticated = errors.New("no authentication token found, please login first")
	ErrSessionExpired   = errors.New("Session expired. Please login again.") //nolint:staticcheck // shown to the operator verbatim
	ErrLoginInProgress  = errors.New("Login already in progress")            //nolint:staticcheck // shown to the operator verbatim
	ErrCorruptTokenFile = errors.New("token file is not valid JSON")
)

// APIError is a non-2xx answer from the portfolio API
type APIError struct {
	StatusCode int
	Message    string
	Fields     []models.FieldError
}

func (e *APIError) Error() string {
	return e.Message
}

// apiErrorBody mirrors the parts of an error envelope the client reads
type apiErrorBody struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  []models.FieldError `json:"errors"`
}

// newAPIError prefers the server message, then its error field, then the status line
func newAPIError(statusCode int, statusText string, body *apiErrorBody) *APIError {
	e := &APIError{StatusCode: statusCode}
	if body != nil {
		e.Message = body.Message
		if e.Message == "" {
			e.Message = body.Error
		}
		e.Fields = body.Errors
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("HTTP %d: %s", statusCode, statusText)
	}
	return e
}

// StatusCode extracts the HTTP status from an *APIError, or 0
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
