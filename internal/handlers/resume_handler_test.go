package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/internal/services"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, path, field, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newResumeRouter(svc *MockResumeService) *gin.Engine {
	h := NewResumeHandler(svc)
	router := gin.New()
	router.POST("/admin/resume", h.Upload)
	router.PATCH("/admin/resume/:id/toggle-active", h.ToggleActive)
	router.GET("/resume/download/:id", h.Download)
	return router
}

func TestResumeHandler_Upload(t *testing.T) {
	svc := new(MockResumeService)
	router := newResumeRouter(svc)

	pdf := []byte("%PDF-1.7\n%test document")
	svc.On("Upload", mock.Anything,
		mock.MatchedBy(func(f *models.ResumeUploadForm) bool {
			return f.Title == "Backend CV" && f.Tags == `["go","sql"]` && f.IsPublic != nil && !*f.IsPublic
		}),
		mock.MatchedBy(func(f *services.UploadedFile) bool {
			return f.Name == "cv.pdf" && f.ContentType == "application/pdf" && bytes.Equal(f.Data, pdf)
		}),
	).Return(&models.Resume{ID: "r1", Title: "Backend CV"}, nil).Once()

	req := multipartRequest(t, "/admin/resume", "resume", "cv.pdf", pdf, map[string]string{
		"title":    "Backend CV",
		"tags":     `["go","sql"]`,
		"isPublic": "false",
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decode(t, w).Success)
	svc.AssertExpectations(t)
}

func TestResumeHandler_UploadWithoutFile(t *testing.T) {
	svc := new(MockResumeService)
	router := newResumeRouter(svc)

	req := multipartRequest(t, "/admin/resume", "", "", nil, map[string]string{"title": "CV"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", decode(t, w).Message)
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestResumeHandler_UploadRejectedType(t *testing.T) {
	svc := new(MockResumeService)
	router := newResumeRouter(svc)

	svc.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("resume", "invalid file type: text/plain; charset=utf-8. Only PDF files are allowed")).Once()

	req := multipartRequest(t, "/admin/resume", "resume", "cv.txt", []byte("plain words"), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w).Message, "Only PDF files are allowed")
}

func TestResumeHandler_Download(t *testing.T) {
	svc := new(MockResumeService)
	router := newResumeRouter(svc)

	svc.On("Download", mock.Anything, "r1").Return(&services.ResumeDownload{
		Filename:    "jane-cv.pdf",
		ContentType: "application/pdf",
		Size:        5,
		Body:        io.NopCloser(strings.NewReader("%PDF-")),
	}, nil).Once()

	w := doJSON(router, http.MethodGet, "/resume/download/r1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="jane-cv.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-", w.Body.String())
}

func TestResumeHandler_DownloadPrivate(t *testing.T) {
	svc := new(MockResumeService)
	router := newResumeRouter(svc)

	svc.On("Download", mock.Anything, "r2").Return(nil, apperrors.NotFoundError("resume")).Once()

	w := doJSON(router, http.MethodGet, "/resume/download/r2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Resume not found", decode(t, w).Message)
}

func TestResumeHandler_StorageUnavailable(t *testing.T) {
	svc := new(MockResumeService)
	router := newResumeRouter(svc)

	svc.On("Download", mock.Anything, "r3").Return(nil, apperrors.UnavailableError("object storage")).Once()

	w := doJSON(router, http.MethodGet, "/resume/download/r3", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
