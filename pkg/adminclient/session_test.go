package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/devportfolio/portfolio-api/internal/models"
	apperrors "github.com/devportfolio/portfolio-api/pkg/errors"
	"github.com/devportfolio/portfolio-api/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "signed.jwt.token"

func writeEnvelope(w http.ResponseWriter, status int, env map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username != "owner" || req.Password != "hunter2" {
		writeEnvelope(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
		return
	}
	writeEnvelope(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"data": map[string]any{
			"token":     testToken,
			"admin":     map[string]any{"id": "admin-1", "username": "owner", "role": "admin"},
			"expiresAt": time.Now().Add(time.Hour).Format(time.RFC3339),
		},
	})
}

// newTestSession serves mux and returns a session talking to it
func newTestSession(t *testing.T, mux *http.ServeMux, store TokenStore) *Session {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	session, err := NewSession(server.URL+"/api", httpclient.Wrap(server.Client()), store)
	require.NoError(t, err)
	return session
}

func TestLogin_StoresToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/login", loginHandler)
	mux.HandleFunc("GET /api/admin/profile", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"id": "admin-1", "username": "owner"},
		})
	})
	store := NewMemoryTokenStore()
	session := newTestSession(t, mux, store)

	result, err := session.Login(context.Background(), "owner", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, testToken, result.Token)
	assert.Equal(t, "owner", result.Admin.Username)
	assert.True(t, session.IsAuthenticated())

	stored, _ := store.Load()
	assert.Equal(t, testToken, stored)

	admin, err := session.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin-1", admin.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/login", loginHandler)
	session := newTestSession(t, mux, nil)

	_, err := session.Login(context.Background(), "owner", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
	assert.False(t, session.IsAuthenticated())
}

func TestLogin_UnreadableResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})
	session := newTestSession(t, mux, nil)

	_, err := session.Login(context.Background(), "owner", "hunter2")
	require.Error(t, err)
	assert.Equal(t, "Login failed", err.Error())
}

func TestLogin_SingleFlight(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	var calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(entered)
		}
		<-release
		loginHandler(w, r)
	})
	session := newTestSession(t, mux, nil)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = session.Login(context.Background(), "owner", "hunter2")
	}()

	<-entered
	_, err := session.Login(context.Background(), "owner", "hunter2")
	assert.ErrorIs(t, err, ErrLoginInProgress)

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)
	assert.Equal(t, int32(1), calls.Load())

	// the guard is released once the first login finishes
	_, err = session.Login(context.Background(), "owner", "hunter2")
	assert.NoError(t, err)
}

func TestDo_RequiresToken(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) { calls.Add(1) })
	session := newTestSession(t, mux, nil)

	_, err := session.Statistics(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Zero(t, calls.Load())
}

func TestDo_UnauthorizedEndsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/statistics", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Token expired"})
	})
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save(testToken))
	session := newTestSession(t, mux, store)
	require.True(t, session.IsAuthenticated())

	_, err := session.Statistics(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, "Session expired. Please login again.", err.Error())
	assert.False(t, session.IsAuthenticated())
	stored, _ := store.Load()
	assert.Empty(t, stored)
}

func TestDo_UnauthorizedKeepsNewerLogin(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/login", loginHandler)
	mux.HandleFunc("GET /api/admin/statistics", func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		writeEnvelope(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Token expired"})
	})
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("stale.jwt.token"))
	session := newTestSession(t, mux, store)

	result := make(chan error, 1)
	go func() {
		_, err := session.Statistics(context.Background())
		result <- err
	}()

	<-entered
	_, err := session.Login(context.Background(), "owner", "hunter2")
	require.NoError(t, err)
	close(release)

	assert.ErrorIs(t, <-result, ErrSessionExpired)
	assert.Equal(t, testToken, session.Token())
	stored, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, testToken, stored)
}

func TestDo_ErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{
			name:     "server message",
			status:   http.StatusNotFound,
			body:     `{"success":false,"message":"Project not found"}`,
			expected: "Project not found",
		},
		{
			name:     "error field",
			status:   http.StatusBadRequest,
			body:     `{"success":false,"error":"title is required"}`,
			expected: "title is required",
		},
		{
			name:     "unparsable body",
			status:   http.StatusInternalServerError,
			body:     `<html>oops</html>`,
			expected: "HTTP 500: Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /api/admin/projects/p1", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			store := NewMemoryTokenStore()
			require.NoError(t, store.Save(testToken))
			session := newTestSession(t, mux, store)

			_, err := session.GetProject(context.Background(), "p1")
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
			assert.Equal(t, tt.status, StatusCode(err))
			assert.True(t, session.IsAuthenticated())
		})
	}
}

func TestDo_ValidationDetails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/projects", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "title is required",
			"errors":  []map[string]string{{"field": "title", "message": "title is required"}},
		})
	})
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save(testToken))
	session := newTestSession(t, mux, store)

	_, err := session.CreateProject(context.Background(), &models.CreateProjectRequest{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Len(t, apiErr.Fields, 1)
	assert.Equal(t, "title", apiErr.Fields[0].Field)
	assert.Equal(t, "title is required", apiErr.Error())
}

func TestListProjects_QueryAndTotal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/projects", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Web", r.URL.Query().Get("category"))
		assert.Equal(t, "true", r.URL.Query().Get("featured"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    []map[string]any{{"id": "p2", "title": "Second"}},
			"meta":    map[string]any{"total": 7},
		})
	})
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save(testToken))
	session := newTestSession(t, mux, store)

	featured := true
	projects, total, err := session.ListProjects(context.Background(), ProjectQuery{
		Category: "Web",
		Featured: &featured,
		Page:     2,
		Limit:    1,
	})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "p2", projects[0].ID)
	assert.Equal(t, 7, total)
}

func TestCreateJourney_ConvertsYear(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/journey", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, float64(2021), body["year"])
		writeEnvelope(w, http.StatusCreated, map[string]any{
			"success": true,
			"data":    map[string]any{"id": "j1", "year": 2021, "title": "Joined"},
		})
	})
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save(testToken))
	session := newTestSession(t, mux, store)

	_, err := session.CreateJourney(context.Background(), JourneyInput{Year: "twenty", Title: "Joined", Description: "x"})
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "year", verr.Field)
	assert.Zero(t, calls.Load())

	milestone, err := session.CreateJourney(context.Background(), JourneyInput{Year: " 2021 ", Title: "Joined", Description: "x"})
	require.NoError(t, err)
	assert.Equal(t, 2021, milestone.Year)
	assert.Equal(t, int32(1), calls.Load())
}

func TestUploadResume_Multipart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/resume", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "CV", r.FormValue("title"))
		assert.Equal(t, "false", r.FormValue("isPublic"))
		_, hasVersion := r.MultipartForm.Value["version"]
		assert.False(t, hasVersion)

		file, header, err := r.FormFile("resume")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "cv.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))
		assert.Equal(t, "%PDF-1.4", string(content))

		writeEnvelope(w, http.StatusCreated, map[string]any{
			"success": true,
			"data":    map[string]any{"id": "r1", "title": "CV", "isPublic": false},
		})
	})
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save(testToken))
	session := newTestSession(t, mux, store)

	public := false
	resume, err := session.UploadResume(context.Background(), ResumeUpload{
		FileName: "cv.pdf",
		Content:  strings.NewReader("%PDF-1.4"),
		Title:    "CV",
		IsPublic: &public,
	})
	require.NoError(t, err)
	assert.Equal(t, "r1", resume.ID)
	assert.False(t, resume.IsPublic)
}

func TestDownloadResume_Streams(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/resume/download/r1", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="jane-doe.pdf"`)
		_, _ = io.WriteString(w, "%PDF-1.7 body")
	})
	mux.HandleFunc("GET /api/resume/download/missing", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, map[string]any{"success": false, "message": "Resume not found"})
	})
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save(testToken))
	session := newTestSession(t, mux, store)

	var buf bytes.Buffer
	download, err := session.DownloadResume(context.Background(), "r1", &buf)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 body", buf.String())
	assert.Equal(t, "jane-doe.pdf", download.FileName)
	assert.Equal(t, int64(13), download.Size)

	_, err = session.DownloadResume(context.Background(), "missing", &buf)
	require.Error(t, err)
	assert.Equal(t, "Resume not found", err.Error())
}

func TestSubmitContact(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/contact", func(w http.ResponseWriter, r *http.Request) {
		var req models.ContactRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email == "bad" {
			writeEnvelope(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Please provide a valid email address"})
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"id": "m1", "name": req.Name, "email": req.Email},
		})
	})
	session := newTestSession(t, mux, nil)

	msg, err := session.SubmitContact(context.Background(), models.ContactRequest{Name: "Ann", Email: "ann@example.com", Subject: "Hi", Message: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "m1", msg.ID)

	_, err = session.SubmitContact(context.Background(), models.ContactRequest{Name: "Ann", Email: "bad", Subject: "Hi", Message: "Hello"})
	assert.Equal(t, "Please provide a valid email address", err.Error())
}

func TestRevokeAndLogout(t *testing.T) {
	var revoked atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/logout", func(w http.ResponseWriter, r *http.Request) {
		revoked.Store(r.Header.Get("Authorization") == "Bearer "+testToken)
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "message": "Logged out successfully"})
	})
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save(testToken))
	session := newTestSession(t, mux, store)

	require.NoError(t, session.RevokeAndLogout(context.Background()))
	assert.True(t, revoked.Load())
	assert.False(t, session.IsAuthenticated())

	// logging out twice is harmless
	assert.NoError(t, session.RevokeAndLogout(context.Background()))
	assert.NoError(t, session.Logout())
}

func TestNewSession_Defaults(t *testing.T) {
	session, err := NewSession("", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, session.BaseURL())
	assert.False(t, session.IsAuthenticated())
}
