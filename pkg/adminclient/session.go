// Package adminclient is the operator side of the portfolio admin API. A Session
// owns the bearer token, persists it through a TokenStore and drops it as soon
// as the server stops accepting it.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/devportfolio/portfolio-api/internal/models"
	"github.com/devportfolio/portfolio-api/pkg/httpclient"
)

// DefaultBaseURL is used when no base URL is configured
const DefaultBaseURL = "http://localhost:4000/api"

// Response is a decoded success envelope
type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  []models.FieldError `json:"errors"`
	Meta    map[string]any      `json:"meta"`
}

// Total returns meta.total of a paginated listing, or -1 when absent
func (r *Response) Total() int {
	if r == nil {
		return -1
	}
	if v, ok := r.Meta["total"].(float64); ok {
		return int(v)
	}
	return -1
}

// Session is safe for concurrent use
type Session struct {
	baseURL string
	client  httpclient.Client
	store   TokenStore

	mu        sync.RWMutex
	token     string
	loggingIn atomic.Bool
}

// NewSession restores any token persisted in store. A nil client gets the
// default 30s transport and a nil store keeps the token in memory only.
func NewSession(baseURL string, client httpclient.Client, store TokenStore) (*Session, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = httpclient.NewStandardClient()
	}
	if store == nil {
		store = NewMemoryTokenStore()
	}

	token, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	return &Session{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		store:   store,
		token:   token,
	}, nil
}

func (s *Session) BaseURL() string {
	return s.baseURL
}

// Token returns the current bearer token, or "" when logged out
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// Login exchanges credentials for a token. Only one login may be in flight;
// a concurrent call fails with ErrLoginInProgress without contacting the server.
func (s *Session) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	if !s.loggingIn.CompareAndSwap(false, true) {
		return nil, ErrLoginInProgress
	}
	defer s.loggingIn.Store(false)

	body, contentType, err := encodeBody(models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := s.send(ctx, http.MethodPost, "/admin/login", body, contentType, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env Response
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	var result models.LoginResponse
	if decodeErr == nil && env.Success && isSuccess(resp.StatusCode) {
		decodeErr = json.Unmarshal(env.Data, &result)
	}
	if decodeErr != nil || !env.Success || !isSuccess(resp.StatusCode) || result.Token == "" {
		message := env.Message
		if message == "" {
			message = "Login failed"
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message, Fields: env.Errors}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(result.Token); err != nil {
		s.token = ""
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	s.token = result.Token

	return &result, nil
}

// Logout forgets the token locally. The in-memory token is always cleared;
// the returned error only reports a failure to clear the store.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear stored session: %w", err)
	}
	return nil
}

// expire ends the session the server rejected. A token stored by a login
// that finished while the request was in flight is left alone.
func (s *Session) expire(rejected string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != rejected {
		return
	}
	s.token = ""
	_ = s.store.Clear() //nolint:errcheck // the session is over either way
}

// RevokeAndLogout asks the server to revoke the token, then logs out locally
// whatever the server says.
func (s *Session) RevokeAndLogout(ctx context.Context) error {
	var remoteErr error
	if s.IsAuthenticated() {
		_, remoteErr = s.Do(ctx, http.MethodPost, "/admin/logout", nil, nil)
		if errors.Is(remoteErr, ErrSessionExpired) {
			remoteErr = nil
		}
	}
	if err := s.Logout(); err != nil {
		return err
	}
	return remoteErr
}

// Do performs an authenticated request. body is JSON encoded unless it is an
// *Upload; the envelope's data is decoded into out when out is non-nil.
// A 401 ends the session that sent it and yields ErrSessionExpired.
func (s *Session) Do(ctx context.Context, method, endpoint string, body, out any) (*Response, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	reader, contentType, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	resp, err := s.send(ctx, method, endpoint, reader, contentType, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		s.expire(token)
		return nil, ErrSessionExpired
	}

	return decodeResponse(resp, out)
}

// public performs a request without credentials
func (s *Session) public(ctx context.Context, method, endpoint string, body, out any) (*Response, error) {
	reader, contentType, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	resp, err := s.send(ctx, method, endpoint, reader, contentType, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func (s *Session) send(ctx context.Context, method, endpoint string, body io.Reader, contentType, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, endpoint, err)
	}
	return resp, nil
}

func decodeResponse(resp *http.Response, out any) (*Response, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		var body apiErrorBody
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, newAPIError(resp.StatusCode, http.StatusText(resp.StatusCode), nil)
		}
		return nil, newAPIError(resp.StatusCode, http.StatusText(resp.StatusCode), &body)
	}

	var env Response
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, newAPIError(resp.StatusCode, http.StatusText(resp.StatusCode), nil)
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return &env, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// Upload is one file sent as multipart form data, with optional plain fields
type Upload struct {
	Field       string
	FileName    string
	ContentType string
	Content     io.Reader
	Fields      map[string]string
}

func (u *Upload) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(u.Fields))
	for k := range u.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, u.Fields[k]); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, u.Field, u.FileName))
	contentType := u.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, u.Content); err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", u.FileName, err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *Upload:
		return b.encode()
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode request body: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil
	}
}
