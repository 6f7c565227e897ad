package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freelancehub/backend/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope is the response wrapper every API endpoint answers with
type Envelope[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data"`
	Error   *dto.ErrorInfo `json:"error"`
}

// APIClient drives an http.Handler in-process as a given user
type APIClient struct {
	t       *testing.T
	handler http.Handler
	userID  uuid.UUID
	headers map[string]string
}

// NewAPIClient creates a client that identifies as userID via X-User-ID
func NewAPIClient(t *testing.T, handler http.Handler, userID uuid.UUID) *APIClient {
	return &APIClient{t: t, handler: handler, userID: userID, headers: map[string]string{}}
}

// As returns a copy of the client acting as another user
func (c *APIClient) As(userID uuid.UUID) *APIClient {
	clone := *c
	clone.userID = userID
	return &clone
}

// WithHeader returns a copy of the client that sends an extra header
func (c *APIClient) WithHeader(key, value string) *APIClient {
	clone := *c
	clone.headers = make(map[string]string, len(c.headers)+1)
	for k, v := range c.headers {
		clone.headers[k] = v
	}
	clone.headers[key] = value
	return &clone
}

// Do sends a request; body is JSON-encoded unless it is nil or an io.Reader
func (c *APIClient) Do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case io.Reader:
		reader = b
	default:
		data, err := json.Marshal(b)
		require.NoError(c.t, err, "Failed to marshal request body")
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userID != uuid.Nil {
		req.Header.Set("X-User-ID", c.userID.String())
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a response envelope and checks the status code
func Decode[T any](t *testing.T, w *httptest.ResponseRecorder, wantStatus int) T {
	t.Helper()

	require.Equal(t, wantStatus, w.Code, "body: %s", w.Body.String())
	var env Envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "Failed to parse JSON response")
	require.True(t, env.Success, "Expected success, got %+v", env.Error)
	return env.Data
}

// AssertError checks an error envelope's status and code
func AssertError(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()

	assert.Equal(t, wantStatus, w.Code, "body: %s", w.Body.String())
	var env Envelope[json.RawMessage]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "Failed to parse JSON response")
	assert.False(t, env.Success)
	require.NotNil(t, env.Error, "Expected error object in response")
	assert.Equal(t, wantCode, env.Error.Code)
}
