package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/freelancehub/backend/internal/infrastructure/cache"
	"github.com/freelancehub/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockIdempotencyStore struct {
	mock.Mock
}

func (m *mockIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockIdempotencyStore) Release(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockIdempotencyStore) Close() error { return nil }

func idempotentRouter(cfg IdempotencyConfig, status *int, calls *int) *gin.Engine {
	router := gin.New()
	router.Use(Idempotency(cfg))
	handler := func(c *gin.Context) {
		*calls++
		c.Status(*status)
	}
	router.POST("/cards", handler)
	router.PUT("/cards", handler)
	return router
}

func sendWithKey(router http.Handler, method, user, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/cards", strings.NewReader(`{}`))
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	store := cache.NewInMemoryIdempotencyStore()
	t.Cleanup(func() { _ = store.Close() })

	status := http.StatusCreated
	calls := 0
	router := idempotentRouter(IdempotencyConfig{Store: store, TTL: time.Minute}, &status, &calls)

	t.Run("first request admitted", func(t *testing.T) {
		assert.Equal(t, http.StatusCreated, sendWithKey(router, http.MethodPost, "u1", "k1").Code)
		assert.Equal(t, 1, calls)
	})

	t.Run("replay rejected", func(t *testing.T) {
		w := sendWithKey(router, http.MethodPost, "u1", "k1")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeDuplicateRequest)
		assert.Equal(t, 1, calls)
	})

	t.Run("same key other user admitted", func(t *testing.T) {
		assert.Equal(t, http.StatusCreated, sendWithKey(router, http.MethodPost, "u2", "k1").Code)
	})

	t.Run("no key never deduplicated", func(t *testing.T) {
		before := calls
		sendWithKey(router, http.MethodPost, "u1", "")
		sendWithKey(router, http.MethodPost, "u1", "")
		assert.Equal(t, before+2, calls)
	})

	t.Run("non POST ignored", func(t *testing.T) {
		assert.Equal(t, http.StatusCreated, sendWithKey(router, http.MethodPut, "u1", "k1").Code)
		assert.Equal(t, http.StatusCreated, sendWithKey(router, http.MethodPut, "u1", "k1").Code)
	})

	t.Run("server error releases key", func(t *testing.T) {
		status = http.StatusInternalServerError
		assert.Equal(t, http.StatusInternalServerError, sendWithKey(router, http.MethodPost, "u1", "k2").Code)
		status = http.StatusCreated
		assert.Equal(t, http.StatusCreated, sendWithKey(router, http.MethodPost, "u1", "k2").Code)
	})

	t.Run("oversized key rejected", func(t *testing.T) {
		w := sendWithKey(router, http.MethodPost, "u1", strings.Repeat("k", 256))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIdempotency_StoreFailureAdmits(t *testing.T) {
	store := new(mockIdempotencyStore)
	store.On("MarkProcessed", mock.Anything, "idem:u1:k1", time.Hour).
		Return(false, errors.New("connection refused"))

	status := http.StatusCreated
	calls := 0
	router := idempotentRouter(IdempotencyConfig{Store: store, TTL: time.Hour}, &status, &calls)

	w := sendWithKey(router, http.MethodPost, "u1", "k1")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}
