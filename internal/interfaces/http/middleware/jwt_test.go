package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/freelancehub/backend/internal/infrastructure/auth"
	"github.com/freelancehub/backend/internal/infrastructure/config"
	"github.com/freelancehub/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-at-least-32-chars"

func newTestJWTService(expiration time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                testSecret,
		AccessTokenExpiration: expiration,
		Issuer:                "test-issuer",
	})
}

func newTestToken(t *testing.T, svc *auth.JWTService) (string, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	token, _, err := svc.GenerateAccessToken(auth.GenerateTokenInput{
		UserID:   userID,
		Username: "dana",
		Email:    "dana@example.com",
	})
	require.NoError(t, err)
	return token, userID
}

func jwtRouter(mw gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.Use(mw)
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString(UserIDKey),
			"username": GetJWTUsername(c),
		})
	}
	router.GET("/api/v1/projects", handler)
	router.GET("/health", handler)
	return router
}

func authRequest(router http.Handler, path, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set(AuthHeaderKey, header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)
	token, userID := newTestToken(t, svc)

	w := authRequest(jwtRouter(JWTAuthMiddleware(svc)), "/api/v1/projects", BearerPrefix+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), `"username":"dana"`)
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)
	expired, _ := newTestToken(t, newTestJWTService(-time.Minute))
	foreign, _ := newTestToken(t, auth.NewJWTService(config.JWTConfig{
		Secret:                "another-secret-key-of-32-characters",
		AccessTokenExpiration: time.Minute,
		Issuer:                "test-issuer",
	}))

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"missing header", "", dto.ErrCodeUnauthorized},
		{"wrong scheme", "Basic dXNlcjpwYXNz", dto.ErrCodeTokenInvalid},
		{"empty token", "Bearer ", dto.ErrCodeTokenInvalid},
		{"garbage token", "Bearer not.a.jwt", dto.ErrCodeTokenInvalid},
		{"expired token", BearerPrefix + expired, dto.ErrCodeTokenExpired},
		{"foreign signature", BearerPrefix + foreign, dto.ErrCodeTokenInvalid},
	}

	router := jwtRouter(JWTAuthMiddleware(svc))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := authRequest(router, "/api/v1/projects", tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
			assert.Contains(t, w.Body.String(), `"request_id"`)
		})
	}
}

func TestJWTAuthMiddleware_SkipPaths(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)
	w := authRequest(jwtRouter(JWTAuthMiddleware(svc)), "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalJWTAuthMiddleware(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)
	router := jwtRouter(OptionalJWTAuthMiddleware(svc))

	t.Run("anonymous passes through", func(t *testing.T) {
		w := authRequest(router, "/api/v1/projects", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":""`)
	})

	t.Run("bad token still rejected", func(t *testing.T) {
		w := authRequest(router, "/api/v1/projects", "Bearer broken")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token sets user", func(t *testing.T) {
		token, userID := newTestToken(t, svc)
		w := authRequest(router, "/api/v1/projects", BearerPrefix+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})
}

func TestJWTAuthMiddleware_CustomOnError(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)
	cfg := DefaultJWTConfig(svc)
	cfg.OnError = func(c *gin.Context, err error) {
		c.AbortWithStatus(http.StatusTeapot)
	}

	w := authRequest(jwtRouter(JWTAuthMiddlewareWithConfig(cfg)), "/api/v1/projects", "")
	assert.Equal(t, http.StatusTeapot, w.Code)
}
