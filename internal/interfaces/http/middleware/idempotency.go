package middleware

import (
	"net/http"
	"time"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/freelancehub/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader is the request header clients use to make a POST
// safe to retry
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLength = 255

// IdempotencyConfig configures the idempotency middleware
type IdempotencyConfig struct {
	Store  shared.IdempotencyStore
	TTL    time.Duration
	Logger *zap.Logger
}

// Idempotency admits a POST carrying Idempotency-Key once per (user, key)
// within the TTL. Replays get 409 ERR_DUPLICATE_REQUEST. A 5xx response
// releases the key so the client can retry. Store failures let the request
// through.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if c.Request.Method != http.MethodPost || key == "" || cfg.Store == nil {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
				"Request validation failed",
				c.GetString(RequestIDKey),
				[]dto.ValidationDetail{{Field: IdempotencyKeyHeader, Message: "Must be at most 255 characters"}},
			))
			return
		}

		ctx := c.Request.Context()
		storeKey := "idem:" + idempotencyScope(c) + ":" + key

		fresh, err := cfg.Store.MarkProcessed(ctx, storeKey, ttl)
		if err != nil {
			log.Warn("Idempotency store unavailable, admitting request",
				zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if !fresh {
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeDuplicateRequest,
				"A request with this Idempotency-Key was already processed",
				c.GetString(RequestIDKey),
			))
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusInternalServerError {
			if err := cfg.Store.Release(ctx, storeKey); err != nil {
				log.Warn("Failed to release idempotency key", zap.String("key", key), zap.Error(err))
			}
		}
	}
}

// idempotencyScope is the acting user as far as it is known at this point
// of the chain
func idempotencyScope(c *gin.Context) string {
	if uid := c.GetString(UserIDKey); uid != "" {
		return uid
	}
	if uid := c.GetHeader("X-User-ID"); uid != "" {
		return uid
	}
	if uid := c.Query("userId"); uid != "" {
		return uid
	}
	return "anonymous"
}
