package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/freelancehub/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// multipartOverhead is allowed on top of the upload limit for boundaries
// and part headers
const multipartOverhead = 64 << 10

// BodyLimitConfig bounds request bodies. Multipart uploads get their own
// ceiling so JSON endpoints can stay small.
type BodyLimitConfig struct {
	MaxBytes       int64
	UploadMaxBytes int64
}

// BodyLimit returns a middleware that limits request body size
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return BodyLimitWithConfig(BodyLimitConfig{MaxBytes: maxBytes})
}

// BodyLimitWithConfig returns a body limit middleware with custom configuration
func BodyLimitWithConfig(cfg BodyLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := cfg.MaxBytes
		if cfg.UploadMaxBytes > 0 && strings.HasPrefix(c.ContentType(), "multipart/") {
			limit = cfg.UploadMaxBytes + multipartOverhead
		}
		if limit <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}

		if c.Request.ContentLength > limit {
			AbortPayloadTooLarge(c)
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// IsPayloadTooLarge reports whether err came from a body that exceeded its limit
func IsPayloadTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// AbortPayloadTooLarge writes the 413 envelope
func AbortPayloadTooLarge(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponseWithRequestID(
		dto.ErrCodePayloadTooLarge,
		"Request body exceeds maximum allowed size",
		c.GetString(RequestIDKey),
	))
}
