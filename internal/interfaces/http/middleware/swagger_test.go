package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freelancehub/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func swaggerRouter(cfg config.SwaggerConfig, jwt gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.GET("/swagger/*any", SwaggerProtection(cfg, jwt), func(c *gin.Context) {
		c.String(http.StatusOK, "docs")
	})
	return router
}

func swaggerRequest(router http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSwaggerProtection(t *testing.T) {
	denyAll := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }

	tests := []struct {
		name   string
		cfg    config.SwaggerConfig
		jwt    gin.HandlerFunc
		remote string
		want   int
	}{
		{"disabled", config.SwaggerConfig{}, nil, "10.0.0.1:1234", http.StatusNotFound},
		{"open", config.SwaggerConfig{Enabled: true}, nil, "10.0.0.1:1234", http.StatusOK},
		{"ip allowed", config.SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.1"}}, nil, "10.0.0.1:1234", http.StatusOK},
		{"ip denied", config.SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.1"}}, nil, "10.0.0.2:1234", http.StatusForbidden},
		{"cidr allowed", config.SwaggerConfig{Enabled: true, AllowedIPs: []string{"192.168.0.0/16"}}, nil, "192.168.4.20:1234", http.StatusOK},
		{"auth rejects", config.SwaggerConfig{Enabled: true, RequireAuth: true}, denyAll, "10.0.0.1:1234", http.StatusUnauthorized},
		{"auth passes", config.SwaggerConfig{Enabled: true, RequireAuth: true}, func(c *gin.Context) {}, "10.0.0.1:1234", http.StatusOK},
		{"ip checked before auth", config.SwaggerConfig{Enabled: true, RequireAuth: true, AllowedIPs: []string{"127.0.0.1"}}, denyAll, "10.0.0.1:1234", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := swaggerRequest(swaggerRouter(tt.cfg, tt.jwt), tt.remote)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestParseAllowList(t *testing.T) {
	prefixes := parseAllowList([]string{"10.1.2.3", "172.16.0.0/12", "garbage", "::1"})
	assert.Len(t, prefixes, 3)
	assert.True(t, ipAllowed("10.1.2.3", prefixes))
	assert.True(t, ipAllowed("172.20.1.1", prefixes))
	assert.True(t, ipAllowed("::1", prefixes))
	assert.False(t, ipAllowed("8.8.8.8", prefixes))
	assert.False(t, ipAllowed("not-an-ip", prefixes))
}
