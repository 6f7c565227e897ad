package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freelancehub/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "v1", r.apiVersion)
	assert.Equal(t, "/api/v1", r.BasePath())
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))

	assert.Equal(t, "/api/v2", r.BasePath())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	var hits int
	r := NewRouter(engine, WithMiddleware(func(c *gin.Context) {
		hits++
		c.Next()
	}))

	r.Register(NewDomainGroup("test", "/test").GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	}))
	r.Setup()
	engine.GET("/outside", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/test/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/outside", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, hits)
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("kanban", "/kanban")
		assert.Equal(t, "kanban", g.Name())
		assert.Equal(t, "/kanban", g.Prefix())
	})

	t.Run("subgroup middleware is scoped", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("kanban", "/kanban")
		g.GET("/open", func(c *gin.Context) { c.Status(http.StatusOK) })
		g.Group("cards", "/cards").
			Use(func(c *gin.Context) { c.AbortWithStatus(http.StatusForbidden) }).
			GET("/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/kanban/open", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/kanban/cards/1", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("routes listing", func(t *testing.T) {
		g := NewDomainGroup("kanban", "/kanban")
		g.Group("boards", "/boards").GET("", nil).DELETE("/:id", nil)

		assert.Equal(t, []string{"GET /kanban/boards", "DELETE /kanban/boards/:id"}, g.Routes())
	})
}

func TestAPIGroupsMountsEveryRoute(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)
	for _, g := range APIGroups(Handlers{
		Kanban:    handler.NewKanbanHandler(nil),
		Project:   handler.NewProjectHandler(nil, 0),
		Dashboard: handler.NewDashboardHandler(nil),
		Profile:   handler.NewProfileHandler(nil),
		System:    handler.NewSystemHandler("test", "dev", nil),
	}) {
		r.Register(g)
	}
	require.NotPanics(t, func() { r.Setup() })

	mounted := map[string]bool{}
	for _, route := range engine.Routes() {
		mounted[route.Method+" "+route.Path] = true
	}

	want := []string{
		"GET /api/v1/health",
		"GET /api/v1/kanban/boards",
		"POST /api/v1/kanban/boards",
		"GET /api/v1/kanban/boards/:id/stream",
		"PUT /api/v1/kanban/columns/reorder",
		"DELETE /api/v1/kanban/columns/:id",
		"GET /api/v1/kanban/cards/search",
		"POST /api/v1/kanban/cards/filter",
		"PUT /api/v1/kanban/cards/:id/move",
		"POST /api/v1/kanban/cards/:id/comments",
		"DELETE /api/v1/projects/:id",
		"POST /api/v1/projects/:id/finance/expenses",
		"PUT /api/v1/milestones/:id",
		"DELETE /api/v1/notes/:id",
		"GET /api/v1/documents/:id/download",
		"PUT /api/v1/tech-links/:id",
		"GET /api/v1/dashboard/task-stats",
		"DELETE /api/v1/profile/:id/education/:eduId",
		"GET /api/v1/profile/:id/stats/earnings",
	}
	for _, route := range want {
		assert.True(t, mounted[route], "missing %s", route)
	}
	assert.Len(t, engine.Routes(), 62)
}
