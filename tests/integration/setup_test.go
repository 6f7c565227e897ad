//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	dashboardapp "github.com/freelancehub/backend/internal/application/dashboard"
	kanbanapp "github.com/freelancehub/backend/internal/application/kanban"
	profileapp "github.com/freelancehub/backend/internal/application/profile"
	workspaceapp "github.com/freelancehub/backend/internal/application/workspace"
	"github.com/freelancehub/backend/internal/infrastructure/event"
	"github.com/freelancehub/backend/internal/infrastructure/persistence"
	"github.com/freelancehub/backend/internal/infrastructure/storage"
	"github.com/freelancehub/backend/internal/interfaces/http/handler"
	"github.com/freelancehub/backend/internal/interfaces/http/middleware"
	"github.com/freelancehub/backend/internal/interfaces/http/router"
	"github.com/freelancehub/backend/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}

// apiStack is the HTTP API wired to PostgreSQL the way the server wires it
type apiStack struct {
	DB     *TestDB
	Engine *gin.Engine
	Events *testutil.EventRecorder
	Kanban *kanbanapp.Service
}

func newAPIStack(t *testing.T) *apiStack {
	t.Helper()

	tdb := NewSharedTestDB(t)
	tdb.CleanTables()
	db := tdb.DB
	log := zap.NewNop()

	boards := persistence.NewGormBoardRepository(db)
	columns := persistence.NewGormColumnRepository(db)
	cards := persistence.NewGormCardRepository(db)
	repos := persistence.NewWorkspaceRepositories(db)

	events := testutil.NewEventRecorder()
	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(events)
	require.NoError(t, bus.Start(context.Background()))
	t.Cleanup(func() { _ = bus.Stop(context.Background()) })

	kanbanService := kanbanapp.NewService(boards, columns, cards, persistence.NewGormKanbanTransactionScope(db))
	kanbanService.SetEventPublisher(bus)

	blobs, err := storage.NewLocalObjectStorage(t.TempDir())
	require.NoError(t, err)
	workspaceService := workspaceapp.NewService(repos, persistence.NewGormWorkspaceTransactionScope(db))
	workspaceService.SetObjectStorage(blobs)

	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(middleware.RequestID())

	r := router.NewRouter(engine)
	for _, g := range router.APIGroups(router.Handlers{
		Kanban:    handler.NewKanbanHandler(kanbanService),
		Project:   handler.NewProjectHandler(workspaceService, 0),
		Dashboard: handler.NewDashboardHandler(dashboardapp.NewService(repos.Projects, repos.Milestones, repos.Finances, boards, columns, cards)),
		Profile:   handler.NewProfileHandler(profileapp.NewService(persistence.NewGormProfileRepository(db), repos.Projects)),
		System:    handler.NewSystemHandler("integration", "test", &persistence.Database{DB: db}),
	}) {
		r.Register(g)
	}
	r.Setup()

	return &apiStack{DB: tdb, Engine: engine, Events: events, Kanban: kanbanService}
}
