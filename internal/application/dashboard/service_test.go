package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/freelancehub/backend/internal/domain/kanban"
	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProjectRepository struct{ mock.Mock }

func (m *MockProjectRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*project.Project, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]project.Project, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindRecentlyUpdated(ctx context.Context, ownerID uuid.UUID, limit int) ([]project.Project, error) {
	args := m.Called(ctx, ownerID, limit)
	return args.Get(0).([]project.Project), args.Error(1)
}

func (m *MockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockMilestoneRepository struct{ mock.Mock }

func (m *MockMilestoneRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*project.Milestone, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]project.Milestone, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]project.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]project.Milestone, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]project.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) Save(ctx context.Context, ms *project.Milestone) error {
	return m.Called(ctx, ms).Error(0)
}

func (m *MockMilestoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMilestoneRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return m.Called(ctx, projectID).Error(0)
}

type MockFinanceRepository struct{ mock.Mock }

func (m *MockFinanceRepository) GetOrCreate(ctx context.Context, p *project.Project) (*project.Finance, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Finance), args.Error(1)
}

func (m *MockFinanceRepository) FindByProjects(ctx context.Context, ids []uuid.UUID) ([]project.Finance, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]project.Finance), args.Error(1)
}

func (m *MockFinanceRepository) Save(ctx context.Context, f *project.Finance) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFinanceRepository) DeleteByProject(ctx context.Context, projectID uuid.UUID) error {
	return m.Called(ctx, projectID).Error(0)
}

type MockBoardRepository struct{ mock.Mock }

func (m *MockBoardRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*kanban.Board, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kanban.Board), args.Error(1)
}

func (m *MockBoardRepository) FindByIDForOwnerForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*kanban.Board, error) {
	return m.FindByIDForOwner(ctx, ownerID, id)
}

func (m *MockBoardRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]kanban.Board, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]kanban.Board), args.Error(1)
}

func (m *MockBoardRepository) Save(ctx context.Context, b *kanban.Board) error {
	return m.Called(ctx, b).Error(0)
}

type MockColumnRepository struct{ mock.Mock }

func (m *MockColumnRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*kanban.Column, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kanban.Column), args.Error(1)
}

func (m *MockColumnRepository) FindByIDForOwnerForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*kanban.Column, error) {
	return m.FindByIDForOwner(ctx, ownerID, id)
}

func (m *MockColumnRepository) FindByIDsForOwner(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]kanban.Column, error) {
	args := m.Called(ctx, ownerID, ids)
	return args.Get(0).([]kanban.Column), args.Error(1)
}

func (m *MockColumnRepository) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]kanban.Column, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).([]kanban.Column), args.Error(1)
}

func (m *MockColumnRepository) FindByBoards(ctx context.Context, boardIDs []uuid.UUID) ([]kanban.Column, error) {
	args := m.Called(ctx, boardIDs)
	return args.Get(0).([]kanban.Column), args.Error(1)
}

func (m *MockColumnRepository) Save(ctx context.Context, c *kanban.Column) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockColumnRepository) SaveBatch(ctx context.Context, cs []*kanban.Column) error {
	return m.Called(ctx, cs).Error(0)
}

func (m *MockColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockCardRepository struct{ mock.Mock }

func (m *MockCardRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*kanban.Card, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kanban.Card), args.Error(1)
}

func (m *MockCardRepository) FindByColumn(ctx context.Context, columnID uuid.UUID) ([]kanban.Card, error) {
	args := m.Called(ctx, columnID)
	return args.Get(0).([]kanban.Card), args.Error(1)
}

func (m *MockCardRepository) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]kanban.Card, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).([]kanban.Card), args.Error(1)
}

func (m *MockCardRepository) FindByBoards(ctx context.Context, boardIDs []uuid.UUID) ([]kanban.Card, error) {
	args := m.Called(ctx, boardIDs)
	return args.Get(0).([]kanban.Card), args.Error(1)
}

func (m *MockCardRepository) Search(ctx context.Context, boardID uuid.UUID, query string) ([]kanban.Card, error) {
	args := m.Called(ctx, boardID, query)
	return args.Get(0).([]kanban.Card), args.Error(1)
}

func (m *MockCardRepository) Save(ctx context.Context, c *kanban.Card) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCardRepository) SaveBatch(ctx context.Context, cs []*kanban.Card) error {
	return m.Called(ctx, cs).Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCardRepository) DeleteByColumn(ctx context.Context, columnID uuid.UUID) error {
	return m.Called(ctx, columnID).Error(0)
}

type dashboardMocks struct {
	projects   *MockProjectRepository
	milestones *MockMilestoneRepository
	finances   *MockFinanceRepository
	boards     *MockBoardRepository
	columns    *MockColumnRepository
	cards      *MockCardRepository
}

var today = time.Date(2026, 5, 20, 14, 0, 0, 0, time.UTC)

func newTestService() (*Service, *dashboardMocks) {
	m := &dashboardMocks{
		projects:   new(MockProjectRepository),
		milestones: new(MockMilestoneRepository),
		finances:   new(MockFinanceRepository),
		boards:     new(MockBoardRepository),
		columns:    new(MockColumnRepository),
		cards:      new(MockCardRepository),
	}
	svc := NewService(m.projects, m.milestones, m.finances, m.boards, m.columns, m.cards)
	svc.SetClock(shared.FixedClock{At: today})
	return svc, m
}

func mustProject(t *testing.T, owner uuid.UUID, title, client string, status project.Status) project.Project {
	t.Helper()
	p, err := project.NewProject(owner, title, client)
	require.NoError(t, err)
	p.Status = status
	return *p
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newTestService()

	web := mustProject(t, userID, "Web", "Acme", project.StatusActive)
	app := mustProject(t, userID, "App", "Globex", "On-Hold")
	logo := mustProject(t, userID, "Logo", "Acme", project.StatusCompleted)

	due := time.Date(2026, 5, 21, 0, 0, 0, 0, time.UTC)
	ms, err := project.NewMilestone(&web, "Beta", nil, &due)
	require.NoError(t, err)
	past := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	late, err := project.NewMilestone(&app, "Specs", nil, &past)
	require.NoError(t, err)

	fin := project.NewFinance(&web)
	require.NoError(t, fin.AddPayment(project.LedgerEntry{Amount: decimal.NewFromInt(900), Date: today}, today))
	require.NoError(t, fin.AddExpense(project.LedgerEntry{Amount: decimal.NewFromInt(150), Date: today}, today))

	m.projects.On("FindByOwner", ctx, userID).Return([]project.Project{web, app, logo}, nil)
	m.milestones.On("FindByOwner", ctx, userID).Return([]project.Milestone{*ms, *late}, nil)
	m.finances.On("FindByProjects", ctx, []uuid.UUID{web.ID, app.ID, logo.ID}).Return([]project.Finance{*fin}, nil)

	stats, err := svc.Stats(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalProjects)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 2, stats.TotalClients)
	assert.Equal(t, 33, stats.CompletionRate)
	assert.Equal(t, "750", stats.NetProfit.String())
	assert.Equal(t, 1, stats.ProjectStatusBreakdown.OnHold)
	assert.Equal(t, 1, stats.OverdueTasks)

	require.Len(t, stats.UpcomingMilestones, 1)
	assert.Equal(t, "Web", stats.UpcomingMilestones[0].ProjectName)
	assert.Equal(t, 1, stats.UpcomingMilestones[0].DaysRemaining)

	require.NotEmpty(t, stats.TopClients)
	assert.Equal(t, ClientCountDTO{Name: "Acme", ProjectCount: 2}, stats.TopClients[0])

	require.Len(t, stats.MonthlyRevenue, 6)
	assert.Equal(t, "May", stats.MonthlyRevenue[5].Month)
	assert.Equal(t, "900", stats.MonthlyRevenue[5].Revenue.String())
}

func TestService_Stats_NoProjects(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newTestService()

	m.projects.On("FindByOwner", ctx, userID).Return([]project.Project{}, nil)
	m.milestones.On("FindByOwner", ctx, userID).Return([]project.Milestone{}, nil)

	stats, err := svc.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, stats.CompletionRate)
	assert.True(t, stats.NetProfit.IsZero())
	assert.Empty(t, stats.UpcomingMilestones)
	m.finances.AssertNotCalled(t, "FindByProjects", mock.Anything, mock.Anything)
}

func TestService_Stats_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newTestService()

	m.projects.On("FindByOwner", ctx, userID).Return([]project.Project{}, errors.New("connection reset"))

	stats, err := svc.Stats(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, stats)
}

func TestService_TaskStats(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newTestService()

	board, err := kanban.NewBoard(userID, "Work", "")
	require.NoError(t, err)
	columns, err := board.ProvisionDefaultColumns()
	require.NoError(t, err)
	todo, done := columns[0], columns[3]

	open, err := kanban.NewCard(todo, "Draft copy")
	require.NoError(t, err)
	tomorrow := time.Date(2026, 5, 21, 0, 0, 0, 0, time.UTC)
	open.SetDueDate(&tomorrow)
	require.NoError(t, open.SetPriority(kanban.PriorityHigh))

	finished, err := kanban.NewCard(done, "Ship")
	require.NoError(t, err)

	m.boards.On("FindActiveByOwner", ctx, userID).Return([]kanban.Board{*board}, nil)
	m.columns.On("FindByBoards", ctx, []uuid.UUID{board.ID}).Return([]kanban.Column{*todo, *done}, nil)
	m.cards.On("FindByBoards", ctx, []uuid.UUID{board.ID}).Return([]kanban.Card{*open, *finished}, nil)

	stats, err := svc.TaskStats(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalTasks)
	assert.Equal(t, 1, stats.CompletedTasks)
	assert.Equal(t, 1, stats.HighPriorityTasks)
	assert.InDelta(t, 50.0, stats.CompletionRate, 0.001)
	assert.Equal(t, 1, stats.TasksByStatus["To Do"])
	require.Len(t, stats.UpcomingDeadlines, 1)
	assert.Equal(t, "todo", stats.UpcomingDeadlines[0].Status)
	assert.Equal(t, 1, stats.UpcomingDeadlines[0].DaysRemaining)
	assert.Len(t, stats.Tasks, 2)
}

func TestService_TaskStats_NoBoards(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, m := newTestService()

	m.boards.On("FindActiveByOwner", ctx, userID).Return([]kanban.Board{}, nil)

	stats, err := svc.TaskStats(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalTasks)
	assert.NotNil(t, stats.TasksByStatus)
	assert.Empty(t, stats.Tasks)
	assert.Empty(t, stats.UpcomingDeadlines)
	m.cards.AssertNotCalled(t, "FindByBoards", mock.Anything, mock.Anything)
}
