package dashboard

import (
	"context"
	"fmt"

	"github.com/freelancehub/backend/internal/domain/dashboard"
	"github.com/freelancehub/backend/internal/domain/kanban"
	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Service computes dashboard snapshots on demand. Nothing is cached; any
// repository failure aborts the whole snapshot.
type Service struct {
	projects   project.ProjectRepository
	milestones project.MilestoneRepository
	finances   project.FinanceRepository
	boards     kanban.BoardRepository
	columns    kanban.ColumnRepository
	cards      kanban.CardRepository
	clock      shared.Clock
}

// NewService creates a dashboard Service
func NewService(
	projects project.ProjectRepository,
	milestones project.MilestoneRepository,
	finances project.FinanceRepository,
	boards kanban.BoardRepository,
	columns kanban.ColumnRepository,
	cards kanban.CardRepository,
) *Service {
	return &Service{
		projects:   projects,
		milestones: milestones,
		finances:   finances,
		boards:     boards,
		columns:    columns,
		cards:      cards,
		clock:      shared.SystemClock{},
	}
}

// SetClock overrides the clock that decides "today"
func (s *Service) SetClock(c shared.Clock) {
	s.clock = c
}

// Stats returns the project dashboard of userID
func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (*StatsResponse, error) {
	projects, err := s.projects.FindByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	milestones, err := s.milestones.FindByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load milestones: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(projects))
	titles := make(map[uuid.UUID]string, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
		titles[p.ID] = p.Title
	}
	var finances []project.Finance
	if len(ids) > 0 {
		if finances, err = s.finances.FindByProjects(ctx, ids); err != nil {
			return nil, fmt.Errorf("load finances: %w", err)
		}
	}

	stats := dashboard.ComputeStats(projects, milestones, titles, finances, s.clock.Now())
	return toStatsResponse(stats), nil
}

// TaskStats returns the kanban dashboard of userID over its non-archived boards
func (s *Service) TaskStats(ctx context.Context, userID uuid.UUID) (*TaskStatsResponse, error) {
	boards, err := s.boards.FindActiveByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load boards: %w", err)
	}
	if len(boards) == 0 {
		return toTaskStatsResponse(dashboard.EmptyTaskStats()), nil
	}

	boardIDs := make([]uuid.UUID, 0, len(boards))
	for _, b := range boards {
		boardIDs = append(boardIDs, b.ID)
	}
	columns, err := s.columns.FindByBoards(ctx, boardIDs)
	if err != nil {
		return nil, fmt.Errorf("load columns: %w", err)
	}
	cards, err := s.cards.FindByBoards(ctx, boardIDs)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}

	byID := make(map[uuid.UUID]kanban.Column, len(columns))
	for _, c := range columns {
		byID[c.ID] = c
	}
	stats := dashboard.ComputeTaskStats(cards, byID, s.clock.Now())
	return toTaskStatsResponse(stats), nil
}
