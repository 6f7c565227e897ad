package workspace

import (
	"context"
	"fmt"

	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/google/uuid"
)

// ListMilestones lists a project's milestones, newest first
func (s *Service) ListMilestones(ctx context.Context, ownerID, projectID uuid.UUID) ([]MilestoneResponse, error) {
	p, err := ownedProject(ctx, s.repos.Projects, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	milestones, err := s.repos.Milestones.FindByProject(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	return mapSlice(milestones, toMilestoneResponse), nil
}

// CreateMilestone adds a milestone to a project
func (s *Service) CreateMilestone(ctx context.Context, ownerID, projectID uuid.UUID, req CreateMilestoneRequest) (*MilestoneResponse, error) {
	p, err := ownedProject(ctx, s.repos.Projects, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	m, err := project.NewMilestone(p, req.Title, req.StartDate, req.DueDate)
	if err != nil {
		return nil, err
	}

	u := project.MilestoneUpdate{Notes: &req.Notes}
	if req.Status != "" {
		st := project.MilestoneStatus(req.Status)
		u.Status = &st
	}
	if req.Checklist != nil {
		u.Checklist = &req.Checklist
	}
	if err := m.Apply(u, s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.repos.Milestones.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("save milestone: %w", err)
	}
	resp := toMilestoneResponse(m)
	return &resp, nil
}

// UpdateMilestone applies a partial update. Completion is tracked by status
// alone; completedAt follows it.
func (s *Service) UpdateMilestone(ctx context.Context, ownerID, milestoneID uuid.UUID, req UpdateMilestoneRequest) (*MilestoneResponse, error) {
	m, err := s.repos.Milestones.FindByIDForOwner(ctx, ownerID, milestoneID)
	if err != nil {
		return nil, notFound(err, "Milestone")
	}
	if err := m.Apply(req.toDomain(), s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.repos.Milestones.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("save milestone: %w", err)
	}
	resp := toMilestoneResponse(m)
	return &resp, nil
}

// DeleteMilestone removes a milestone
func (s *Service) DeleteMilestone(ctx context.Context, ownerID, milestoneID uuid.UUID) error {
	m, err := s.repos.Milestones.FindByIDForOwner(ctx, ownerID, milestoneID)
	if err != nil {
		return notFound(err, "Milestone")
	}
	return s.repos.Milestones.Delete(ctx, m.ID)
}
