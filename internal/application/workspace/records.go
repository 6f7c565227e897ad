package workspace

import (
	"context"
	"fmt"

	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/google/uuid"
)

// GetDetails returns project details, creating defaults on first access
func (s *Service) GetDetails(ctx context.Context, ownerID, projectID uuid.UUID) (*DetailsResponse, error) {
	p, err := ownedProject(ctx, s.repos.Projects, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	d, err := s.repos.Details.GetOrCreate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("load details: %w", err)
	}
	resp := toDetailsResponse(d)
	return &resp, nil
}

// UpdateDetails upserts the supplied detail fields
func (s *Service) UpdateDetails(ctx context.Context, ownerID, projectID uuid.UUID, req UpdateDetailsRequest) (*DetailsResponse, error) {
	var d *project.Details
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		p, err := ownedProject(ctx, repos.Projects(), ownerID, projectID)
		if err != nil {
			return err
		}
		if d, err = repos.Details().GetOrCreate(ctx, p); err != nil {
			return fmt.Errorf("load details: %w", err)
		}
		if err := d.Apply(project.DetailsUpdate{
			Requirements: req.Requirements,
			Scope:        req.Scope,
			Deliverables: req.Deliverables,
			ClientInfo:   req.ClientInfo,
		}, s.clock.Now()); err != nil {
			return err
		}
		return repos.Details().Save(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	resp := toDetailsResponse(d)
	return &resp, nil
}

// GetProgress returns the progress record, creating it on first access
func (s *Service) GetProgress(ctx context.Context, ownerID, projectID uuid.UUID) (*ProgressResponse, error) {
	p, err := ownedProject(ctx, s.repos.Projects, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	pr, err := s.repos.Progress.GetOrCreate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	resp := toProgressResponse(pr)
	return &resp, nil
}

// UpdateProgress upserts the supplied progress fields
func (s *Service) UpdateProgress(ctx context.Context, ownerID, projectID uuid.UUID, req UpdateProgressRequest) (*ProgressResponse, error) {
	var pr *project.Progress
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		p, err := ownedProject(ctx, repos.Projects(), ownerID, projectID)
		if err != nil {
			return err
		}
		if pr, err = repos.Progress().GetOrCreate(ctx, p); err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if err := pr.Apply(project.ProgressUpdate{
			OverallProgress: req.OverallProgress,
			Milestones:      req.Milestones,
			History:         req.History,
		}, s.clock.Now()); err != nil {
			return err
		}
		return repos.Progress().Save(ctx, pr)
	})
	if err != nil {
		return nil, err
	}
	resp := toProgressResponse(pr)
	return &resp, nil
}
