package workspace

import (
	"context"
	"fmt"

	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/google/uuid"
)

// ListTechLinks lists a project's tech links, newest first
func (s *Service) ListTechLinks(ctx context.Context, ownerID, projectID uuid.UUID) ([]TechLinkResponse, error) {
	p, err := ownedProject(ctx, s.repos.Projects, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	links, err := s.repos.TechLinks.FindByProject(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list tech links: %w", err)
	}
	return mapSlice(links, toTechLinkResponse), nil
}

// CreateTechLink adds a tech link to a project
func (s *Service) CreateTechLink(ctx context.Context, ownerID, projectID uuid.UUID, req CreateTechLinkRequest) (*TechLinkResponse, error) {
	p, err := ownedProject(ctx, s.repos.Projects, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	link, err := project.NewTechLink(p, req.Platform, req.URL, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.repos.TechLinks.Save(ctx, link); err != nil {
		return nil, fmt.Errorf("save tech link: %w", err)
	}
	resp := toTechLinkResponse(link)
	return &resp, nil
}

// UpdateTechLink applies a partial update
func (s *Service) UpdateTechLink(ctx context.Context, ownerID, linkID uuid.UUID, req UpdateTechLinkRequest) (*TechLinkResponse, error) {
	link, err := s.repos.TechLinks.FindByIDForOwner(ctx, ownerID, linkID)
	if err != nil {
		return nil, notFound(err, "Tech link")
	}
	if err := link.Apply(req.Platform, req.URL, req.Description); err != nil {
		return nil, err
	}
	if err := s.repos.TechLinks.Save(ctx, link); err != nil {
		return nil, fmt.Errorf("save tech link: %w", err)
	}
	resp := toTechLinkResponse(link)
	return &resp, nil
}

// DeleteTechLink removes a tech link
func (s *Service) DeleteTechLink(ctx context.Context, ownerID, linkID uuid.UUID) error {
	link, err := s.repos.TechLinks.FindByIDForOwner(ctx, ownerID, linkID)
	if err != nil {
		return notFound(err, "Tech link")
	}
	return s.repos.TechLinks.Delete(ctx, link.ID)
}
