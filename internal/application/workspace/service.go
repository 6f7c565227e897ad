package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/freelancehub/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObjectStorage stores document bytes. GetObject returns shared.ErrNotFound
// for a missing key; DeleteObject of a missing key succeeds.
type ObjectStorage interface {
	PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteObject(ctx context.Context, key string) error
}

// Service implements the project workspace use cases: projects and their
// milestones, ledger, notes, details, progress, documents and tech links
type Service struct {
	repos   Repositories
	txScope TransactionScope
	storage ObjectStorage
	clock   shared.Clock
	logger  *zap.Logger
}

// NewService creates a workspace Service
func NewService(repos Repositories, txScope TransactionScope) *Service {
	return &Service{
		repos:   repos,
		txScope: txScope,
		clock:   shared.SystemClock{},
		logger:  zap.NewNop(),
	}
}

// SetObjectStorage sets the document blob store
func (s *Service) SetObjectStorage(storage ObjectStorage) {
	s.storage = storage
}

// SetClock overrides the clock used for timestamps
func (s *Service) SetClock(c shared.Clock) {
	s.clock = c
}

// SetLogger sets the service logger
func (s *Service) SetLogger(l *zap.Logger) {
	s.logger = l
}

func notFound(err error, resource string) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewNotFoundError(resource)
	}
	return err
}

// ownedProject loads a project the acting user owns
func ownedProject(ctx context.Context, repo project.ProjectRepository, ownerID, projectID uuid.UUID) (*project.Project, error) {
	p, err := repo.FindByIDForOwner(ctx, ownerID, projectID)
	if err != nil {
		return nil, notFound(err, "Project")
	}
	return p, nil
}

// ListProjects lists the owner's projects, newest first
func (s *Service) ListProjects(ctx context.Context, ownerID uuid.UUID) ([]ProjectResponse, error) {
	projects, err := s.repos.Projects.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return mapSlice(projects, toProjectResponse), nil
}

// GetProject returns one owned project
func (s *Service) GetProject(ctx context.Context, ownerID, projectID uuid.UUID) (*ProjectResponse, error) {
	p, err := ownedProject(ctx, s.repos.Projects, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	resp := toProjectResponse(p)
	return &resp, nil
}

// CreateProject creates a project; status defaults to active
func (s *Service) CreateProject(ctx context.Context, ownerID uuid.UUID, req CreateProjectRequest) (*ProjectResponse, error) {
	p, err := project.NewProject(ownerID, req.Title, req.ClientName)
	if err != nil {
		return nil, err
	}
	u := project.ProjectUpdate{
		Description: &req.Description,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		NetProfit:   req.NetProfit,
	}
	if req.Status != "" {
		st := project.Status(req.Status)
		u.Status = &st
	}
	if req.Tags != nil {
		u.Tags = &req.Tags
	}
	if err := p.Apply(u); err != nil {
		return nil, err
	}
	if err := s.repos.Projects.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	resp := toProjectResponse(p)
	return &resp, nil
}

// UpdateProject applies a partial update
func (s *Service) UpdateProject(ctx context.Context, ownerID, projectID uuid.UUID, req UpdateProjectRequest) (*ProjectResponse, error) {
	p, err := ownedProject(ctx, s.repos.Projects, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	if err := p.Apply(req.toDomain()); err != nil {
		return nil, err
	}
	if err := s.repos.Projects.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	resp := toProjectResponse(p)
	return &resp, nil
}

// DeleteProject removes a project with every dependent workspace record in
// one transaction. Document blobs are removed after the commit.
func (s *Service) DeleteProject(ctx context.Context, ownerID, projectID uuid.UUID) error {
	var keys []string
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		p, err := ownedProject(ctx, repos.Projects(), ownerID, projectID)
		if err != nil {
			return err
		}
		docs, err := repos.Documents().FindByProject(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("load documents: %w", err)
		}
		for _, d := range docs {
			keys = append(keys, d.StorageKey)
		}

		cascade := []func(context.Context, uuid.UUID) error{
			repos.Milestones().DeleteByProject,
			repos.Finances().DeleteByProject,
			repos.Notes().DeleteByProject,
			repos.Details().DeleteByProject,
			repos.Progress().DeleteByProject,
			repos.Documents().DeleteByProject,
			repos.TechLinks().DeleteByProject,
		}
		for _, del := range cascade {
			if err := del(ctx, p.ID); err != nil {
				return fmt.Errorf("delete project records: %w", err)
			}
		}
		return repos.Projects().Delete(ctx, p.ID)
	})
	if err != nil {
		return err
	}

	s.removeBlobs(ctx, keys)
	return nil
}

func (s *Service) removeBlobs(ctx context.Context, keys []string) {
	if s.storage == nil {
		return
	}
	for _, key := range keys {
		if err := s.storage.DeleteObject(ctx, key); err != nil {
			logger.For(ctx, s.logger).Warn("failed to delete document blob", zap.String("key", key), zap.Error(err))
		}
	}
}
