package project

import (
	"context"

	"github.com/google/uuid"
)

// ProjectRepository defines persistence for projects
type ProjectRepository interface {
	// FindByIDForOwner finds a project owned by ownerID; others are not found
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Project, error)

	// FindByOwner lists projects newest first
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Project, error)

	// FindRecentlyUpdated lists the most recently updated projects
	FindRecentlyUpdated(ctx context.Context, ownerID uuid.UUID, limit int) ([]Project, error)

	Save(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MilestoneRepository defines persistence for milestones
type MilestoneRepository interface {
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Milestone, error)

	// FindByProject lists milestones newest first
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]Milestone, error)

	// FindByOwner lists every milestone created by ownerID
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Milestone, error)

	Save(ctx context.Context, milestone *Milestone) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}

// FinanceRepository defines persistence for project ledgers
type FinanceRepository interface {
	// GetOrCreate returns the ledger of p, inserting an empty one if absent
	GetOrCreate(ctx context.Context, p *Project) (*Finance, error)

	FindByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]Finance, error)
	Save(ctx context.Context, finance *Finance) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}

// NoteRepository defines persistence for notes
type NoteRepository interface {
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Note, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]Note, error)
	Save(ctx context.Context, note *Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}

// DetailsRepository defines persistence for project details
type DetailsRepository interface {
	GetOrCreate(ctx context.Context, p *Project) (*Details, error)
	Save(ctx context.Context, details *Details) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}

// ProgressRepository defines persistence for progress records
type ProgressRepository interface {
	GetOrCreate(ctx context.Context, p *Project) (*Progress, error)
	Save(ctx context.Context, progress *Progress) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}

// DocumentRepository defines persistence for document metadata
type DocumentRepository interface {
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Document, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]Document, error)
	Save(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}

// TechLinkRepository defines persistence for tech links
type TechLinkRepository interface {
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*TechLink, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]TechLink, error)
	Save(ctx context.Context, link *TechLink) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) error
}
