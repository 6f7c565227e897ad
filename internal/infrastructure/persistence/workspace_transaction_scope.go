package persistence

import (
	"context"

	appworkspace "github.com/freelancehub/backend/internal/application/workspace"
	"github.com/freelancehub/backend/internal/domain/project"
	"gorm.io/gorm"
)

// GormWorkspaceTransactionScope implements workspace.TransactionScope using
// GORM transactions
type GormWorkspaceTransactionScope struct {
	db *gorm.DB
}

// NewGormWorkspaceTransactionScope creates a new GormWorkspaceTransactionScope
func NewGormWorkspaceTransactionScope(db *gorm.DB) *GormWorkspaceTransactionScope {
	return &GormWorkspaceTransactionScope{db: db}
}

// Execute runs fn within a database transaction
func (s *GormWorkspaceTransactionScope) Execute(ctx context.Context, fn func(repos appworkspace.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormWorkspaceRepositories{tx: tx})
	})
}

type gormWorkspaceRepositories struct {
	tx *gorm.DB
}

func (r *gormWorkspaceRepositories) Projects() project.ProjectRepository {
	return NewGormProjectRepository(r.tx)
}

func (r *gormWorkspaceRepositories) Milestones() project.MilestoneRepository {
	return NewGormMilestoneRepository(r.tx)
}

func (r *gormWorkspaceRepositories) Finances() project.FinanceRepository {
	return NewGormFinanceRepository(r.tx)
}

func (r *gormWorkspaceRepositories) Notes() project.NoteRepository {
	return NewGormNoteRepository(r.tx)
}

func (r *gormWorkspaceRepositories) Details() project.DetailsRepository {
	return NewGormDetailsRepository(r.tx)
}

func (r *gormWorkspaceRepositories) Progress() project.ProgressRepository {
	return NewGormProgressRepository(r.tx)
}

func (r *gormWorkspaceRepositories) Documents() project.DocumentRepository {
	return NewGormDocumentRepository(r.tx)
}

func (r *gormWorkspaceRepositories) TechLinks() project.TechLinkRepository {
	return NewGormTechLinkRepository(r.tx)
}

// NewWorkspaceRepositories builds the plain workspace repositories on db
func NewWorkspaceRepositories(db *gorm.DB) appworkspace.Repositories {
	return appworkspace.Repositories{
		Projects:   NewGormProjectRepository(db),
		Milestones: NewGormMilestoneRepository(db),
		Finances:   NewGormFinanceRepository(db),
		Notes:      NewGormNoteRepository(db),
		Details:    NewGormDetailsRepository(db),
		Progress:   NewGormProgressRepository(db),
		Documents:  NewGormDocumentRepository(db),
		TechLinks:  NewGormTechLinkRepository(db),
	}
}

var (
	_ appworkspace.TransactionScope          = (*GormWorkspaceTransactionScope)(nil)
	_ appworkspace.TransactionalRepositories = (*gormWorkspaceRepositories)(nil)
)
