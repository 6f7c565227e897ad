package workspace

import (
	"context"

	"github.com/freelancehub/backend/internal/domain/project"
)

// TransactionScope runs multi-record workspace mutations atomically
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the workspace repositories bound to
// the current transaction
type TransactionalRepositories interface {
	Projects() project.ProjectRepository
	Milestones() project.MilestoneRepository
	Finances() project.FinanceRepository
	Notes() project.NoteRepository
	Details() project.DetailsRepository
	Progress() project.ProgressRepository
	Documents() project.DocumentRepository
	TechLinks() project.TechLinkRepository
}

// Repositories bundles the plain (non-transactional) workspace repositories
type Repositories struct {
	Projects   project.ProjectRepository
	Milestones project.MilestoneRepository
	Finances   project.FinanceRepository
	Notes      project.NoteRepository
	Details    project.DetailsRepository
	Progress   project.ProgressRepository
	Documents  project.DocumentRepository
	TechLinks  project.TechLinkRepository
}

// NoOpTransactionScope runs fn directly against the plain repositories
type NoOpTransactionScope struct {
	repos Repositories
}

// NewNoOpTransactionScope creates a NoOpTransactionScope
func NewNoOpTransactionScope(repos Repositories) *NoOpTransactionScope {
	return &NoOpTransactionScope{repos: repos}
}

// Execute runs fn without a transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) Projects() project.ProjectRepository     { return s.repos.Projects }
func (s *NoOpTransactionScope) Milestones() project.MilestoneRepository { return s.repos.Milestones }
func (s *NoOpTransactionScope) Finances() project.FinanceRepository     { return s.repos.Finances }
func (s *NoOpTransactionScope) Notes() project.NoteRepository           { return s.repos.Notes }
func (s *NoOpTransactionScope) Details() project.DetailsRepository      { return s.repos.Details }
func (s *NoOpTransactionScope) Progress() project.ProgressRepository    { return s.repos.Progress }
func (s *NoOpTransactionScope) Documents() project.DocumentRepository   { return s.repos.Documents }
func (s *NoOpTransactionScope) TechLinks() project.TechLinkRepository   { return s.repos.TechLinks }
