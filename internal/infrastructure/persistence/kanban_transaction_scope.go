package persistence

import (
	"context"

	appkanban "github.com/freelancehub/backend/internal/application/kanban"
	"github.com/freelancehub/backend/internal/domain/kanban"
	"gorm.io/gorm"
)

// GormKanbanTransactionScope implements kanban.TransactionScope using GORM
// transactions. Board locks taken inside Execute are held until commit.
type GormKanbanTransactionScope struct {
	db *gorm.DB
}

// NewGormKanbanTransactionScope creates a new GormKanbanTransactionScope
func NewGormKanbanTransactionScope(db *gorm.DB) *GormKanbanTransactionScope {
	return &GormKanbanTransactionScope{db: db}
}

// Execute runs fn within a database transaction.
// If fn returns an error, the transaction is rolled back.
func (s *GormKanbanTransactionScope) Execute(ctx context.Context, fn func(repos appkanban.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormKanbanRepositories{tx: tx})
	})
}

// gormKanbanRepositories binds the kanban repositories to one transaction
type gormKanbanRepositories struct {
	tx *gorm.DB
}

func (r *gormKanbanRepositories) Boards() kanban.BoardRepository {
	return NewGormBoardRepository(r.tx)
}

func (r *gormKanbanRepositories) Columns() kanban.ColumnRepository {
	return NewGormColumnRepository(r.tx)
}

func (r *gormKanbanRepositories) Cards() kanban.CardRepository {
	return NewGormCardRepository(r.tx)
}

var (
	_ appkanban.TransactionScope          = (*GormKanbanTransactionScope)(nil)
	_ appkanban.TransactionalRepositories = (*gormKanbanRepositories)(nil)
)
