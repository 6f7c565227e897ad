package kanban

import (
	"context"

	"github.com/freelancehub/backend/internal/domain/kanban"
)

// TransactionScope runs board mutations atomically. Every repository handed
// to fn shares one database transaction; an error from fn rolls it back.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides the kanban repositories bound to the
// current transaction
type TransactionalRepositories interface {
	Boards() kanban.BoardRepository
	Columns() kanban.ColumnRepository
	Cards() kanban.CardRepository
}

// NoOpTransactionScope runs fn against plain repositories. Useful for tests
// with in-memory fakes.
type NoOpTransactionScope struct {
	boards  kanban.BoardRepository
	columns kanban.ColumnRepository
	cards   kanban.CardRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope
func NewNoOpTransactionScope(boards kanban.BoardRepository, columns kanban.ColumnRepository, cards kanban.CardRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{boards: boards, columns: columns, cards: cards}
}

// Execute runs fn without a transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) Boards() kanban.BoardRepository   { return s.boards }
func (s *NoOpTransactionScope) Columns() kanban.ColumnRepository { return s.columns }
func (s *NoOpTransactionScope) Cards() kanban.CardRepository     { return s.cards }
