package kanban

import (
	"context"

	"github.com/google/uuid"
)

// BoardRepository defines persistence for boards
type BoardRepository interface {
	// FindByIDForOwner finds a board owned by ownerID. Boards of other
	// users are reported as not found.
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Board, error)

	// FindByIDForOwnerForUpdate is FindByIDForOwner with a row lock held
	// until the surrounding transaction ends
	FindByIDForOwnerForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*Board, error)

	// FindActiveByOwner lists non-archived boards, newest first
	FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]Board, error)

	Save(ctx context.Context, board *Board) error
}

// ColumnRepository defines persistence for columns
type ColumnRepository interface {
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Column, error)
	FindByIDForOwnerForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*Column, error)

	// FindByIDsForOwner returns the owned columns among ids, in no particular order
	FindByIDsForOwner(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]Column, error)

	FindByBoard(ctx context.Context, boardID uuid.UUID) ([]Column, error)
	FindByBoards(ctx context.Context, boardIDs []uuid.UUID) ([]Column, error)

	Save(ctx context.Context, column *Column) error
	SaveBatch(ctx context.Context, columns []*Column) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CardRepository defines persistence for cards
type CardRepository interface {
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Card, error)
	FindByColumn(ctx context.Context, columnID uuid.UUID) ([]Card, error)
	FindByBoard(ctx context.Context, boardID uuid.UUID) ([]Card, error)

	// FindByBoards lists cards of the given boards, newest first
	FindByBoards(ctx context.Context, boardIDs []uuid.UUID) ([]Card, error)

	// Search matches query case-insensitively against title and description
	Search(ctx context.Context, boardID uuid.UUID, query string) ([]Card, error)

	Save(ctx context.Context, card *Card) error
	SaveBatch(ctx context.Context, cards []*Card) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByColumn(ctx context.Context, columnID uuid.UUID) error
}
