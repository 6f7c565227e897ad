package persistence

import (
	"context"

	"github.com/freelancehub/backend/internal/domain/kanban"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBoardRepository implements kanban.BoardRepository using GORM
type GormBoardRepository struct {
	db *gorm.DB
}

// NewGormBoardRepository creates a new GormBoardRepository
func NewGormBoardRepository(db *gorm.DB) *GormBoardRepository {
	return &GormBoardRepository{db: db}
}

// FindByIDForOwner finds a board owned by ownerID
func (r *GormBoardRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*kanban.Board, error) {
	var board kanban.Board
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&board).Error; err != nil {
		return nil, notFound(err)
	}
	return &board, nil
}

// FindByIDForOwnerForUpdate locks the board row for the current transaction
func (r *GormBoardRepository) FindByIDForOwnerForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*kanban.Board, error) {
	var board kanban.Board
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&board).Error; err != nil {
		return nil, notFound(err)
	}
	return &board, nil
}

// FindActiveByOwner lists non-archived boards, newest first
func (r *GormBoardRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]kanban.Board, error) {
	var boards []kanban.Board
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_archived = ?", ownerID, false).
		Order("created_at DESC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// Save creates or updates a board
func (r *GormBoardRepository) Save(ctx context.Context, board *kanban.Board) error {
	return r.db.WithContext(ctx).Save(board).Error
}

// GormColumnRepository implements kanban.ColumnRepository using GORM
type GormColumnRepository struct {
	db *gorm.DB
}

// NewGormColumnRepository creates a new GormColumnRepository
func NewGormColumnRepository(db *gorm.DB) *GormColumnRepository {
	return &GormColumnRepository{db: db}
}

// FindByIDForOwner finds a column owned by ownerID
func (r *GormColumnRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*kanban.Column, error) {
	var column kanban.Column
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&column).Error; err != nil {
		return nil, notFound(err)
	}
	return &column, nil
}

// FindByIDForOwnerForUpdate locks the column row for the current transaction
func (r *GormColumnRepository) FindByIDForOwnerForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*kanban.Column, error) {
	var column kanban.Column
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&column).Error; err != nil {
		return nil, notFound(err)
	}
	return &column, nil
}

// FindByIDsForOwner returns the owned columns among ids
func (r *GormColumnRepository) FindByIDsForOwner(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]kanban.Column, error) {
	if len(ids) == 0 {
		return []kanban.Column{}, nil
	}
	var columns []kanban.Column
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Find(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

// FindByBoard lists the columns of a board
func (r *GormColumnRepository) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]kanban.Column, error) {
	var columns []kanban.Column
	if err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Find(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

// FindByBoards lists the columns of several boards
func (r *GormColumnRepository) FindByBoards(ctx context.Context, boardIDs []uuid.UUID) ([]kanban.Column, error) {
	if len(boardIDs) == 0 {
		return []kanban.Column{}, nil
	}
	var columns []kanban.Column
	if err := r.db.WithContext(ctx).Where("board_id IN ?", boardIDs).Find(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

// Save creates or updates a column
func (r *GormColumnRepository) Save(ctx context.Context, column *kanban.Column) error {
	return r.db.WithContext(ctx).Save(column).Error
}

// SaveBatch saves columns one by one on the same connection
func (r *GormColumnRepository) SaveBatch(ctx context.Context, columns []*kanban.Column) error {
	db := r.db.WithContext(ctx)
	for _, c := range columns {
		if err := db.Save(c).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a column
func (r *GormColumnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&kanban.Column{}, "id = ?", id))
}

// GormCardRepository implements kanban.CardRepository using GORM
type GormCardRepository struct {
	db *gorm.DB
}

// NewGormCardRepository creates a new GormCardRepository
func NewGormCardRepository(db *gorm.DB) *GormCardRepository {
	return &GormCardRepository{db: db}
}

// FindByIDForOwner finds a card owned by ownerID
func (r *GormCardRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*kanban.Card, error) {
	var card kanban.Card
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&card).Error; err != nil {
		return nil, notFound(err)
	}
	return &card, nil
}

// FindByColumn lists the cards whose column is columnID
func (r *GormCardRepository) FindByColumn(ctx context.Context, columnID uuid.UUID) ([]kanban.Card, error) {
	var cards []kanban.Card
	if err := r.db.WithContext(ctx).Where("column_id = ?", columnID).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// FindByBoard lists the cards of a board
func (r *GormCardRepository) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]kanban.Card, error) {
	var cards []kanban.Card
	if err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// FindByBoards lists the cards of several boards, newest first
func (r *GormCardRepository) FindByBoards(ctx context.Context, boardIDs []uuid.UUID) ([]kanban.Card, error) {
	if len(boardIDs) == 0 {
		return []kanban.Card{}, nil
	}
	var cards []kanban.Card
	if err := r.db.WithContext(ctx).
		Where("board_id IN ?", boardIDs).
		Order("created_at DESC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// Search matches query case-insensitively against title and description
func (r *GormCardRepository) Search(ctx context.Context, boardID uuid.UUID, query string) ([]kanban.Card, error) {
	pattern := containsPattern(query)
	var cards []kanban.Card
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern).
		Order("created_at DESC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// Save creates or updates a card
func (r *GormCardRepository) Save(ctx context.Context, card *kanban.Card) error {
	return r.db.WithContext(ctx).Save(card).Error
}

// SaveBatch saves cards one by one on the same connection
func (r *GormCardRepository) SaveBatch(ctx context.Context, cards []*kanban.Card) error {
	db := r.db.WithContext(ctx)
	for _, c := range cards {
		if err := db.Save(c).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a card
func (r *GormCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&kanban.Card{}, "id = ?", id))
}

// DeleteByColumn removes every card of a column
func (r *GormCardRepository) DeleteByColumn(ctx context.Context, columnID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("column_id = ?", columnID).Delete(&kanban.Card{}).Error
}

var (
	_ kanban.BoardRepository  = (*GormBoardRepository)(nil)
	_ kanban.ColumnRepository = (*GormColumnRepository)(nil)
	_ kanban.CardRepository   = (*GormCardRepository)(nil)
)
