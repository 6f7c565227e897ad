package kanban

import (
	"strings"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DefaultColumnColor is used when a column is created without a color
const DefaultColumnColor = "#667eea"

// Column is an ordered bucket of cards. CardIDs is the authoritative
// visual order; a card's order is its index in this list.
type Column struct {
	shared.OwnedAggregateRoot
	BoardID  uuid.UUID   `gorm:"type:uuid;not null;index"`
	Title    string      `gorm:"type:varchar(100);not null"`
	Color    string      `gorm:"type:varchar(20);not null;default:'#667eea'"`
	WIPLimit *int        `gorm:"column:wip_limit"`
	CardIDs  []uuid.UUID `gorm:"column:card_ids;type:jsonb;serializer:json"`

	// Order is derived from the board's ColumnIDs on read
	Order int `gorm:"-"`
}

// TableName returns the table name for GORM
func (Column) TableName() string {
	return "kanban_columns"
}

// NewColumn creates a column on the given board. The caller appends it
// to the board ordering.
func NewColumn(board *Board, title, color string, wipLimit *int) (*Column, error) {
	title = strings.TrimSpace(title)
	if err := validateColumnTitle(title); err != nil {
		return nil, err
	}
	if err := validateWIPLimit(wipLimit); err != nil {
		return nil, err
	}
	if strings.TrimSpace(color) == "" {
		color = DefaultColumnColor
	}

	return &Column{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(board.OwnerID),
		BoardID:            board.ID,
		Title:              title,
		Color:              strings.TrimSpace(color),
		WIPLimit:           wipLimit,
		CardIDs:            make([]uuid.UUID, 0),
		Order:              len(board.ColumnIDs),
	}, nil
}

// ColumnUpdate carries the optional fields of a column update
type ColumnUpdate struct {
	Title         *string
	Color         *string
	WIPLimit      *int
	ClearWIPLimit bool
}

// Update applies a partial update
func (c *Column) Update(u ColumnUpdate) error {
	if u.Title != nil {
		t := strings.TrimSpace(*u.Title)
		if err := validateColumnTitle(t); err != nil {
			return err
		}
		c.Title = t
	}
	if u.Color != nil && strings.TrimSpace(*u.Color) != "" {
		c.Color = strings.TrimSpace(*u.Color)
	}
	if u.ClearWIPLimit {
		c.WIPLimit = nil
	} else if u.WIPLimit != nil {
		if err := validateWIPLimit(u.WIPLimit); err != nil {
			return err
		}
		limit := *u.WIPLimit
		c.WIPLimit = &limit
	}
	c.Touch()
	c.IncrementVersion()
	return nil
}

// AppendCard pushes a card id at the end and returns its order
func (c *Column) AppendCard(cardID uuid.UUID) int {
	c.CardIDs = append(append([]uuid.UUID(nil), c.CardIDs...), cardID)
	c.Touch()
	return len(c.CardIDs) - 1
}

// RemoveCard drops a card id from the ordering
func (c *Column) RemoveCard(cardID uuid.UUID) bool {
	var ok bool
	c.CardIDs, ok = RemoveID(c.CardIDs, cardID)
	if ok {
		c.Touch()
	}
	return ok
}

// InsertCard inserts a card id at index (clamped) and returns the position used
func (c *Column) InsertCard(cardID uuid.UUID, index int) int {
	var pos int
	c.CardIDs, pos = InsertID(c.CardIDs, cardID, index)
	c.Touch()
	return pos
}

// CardOrder returns the position of a card, or -1
func (c *Column) CardOrder(cardID uuid.UUID) int {
	return IndexOf(c.CardIDs, cardID)
}

// Len returns the number of cards in the column
func (c *Column) Len() int {
	return len(c.CardIDs)
}

func validateColumnTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Column title cannot be empty")
	}
	if len(title) > 100 {
		return shared.NewDomainError("INVALID_TITLE", "Column title cannot exceed 100 characters")
	}
	return nil
}

func validateWIPLimit(limit *int) error {
	if limit != nil && *limit < 0 {
		return shared.NewDomainError("INVALID_WIP_LIMIT", "WIP limit cannot be negative")
	}
	return nil
}
