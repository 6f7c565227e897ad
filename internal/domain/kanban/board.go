package kanban

import (
	"sort"
	"strings"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Default column layout provisioned for every new board
var DefaultColumnLayout = []struct {
	Title string
	Color string
}{
	{ColumnTitleToDo, "#6b7280"},
	{ColumnTitleInProgress, "#3b82f6"},
	{ColumnTitleReview, "#8b5cf6"},
	{ColumnTitleDone, "#10b981"},
}

// Board is the aggregate root of a kanban board. ColumnIDs holds the
// visual order of its columns.
type Board struct {
	shared.OwnedAggregateRoot
	Title       string      `gorm:"type:varchar(200);not null"`
	Description string      `gorm:"type:text"`
	ColumnIDs   []uuid.UUID `gorm:"column:column_ids;type:jsonb;serializer:json"`
	IsArchived  bool        `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Board) TableName() string {
	return "kanban_boards"
}

// NewBoard creates a new, empty board
func NewBoard(ownerID uuid.UUID, title, description string) (*Board, error) {
	title = strings.TrimSpace(title)
	if err := validateBoardTitle(title); err != nil {
		return nil, err
	}

	return &Board{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Title:              title,
		Description:        strings.TrimSpace(description),
		ColumnIDs:          make([]uuid.UUID, 0, len(DefaultColumnLayout)),
	}, nil
}

// ProvisionDefaultColumns creates the To Do / In Progress / Review / Done
// columns and appends them to the board in that order
func (b *Board) ProvisionDefaultColumns() ([]*Column, error) {
	columns := make([]*Column, 0, len(DefaultColumnLayout))
	for _, layout := range DefaultColumnLayout {
		col, err := NewColumn(b, layout.Title, layout.Color, nil)
		if err != nil {
			return nil, err
		}
		b.AppendColumn(col.ID)
		columns = append(columns, col)
	}
	return columns, nil
}

// Update replaces title and description. Nil leaves the field as is.
func (b *Board) Update(title, description *string) error {
	if title != nil {
		t := strings.TrimSpace(*title)
		if err := validateBoardTitle(t); err != nil {
			return err
		}
		b.Title = t
	}
	if description != nil {
		b.Description = strings.TrimSpace(*description)
	}
	b.Touch()
	b.IncrementVersion()
	return nil
}

// Archive soft-deletes the board. Archiving twice is a no-op.
func (b *Board) Archive() {
	if b.IsArchived {
		return
	}
	b.IsArchived = true
	b.Touch()
	b.IncrementVersion()
}

// AppendColumn adds a column at the end and returns its order
func (b *Board) AppendColumn(columnID uuid.UUID) int {
	b.ColumnIDs = append(append([]uuid.UUID(nil), b.ColumnIDs...), columnID)
	b.Touch()
	return len(b.ColumnIDs) - 1
}

// RemoveColumn drops a column from the ordering
func (b *Board) RemoveColumn(columnID uuid.UUID) bool {
	var ok bool
	b.ColumnIDs, ok = RemoveID(b.ColumnIDs, columnID)
	if ok {
		b.Touch()
	}
	return ok
}

// ColumnOrder returns the position of a column, or -1
func (b *Board) ColumnOrder(columnID uuid.UUID) int {
	return IndexOf(b.ColumnIDs, columnID)
}

// ColumnPosition is a requested position for one column
type ColumnPosition struct {
	ColumnID uuid.UUID
	Order    int
}

// ReorderColumns sorts the listed columns by requested order (stable for
// equal orders). Columns not listed keep their relative order after them.
func (b *Board) ReorderColumns(positions []ColumnPosition) error {
	if len(positions) == 0 {
		return shared.NewValidationError("columnOrders must not be empty")
	}

	seen := make(map[uuid.UUID]struct{}, len(positions))
	for _, p := range positions {
		if b.ColumnOrder(p.ColumnID) < 0 {
			return shared.NewValidationError("column " + p.ColumnID.String() + " does not belong to this board")
		}
		if _, dup := seen[p.ColumnID]; dup {
			return shared.NewValidationError("column " + p.ColumnID.String() + " is listed more than once")
		}
		seen[p.ColumnID] = struct{}{}
	}

	listed := append([]ColumnPosition(nil), positions...)
	sort.SliceStable(listed, func(i, j int) bool {
		return listed[i].Order < listed[j].Order
	})

	ordered := make([]uuid.UUID, 0, len(b.ColumnIDs))
	for _, p := range listed {
		ordered = append(ordered, p.ColumnID)
	}
	for _, id := range b.ColumnIDs {
		if _, ok := seen[id]; !ok {
			ordered = append(ordered, id)
		}
	}

	b.ColumnIDs = ordered
	b.Touch()
	b.IncrementVersion()
	return nil
}

// RecordChange queues a BoardChanged event for publication after commit
func (b *Board) RecordChange(action BoardAction, cardID, columnID uuid.UUID) {
	b.AddDomainEvent(NewBoardChangedEvent(b.ID, b.OwnerID, action, cardID, columnID))
}

func validateBoardTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Board title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Board title cannot exceed 200 characters")
	}
	return nil
}
