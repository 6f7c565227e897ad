package kanban

import (
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeBoard = "KanbanBoard"
)

// Event type constants
const (
	EventTypeBoardChanged = "kanban.board.changed"
)

// BoardAction names what changed on a board
type BoardAction string

const (
	ActionBoardCreated     BoardAction = "board.created"
	ActionBoardUpdated     BoardAction = "board.updated"
	ActionBoardArchived    BoardAction = "board.archived"
	ActionColumnCreated    BoardAction = "column.created"
	ActionColumnUpdated    BoardAction = "column.updated"
	ActionColumnDeleted    BoardAction = "column.deleted"
	ActionColumnsReordered BoardAction = "columns.reordered"
	ActionCardCreated      BoardAction = "card.created"
	ActionCardUpdated      BoardAction = "card.updated"
	ActionCardMoved        BoardAction = "card.moved"
	ActionCardReordered    BoardAction = "card.reordered"
	ActionCardDeleted      BoardAction = "card.deleted"
	ActionCardCommented    BoardAction = "card.commented"
)

// BoardChangedEvent is published after a board mutation commits
type BoardChangedEvent struct {
	shared.BaseDomainEvent
	BoardID  uuid.UUID   `json:"board_id"`
	Action   BoardAction `json:"action"`
	CardID   *uuid.UUID  `json:"card_id,omitempty"`
	ColumnID *uuid.UUID  `json:"column_id,omitempty"`
}

// NewBoardChangedEvent creates a BoardChangedEvent. uuid.Nil card or
// column ids are omitted.
func NewBoardChangedEvent(boardID, ownerID uuid.UUID, action BoardAction, cardID, columnID uuid.UUID) *BoardChangedEvent {
	e := &BoardChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBoardChanged, AggregateTypeBoard, boardID, ownerID),
		BoardID:         boardID,
		Action:          action,
	}
	if cardID != uuid.Nil {
		e.CardID = &cardID
	}
	if columnID != uuid.Nil {
		e.ColumnID = &columnID
	}
	return e
}
