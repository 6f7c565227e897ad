package kanban

import (
	"sort"
	"time"

	"github.com/freelancehub/backend/internal/domain/kanban"
	"github.com/google/uuid"
)

// CreateBoardRequest is the body of POST /kanban/boards
type CreateBoardRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
}

// UpdateBoardRequest is the body of PUT /kanban/boards/:id
type UpdateBoardRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
}

// CreateColumnRequest is the body of POST /kanban/columns
type CreateColumnRequest struct {
	BoardID  uuid.UUID `json:"boardId" binding:"required"`
	Title    string    `json:"title" binding:"required,max=100"`
	Color    string    `json:"color"`
	WIPLimit *int      `json:"wipLimit" binding:"omitempty,min=0"`
}

// UpdateColumnRequest is the body of PUT /kanban/columns/:id
type UpdateColumnRequest struct {
	Title         *string `json:"title" binding:"omitempty,max=100"`
	Color         *string `json:"color"`
	WIPLimit      *int    `json:"wipLimit" binding:"omitempty,min=0"`
	ClearWIPLimit bool    `json:"clearWipLimit"`
}

// DeleteColumnRequest carries the optional destination for the cards of a
// deleted column
type DeleteColumnRequest struct {
	MoveToColumnID *uuid.UUID `json:"moveToColumnId" form:"moveToColumnId"`
}

// ColumnOrderRequest is one entry of a bulk column reorder
type ColumnOrderRequest struct {
	ColumnID uuid.UUID `json:"columnId" binding:"required"`
	Order    int       `json:"order"`
}

// ReorderColumnsRequest is the body of PUT /kanban/columns/reorder
type ReorderColumnsRequest struct {
	ColumnOrders []ColumnOrderRequest `json:"columnOrders" binding:"required,min=1,dive"`
}

// CreateCardRequest is the body of POST /kanban/cards
type CreateCardRequest struct {
	ColumnID    uuid.UUID  `json:"columnId" binding:"required"`
	BoardID     *uuid.UUID `json:"boardId"`
	Title       string     `json:"title" binding:"required,max=300"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
	Assignee    *uuid.UUID `json:"assignee"`
	Tags        []string   `json:"tags"`
}

// UpdateCardRequest is the body of PUT /kanban/cards/:id
type UpdateCardRequest struct {
	Title         *string    `json:"title" binding:"omitempty,max=300"`
	Description   *string    `json:"description"`
	Priority      *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate       *time.Time `json:"dueDate"`
	ClearDueDate  bool       `json:"clearDueDate"`
	Assignee      *uuid.UUID `json:"assignee"`
	ClearAssignee bool       `json:"clearAssignee"`
	Tags          *[]string  `json:"tags"`
}

func (r UpdateCardRequest) toDomain() kanban.CardUpdate {
	u := kanban.CardUpdate{
		Title:         r.Title,
		Description:   r.Description,
		DueDate:       r.DueDate,
		ClearDueDate:  r.ClearDueDate,
		Assignee:      r.Assignee,
		ClearAssignee: r.ClearAssignee,
		Tags:          r.Tags,
	}
	if r.Priority != nil {
		p := kanban.Priority(*r.Priority)
		u.Priority = &p
	}
	return u
}

// MoveCardRequest is the body of PUT /kanban/cards/:id/move
type MoveCardRequest struct {
	NewColumnID uuid.UUID `json:"newColumnId" binding:"required"`
	NewOrder    int       `json:"newOrder"`
}

// ReorderCardRequest is the body of PUT /kanban/cards/:id/reorder
type ReorderCardRequest struct {
	NewOrder int `json:"newOrder"`
}

// AddCommentRequest is the body of POST /kanban/cards/:id/comments
type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// FilterCardsRequest is the body of POST /kanban/cards/filter
type FilterCardsRequest struct {
	BoardID       uuid.UUID  `json:"boardId" binding:"required"`
	Priority      string     `json:"priority"`
	Assignee      *uuid.UUID `json:"assignee"`
	Tags          []string   `json:"tags"`
	DueDateFilter string     `json:"dueDateFilter"`
	Status        string     `json:"status"`
}

func (r FilterCardsRequest) toDomain() kanban.CardFilter {
	return kanban.CardFilter{
		Priority: kanban.Priority(r.Priority),
		Assignee: r.Assignee,
		Tags:     r.Tags,
		DueDate:  kanban.DueDateFilter(r.DueDateFilter),
		Status:   r.Status,
	}
}

// CardResponse is a card with its derived order
type CardResponse struct {
	ID          uuid.UUID           `json:"id"`
	BoardID     uuid.UUID           `json:"boardId"`
	ColumnID    uuid.UUID           `json:"columnId"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    kanban.Priority     `json:"priority"`
	DueDate     *time.Time          `json:"dueDate"`
	Assignee    *uuid.UUID          `json:"assignee"`
	Tags        []string            `json:"tags"`
	Attachments []kanban.Attachment `json:"attachments"`
	Comments    []kanban.Comment    `json:"comments"`
	Order       int                 `json:"order"`
	CreatedBy   uuid.UUID           `json:"createdBy"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// ColumnResponse is a column with its derived order and, on board detail,
// its cards in order
type ColumnResponse struct {
	ID        uuid.UUID      `json:"id"`
	BoardID   uuid.UUID      `json:"boardId"`
	Title     string         `json:"title"`
	Color     string         `json:"color"`
	WIPLimit  *int           `json:"wipLimit"`
	Order     int            `json:"order"`
	CardIDs   []uuid.UUID    `json:"cardIds"`
	Cards     []CardResponse `json:"cards,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// BoardResponse is a board summary
type BoardResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	OwnerID     uuid.UUID   `json:"ownerId"`
	ColumnIDs   []uuid.UUID `json:"columnIds"`
	IsArchived  bool        `json:"isArchived"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// BoardDetailResponse is a board with columns and cards in order
type BoardDetailResponse struct {
	BoardResponse
	Columns []ColumnResponse `json:"columns"`
}

func toBoardResponse(b *kanban.Board) BoardResponse {
	return BoardResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		OwnerID:     b.OwnerID,
		ColumnIDs:   nonNilIDs(b.ColumnIDs),
		IsArchived:  b.IsArchived,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toColumnResponse(c *kanban.Column) ColumnResponse {
	return ColumnResponse{
		ID:        c.ID,
		BoardID:   c.BoardID,
		Title:     c.Title,
		Color:     c.Color,
		WIPLimit:  c.WIPLimit,
		Order:     c.Order,
		CardIDs:   nonNilIDs(c.CardIDs),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCardResponse(c *kanban.Card) CardResponse {
	resp := CardResponse{
		ID:          c.ID,
		BoardID:     c.BoardID,
		ColumnID:    c.ColumnID,
		Title:       c.Title,
		Description: c.Description,
		Priority:    c.Priority,
		DueDate:     c.DueDate,
		Assignee:    c.Assignee,
		Tags:        c.Tags,
		Attachments: c.Attachments,
		Comments:    c.Comments,
		Order:       c.Order,
		CreatedBy:   c.OwnerID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if resp.Attachments == nil {
		resp.Attachments = []kanban.Attachment{}
	}
	if resp.Comments == nil {
		resp.Comments = []kanban.Comment{}
	}
	return resp
}

func toCardResponses(cards []*kanban.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c))
	}
	return out
}

// newBoardDetail lays out columns in board order and cards in column order
func newBoardDetail(board *kanban.Board, columns []kanban.Column, cards []kanban.Card) *BoardDetailResponse {
	cardsByColumn := make(map[uuid.UUID][]*kanban.Card, len(columns))
	for i := range cards {
		c := &cards[i]
		cardsByColumn[c.ColumnID] = append(cardsByColumn[c.ColumnID], c)
	}

	ordered := orderColumns(board, columns)
	detail := &BoardDetailResponse{
		BoardResponse: toBoardResponse(board),
		Columns:       make([]ColumnResponse, 0, len(ordered)),
	}
	for _, col := range ordered {
		colCards := cardsByColumn[col.ID]
		sortCardsInColumn(col, colCards)
		resp := toColumnResponse(col)
		resp.Cards = toCardResponses(colCards)
		detail.Columns = append(detail.Columns, resp)
	}
	return detail
}

// orderColumns returns the columns in board order with Order filled.
// Columns missing from the board ordering go last.
func orderColumns(board *kanban.Board, columns []kanban.Column) []*kanban.Column {
	out := make([]*kanban.Column, 0, len(columns))
	for i := range columns {
		c := &columns[i]
		c.Order = board.ColumnOrder(c.ID)
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return positionKey(out[i].Order) < positionKey(out[j].Order)
	})
	return out
}

// sortCardsInColumn fills derived orders and sorts by them. Cards missing
// from the column ordering go last.
func sortCardsInColumn(col *kanban.Column, cards []*kanban.Card) {
	kanban.FillOrders(col, cards)
	sort.SliceStable(cards, func(i, j int) bool {
		return positionKey(cards[i].Order) < positionKey(cards[j].Order)
	})
}

func positionKey(order int) int {
	if order < 0 {
		return int(^uint(0) >> 1)
	}
	return order
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
