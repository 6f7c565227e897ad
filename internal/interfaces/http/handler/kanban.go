package handler

import (
	"net/http"
	"slices"

	kanbanapp "github.com/freelancehub/backend/internal/application/kanban"
	"github.com/freelancehub/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// KanbanHandler serves boards, columns and cards
type KanbanHandler struct {
	BaseHandler
	service    KanbanService
	subscriber BoardSubscriber
	upgrader   websocket.Upgrader
}

// NewKanbanHandler creates a new KanbanHandler
func NewKanbanHandler(service KanbanService) *KanbanHandler {
	return &KanbanHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// SetBoardSubscriber enables the websocket stream. With allowedOrigins
// empty the upgrader only accepts same-host origins; "*" accepts any.
func (h *KanbanHandler) SetBoardSubscriber(sub BoardSubscriber, allowedOrigins []string) {
	h.subscriber = sub
	if len(allowedOrigins) == 0 {
		return
	}
	h.upgrader.CheckOrigin = func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
	}
}

// ListBoards godoc
// @ID           listKanbanBoards
// @Summary      List boards
// @Description  Non-archived boards of the acting user, newest first
// @Tags         kanban
// @Produce      json
// @Param        X-User-ID header string false "Acting user (development fallback)"
// @Success      200 {object} APIResponse[[]kanbanapp.BoardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/boards [get]
func (h *KanbanHandler) ListBoards(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	boards, err := h.service.ListBoards(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, boards)
}

// GetBoard godoc
// @ID           getKanbanBoard
// @Summary      Get a board
// @Description  Board with its columns and their cards in display order
// @Tags         kanban
// @Produce      json
// @Param        id path string true "Board ID" format(uuid)
// @Success      200 {object} APIResponse[kanbanapp.BoardDetailResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/boards/{id} [get]
func (h *KanbanHandler) GetBoard(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	boardID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	board, err := h.service.GetBoard(c.Request.Context(), userID, boardID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, board)
}

// CreateBoard godoc
// @ID           createKanbanBoard
// @Summary      Create a board
// @Description  Creates a board with the default To Do, In Progress, Review and Done columns
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Makes the request safe to retry"
// @Param        request body kanbanapp.CreateBoardRequest true "Board"
// @Success      201 {object} APIResponse[kanbanapp.BoardDetailResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/boards [post]
func (h *KanbanHandler) CreateBoard(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	var req kanbanapp.CreateBoardRequest
	if !h.bindJSON(c, &req) {
		return
	}
	board, err := h.service.CreateBoard(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, board)
}

// UpdateBoard godoc
// @ID           updateKanbanBoard
// @Summary      Update a board
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        id path string true "Board ID" format(uuid)
// @Param        request body kanbanapp.UpdateBoardRequest true "Changes"
// @Success      200 {object} APIResponse[kanbanapp.BoardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/boards/{id} [put]
func (h *KanbanHandler) UpdateBoard(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	boardID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req kanbanapp.UpdateBoardRequest
	if !h.bindJSON(c, &req) {
		return
	}
	board, err := h.service.UpdateBoard(c.Request.Context(), userID, boardID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, board)
}

// ArchiveBoard godoc
// @ID           archiveKanbanBoard
// @Summary      Archive a board
// @Description  Archived boards disappear from the list; their data is kept
// @Tags         kanban
// @Param        id path string true "Board ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/boards/{id} [delete]
func (h *KanbanHandler) ArchiveBoard(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	boardID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.ArchiveBoard(c.Request.Context(), userID, boardID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// StreamBoard godoc
// @ID           streamKanbanBoard
// @Summary      Subscribe to board changes
// @Description  Upgrades to a websocket that receives a board.changed message after every committed change
// @Tags         kanban
// @Param        id path string true "Board ID" format(uuid)
// @Param        userId query string false "Acting user (browsers cannot set headers on websockets)"
// @Success      101
// @Failure      404 {object} ErrorResponse
// @Failure      501 {object} ErrorResponse
// @Router       /kanban/boards/{id}/stream [get]
func (h *KanbanHandler) StreamBoard(c *gin.Context) {
	if h.subscriber == nil {
		h.Error(c, http.StatusNotImplemented, dto.ErrCodeNotImplemented, "Board streaming is not enabled")
		return
	}
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	boardID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.service.GetBoard(c.Request.Context(), userID, boardID); err != nil {
		h.HandleError(c, err)
		return
	}

	// Upgrade writes its own error response
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.subscriber.Subscribe(conn, userID, boardID)
}

// CreateColumn godoc
// @ID           createKanbanColumn
// @Summary      Add a column
// @Description  Appends a column after the board's last column
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        request body kanbanapp.CreateColumnRequest true "Column"
// @Success      201 {object} APIResponse[kanbanapp.ColumnResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/columns [post]
func (h *KanbanHandler) CreateColumn(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	var req kanbanapp.CreateColumnRequest
	if !h.bindJSON(c, &req) {
		return
	}
	col, err := h.service.CreateColumn(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, col)
}

// UpdateColumn godoc
// @ID           updateKanbanColumn
// @Summary      Update a column
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        id path string true "Column ID" format(uuid)
// @Param        request body kanbanapp.UpdateColumnRequest true "Changes"
// @Success      200 {object} APIResponse[kanbanapp.ColumnResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/columns/{id} [put]
func (h *KanbanHandler) UpdateColumn(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	columnID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req kanbanapp.UpdateColumnRequest
	if !h.bindJSON(c, &req) {
		return
	}
	col, err := h.service.UpdateColumn(c.Request.Context(), userID, columnID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, col)
}

// DeleteColumn godoc
// @ID           deleteKanbanColumn
// @Summary      Delete a column
// @Description  With moveToColumnId the column's cards are appended to that column, otherwise they are deleted
// @Tags         kanban
// @Accept       json
// @Param        id path string true "Column ID" format(uuid)
// @Param        moveToColumnId query string false "Destination column" format(uuid)
// @Param        request body kanbanapp.DeleteColumnRequest false "Destination column"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/columns/{id} [delete]
func (h *KanbanHandler) DeleteColumn(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	columnID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}

	var req kanbanapp.DeleteColumnRequest
	if c.Request.ContentLength > 0 {
		if !h.bindJSON(c, &req) {
			return
		}
	}
	if req.MoveToColumnID == nil {
		if raw := c.Query("moveToColumnId"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				h.ValidationError(c, []dto.ValidationDetail{{Field: "moveToColumnId", Message: "Invalid UUID format"}})
				return
			}
			req.MoveToColumnID = &id
		}
	}

	if err := h.service.DeleteColumn(c.Request.Context(), userID, columnID, req.MoveToColumnID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ReorderColumns godoc
// @ID           reorderKanbanColumns
// @Summary      Reorder columns
// @Description  Applies the requested positions; the board is renumbered 0..n-1
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        request body kanbanapp.ReorderColumnsRequest true "Column orders"
// @Success      200 {object} APIResponse[[]kanbanapp.ColumnResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/columns/reorder [put]
func (h *KanbanHandler) ReorderColumns(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	var req kanbanapp.ReorderColumnsRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cols, err := h.service.ReorderColumns(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cols)
}

// CreateCard godoc
// @ID           createKanbanCard
// @Summary      Create a card
// @Description  Appends the card at the end of its column
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Makes the request safe to retry"
// @Param        request body kanbanapp.CreateCardRequest true "Card"
// @Success      201 {object} APIResponse[kanbanapp.CardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/cards [post]
func (h *KanbanHandler) CreateCard(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	var req kanbanapp.CreateCardRequest
	if !h.bindJSON(c, &req) {
		return
	}
	card, err := h.service.CreateCard(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, card)
}

// GetCard godoc
// @ID           getKanbanCard
// @Summary      Get a card
// @Tags         kanban
// @Produce      json
// @Param        id path string true "Card ID" format(uuid)
// @Success      200 {object} APIResponse[kanbanapp.CardResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/cards/{id} [get]
func (h *KanbanHandler) GetCard(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	cardID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	card, err := h.service.GetCard(c.Request.Context(), userID, cardID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, card)
}

// UpdateCard godoc
// @ID           updateKanbanCard
// @Summary      Update a card
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        id path string true "Card ID" format(uuid)
// @Param        request body kanbanapp.UpdateCardRequest true "Changes"
// @Success      200 {object} APIResponse[kanbanapp.CardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/cards/{id} [put]
func (h *KanbanHandler) UpdateCard(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	cardID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req kanbanapp.UpdateCardRequest
	if !h.bindJSON(c, &req) {
		return
	}
	card, err := h.service.UpdateCard(c.Request.Context(), userID, cardID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, card)
}

// DeleteCard godoc
// @ID           deleteKanbanCard
// @Summary      Delete a card
// @Description  Remaining cards of the column close the gap
// @Tags         kanban
// @Param        id path string true "Card ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/cards/{id} [delete]
func (h *KanbanHandler) DeleteCard(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	cardID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteCard(c.Request.Context(), userID, cardID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// MoveCard godoc
// @ID           moveKanbanCard
// @Summary      Move a card
// @Description  Moves a card to newOrder of newColumnId; out-of-range positions are clamped
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        id path string true "Card ID" format(uuid)
// @Param        request body kanbanapp.MoveCardRequest true "Destination"
// @Success      200 {object} APIResponse[kanbanapp.CardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/cards/{id}/move [put]
func (h *KanbanHandler) MoveCard(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	cardID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req kanbanapp.MoveCardRequest
	if !h.bindJSON(c, &req) {
		return
	}
	card, err := h.service.MoveCard(c.Request.Context(), userID, cardID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, card)
}

// ReorderCard godoc
// @ID           reorderKanbanCard
// @Summary      Reorder a card within its column
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        id path string true "Card ID" format(uuid)
// @Param        request body kanbanapp.ReorderCardRequest true "Position"
// @Success      200 {object} APIResponse[kanbanapp.CardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/cards/{id}/reorder [put]
func (h *KanbanHandler) ReorderCard(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	cardID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req kanbanapp.ReorderCardRequest
	if !h.bindJSON(c, &req) {
		return
	}
	card, err := h.service.ReorderCard(c.Request.Context(), userID, cardID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, card)
}

// AddComment godoc
// @ID           addKanbanCardComment
// @Summary      Comment on a card
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        id path string true "Card ID" format(uuid)
// @Param        request body kanbanapp.AddCommentRequest true "Comment"
// @Success      201 {object} APIResponse[kanbanapp.CardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/cards/{id}/comments [post]
func (h *KanbanHandler) AddComment(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	cardID, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req kanbanapp.AddCommentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	card, err := h.service.AddComment(c.Request.Context(), userID, cardID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, card)
}

// SearchCards godoc
// @ID           searchKanbanCards
// @Summary      Search cards
// @Description  Case-insensitive match on title, description and tags within one board
// @Tags         kanban
// @Produce      json
// @Param        boardId query string true "Board ID" format(uuid)
// @Param        query query string false "Search text"
// @Success      200 {object} APIResponse[[]kanbanapp.CardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/cards/search [get]
func (h *KanbanHandler) SearchCards(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	boardID, err := uuid.Parse(c.Query("boardId"))
	if err != nil {
		h.ValidationError(c, []dto.ValidationDetail{{Field: "boardId", Message: "Invalid UUID format"}})
		return
	}
	cards, err := h.service.SearchCards(c.Request.Context(), userID, boardID, c.Query("query"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cards)
}

// FilterCards godoc
// @ID           filterKanbanCards
// @Summary      Filter cards
// @Description  All given criteria must match
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Param        request body kanbanapp.FilterCardsRequest true "Criteria"
// @Success      200 {object} APIResponse[[]kanbanapp.CardResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /kanban/cards/filter [post]
func (h *KanbanHandler) FilterCards(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	var req kanbanapp.FilterCardsRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cards, err := h.service.FilterCards(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cards)
}
