package kanban

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/freelancehub/backend/internal/domain/kanban"
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/freelancehub/backend/internal/infrastructure/logger"
	"github.com/freelancehub/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MoveRecorder records card movements
type MoveRecorder interface {
	RecordCardMove(ctx context.Context, crossColumn bool)
}

// Service implements the kanban use cases. Every mutation runs in one
// transaction that first locks the board row, so concurrent edits of the
// same board are serialized.
type Service struct {
	boards    kanban.BoardRepository
	columns   kanban.ColumnRepository
	cards     kanban.CardRepository
	txScope   TransactionScope
	publisher shared.EventPublisher
	moves     MoveRecorder
	clock     shared.Clock
	logger    *zap.Logger
}

// NewService creates a kanban Service
func NewService(
	boards kanban.BoardRepository,
	columns kanban.ColumnRepository,
	cards kanban.CardRepository,
	txScope TransactionScope,
) *Service {
	return &Service{
		boards:  boards,
		columns: columns,
		cards:   cards,
		txScope: txScope,
		clock:   shared.SystemClock{},
		logger:  zap.NewNop(),
	}
}

// SetEventPublisher sets the publisher that receives board change events
func (s *Service) SetEventPublisher(p shared.EventPublisher) {
	s.publisher = p
}

// SetMoveRecorder sets the card move metrics sink
func (s *Service) SetMoveRecorder(m MoveRecorder) {
	s.moves = m
}

// SetClock overrides the clock used for due date filters
func (s *Service) SetClock(c shared.Clock) {
	s.clock = c
}

// SetLogger sets the service logger. Calls made with a request context log
// through the request logger instead, named after l.
func (s *Service) SetLogger(l *zap.Logger) {
	s.logger = l
}

// publish sends the board's pending events once its transaction committed.
// Delivery failures are logged; the mutation already happened.
func (s *Service) publish(ctx context.Context, board *kanban.Board) {
	events := board.GetDomainEvents()
	board.ClearDomainEvents()
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		logger.For(ctx, s.logger).Warn("failed to publish board events",
			zap.String("board_id", board.ID.String()),
			zap.Error(err),
		)
	}
}

// lockBoard locks the board row for the rest of the transaction
func lockBoard(ctx context.Context, repos TransactionalRepositories, ownerID, boardID uuid.UUID) (*kanban.Board, error) {
	board, err := repos.Boards().FindByIDForOwnerForUpdate(ctx, ownerID, boardID)
	if err != nil {
		return nil, wrapNotFound(err, "Board")
	}
	return board, nil
}

// wrapNotFound turns shared.ErrNotFound into a resource specific error
func wrapNotFound(err error, resource string) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewNotFoundError(resource)
	}
	return err
}

// Boards

// ListBoards lists the owner's non-archived boards, newest first
func (s *Service) ListBoards(ctx context.Context, ownerID uuid.UUID) ([]BoardResponse, error) {
	boards, err := s.boards.FindActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	out := make([]BoardResponse, 0, len(boards))
	for i := range boards {
		out = append(out, toBoardResponse(&boards[i]))
	}
	return out, nil
}

// GetBoard returns a board with its columns and cards in order
func (s *Service) GetBoard(ctx context.Context, ownerID, boardID uuid.UUID) (*BoardDetailResponse, error) {
	board, err := s.boards.FindByIDForOwner(ctx, ownerID, boardID)
	if err != nil {
		return nil, wrapNotFound(err, "Board")
	}
	columns, err := s.columns.FindByBoard(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("load columns: %w", err)
	}
	cards, err := s.cards.FindByBoard(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	return newBoardDetail(board, columns, cards), nil
}

// CreateBoard creates a board with the four default columns
func (s *Service) CreateBoard(ctx context.Context, ownerID uuid.UUID, req CreateBoardRequest) (*BoardDetailResponse, error) {
	board, err := kanban.NewBoard(ownerID, req.Title, req.Description)
	if err != nil {
		return nil, err
	}
	columns, err := board.ProvisionDefaultColumns()
	if err != nil {
		return nil, err
	}

	if err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Boards().Save(ctx, board); err != nil {
			return fmt.Errorf("save board: %w", err)
		}
		return repos.Columns().SaveBatch(ctx, columns)
	}); err != nil {
		return nil, err
	}

	board.RecordChange(kanban.ActionBoardCreated, uuid.Nil, uuid.Nil)
	s.publish(ctx, board)

	stored := make([]kanban.Column, 0, len(columns))
	for _, c := range columns {
		stored = append(stored, *c)
	}
	return newBoardDetail(board, stored, nil), nil
}

// UpdateBoard changes title and description
func (s *Service) UpdateBoard(ctx context.Context, ownerID, boardID uuid.UUID, req UpdateBoardRequest) (*BoardResponse, error) {
	var board *kanban.Board
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		if board, err = lockBoard(ctx, repos, ownerID, boardID); err != nil {
			return err
		}
		if err := board.Update(req.Title, req.Description); err != nil {
			return err
		}
		return repos.Boards().Save(ctx, board)
	})
	if err != nil {
		return nil, err
	}
	board.RecordChange(kanban.ActionBoardUpdated, uuid.Nil, uuid.Nil)
	s.publish(ctx, board)
	resp := toBoardResponse(board)
	return &resp, nil
}

// ArchiveBoard soft-deletes a board
func (s *Service) ArchiveBoard(ctx context.Context, ownerID, boardID uuid.UUID) error {
	var board *kanban.Board
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		if board, err = lockBoard(ctx, repos, ownerID, boardID); err != nil {
			return err
		}
		board.Archive()
		return repos.Boards().Save(ctx, board)
	})
	if err != nil {
		return err
	}
	board.RecordChange(kanban.ActionBoardArchived, uuid.Nil, uuid.Nil)
	s.publish(ctx, board)
	return nil
}

// Columns

// CreateColumn appends a column to a board
func (s *Service) CreateColumn(ctx context.Context, ownerID uuid.UUID, req CreateColumnRequest) (*ColumnResponse, error) {
	var (
		board  *kanban.Board
		column *kanban.Column
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		if board, err = lockBoard(ctx, repos, ownerID, req.BoardID); err != nil {
			return err
		}
		if column, err = kanban.NewColumn(board, req.Title, req.Color, req.WIPLimit); err != nil {
			return err
		}
		column.Order = board.AppendColumn(column.ID)
		if err := repos.Columns().Save(ctx, column); err != nil {
			return fmt.Errorf("save column: %w", err)
		}
		return repos.Boards().Save(ctx, board)
	})
	if err != nil {
		return nil, err
	}
	board.RecordChange(kanban.ActionColumnCreated, uuid.Nil, column.ID)
	s.publish(ctx, board)
	resp := toColumnResponse(column)
	return &resp, nil
}

// UpdateColumn changes title, color or WIP limit
func (s *Service) UpdateColumn(ctx context.Context, ownerID, columnID uuid.UUID, req UpdateColumnRequest) (*ColumnResponse, error) {
	var (
		board  *kanban.Board
		column *kanban.Column
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		located, err := repos.Columns().FindByIDForOwner(ctx, ownerID, columnID)
		if err != nil {
			return wrapNotFound(err, "Column")
		}
		if board, err = lockBoard(ctx, repos, ownerID, located.BoardID); err != nil {
			return err
		}
		if column, err = repos.Columns().FindByIDForOwnerForUpdate(ctx, ownerID, columnID); err != nil {
			return wrapNotFound(err, "Column")
		}
		if err := column.Update(kanban.ColumnUpdate{
			Title:         req.Title,
			Color:         req.Color,
			WIPLimit:      req.WIPLimit,
			ClearWIPLimit: req.ClearWIPLimit,
		}); err != nil {
			return err
		}
		column.Order = board.ColumnOrder(column.ID)
		return repos.Columns().Save(ctx, column)
	})
	if err != nil {
		return nil, err
	}
	board.RecordChange(kanban.ActionColumnUpdated, uuid.Nil, column.ID)
	s.publish(ctx, board)
	resp := toColumnResponse(column)
	return &resp, nil
}

// DeleteColumn removes a column. With moveToColumnID its cards are appended
// to that column in their current order; without it they are deleted.
func (s *Service) DeleteColumn(ctx context.Context, ownerID, columnID uuid.UUID, moveToColumnID *uuid.UUID) error {
	var board *kanban.Board
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		located, err := repos.Columns().FindByIDForOwner(ctx, ownerID, columnID)
		if err != nil {
			return wrapNotFound(err, "Column")
		}
		if board, err = lockBoard(ctx, repos, ownerID, located.BoardID); err != nil {
			return err
		}
		column, err := repos.Columns().FindByIDForOwnerForUpdate(ctx, ownerID, columnID)
		if err != nil {
			return wrapNotFound(err, "Column")
		}

		if moveToColumnID != nil {
			if *moveToColumnID == column.ID {
				return shared.NewValidationError("moveToColumnId must differ from the deleted column")
			}
			dst, err := repos.Columns().FindByIDForOwnerForUpdate(ctx, ownerID, *moveToColumnID)
			if err != nil {
				return wrapNotFound(err, "Destination column")
			}
			cards, err := repos.Cards().FindByColumn(ctx, column.ID)
			if err != nil {
				return fmt.Errorf("load cards: %w", err)
			}
			ptrs := make([]*kanban.Card, 0, len(cards))
			for i := range cards {
				ptrs = append(ptrs, &cards[i])
			}
			if err := kanban.RelocateCards(column, dst, ptrs); err != nil {
				return err
			}
			if err := repos.Cards().SaveBatch(ctx, ptrs); err != nil {
				return fmt.Errorf("save relocated cards: %w", err)
			}
			if err := repos.Columns().Save(ctx, dst); err != nil {
				return fmt.Errorf("save destination column: %w", err)
			}
		} else if err := repos.Cards().DeleteByColumn(ctx, column.ID); err != nil {
			return fmt.Errorf("delete cards: %w", err)
		}

		board.RemoveColumn(column.ID)
		if err := repos.Boards().Save(ctx, board); err != nil {
			return fmt.Errorf("save board: %w", err)
		}
		return repos.Columns().Delete(ctx, column.ID)
	})
	if err != nil {
		return err
	}
	board.RecordChange(kanban.ActionColumnDeleted, uuid.Nil, columnID)
	s.publish(ctx, board)
	return nil
}

// ReorderColumns applies a bulk column reorder. Every listed column must
// belong to the same owned board.
func (s *Service) ReorderColumns(ctx context.Context, ownerID uuid.UUID, req ReorderColumnsRequest) ([]ColumnResponse, error) {
	if len(req.ColumnOrders) == 0 {
		return nil, shared.NewValidationError("columnOrders must not be empty")
	}
	positions := make([]kanban.ColumnPosition, 0, len(req.ColumnOrders))
	for _, o := range req.ColumnOrders {
		positions = append(positions, kanban.ColumnPosition{ColumnID: o.ColumnID, Order: o.Order})
	}

	var (
		board   *kanban.Board
		columns []kanban.Column
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		first, err := repos.Columns().FindByIDForOwner(ctx, ownerID, positions[0].ColumnID)
		if err != nil {
			return wrapNotFound(err, "Column")
		}
		if board, err = lockBoard(ctx, repos, ownerID, first.BoardID); err != nil {
			return err
		}
		if err := board.ReorderColumns(positions); err != nil {
			return err
		}
		if err := repos.Boards().Save(ctx, board); err != nil {
			return fmt.Errorf("save board: %w", err)
		}
		columns, err = repos.Columns().FindByBoard(ctx, board.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	board.RecordChange(kanban.ActionColumnsReordered, uuid.Nil, uuid.Nil)
	s.publish(ctx, board)

	out := make([]ColumnResponse, 0, len(columns))
	for _, c := range orderColumns(board, columns) {
		out = append(out, toColumnResponse(c))
	}
	return out, nil
}

// Cards

// CreateCard appends a card to a column
func (s *Service) CreateCard(ctx context.Context, ownerID uuid.UUID, req CreateCardRequest) (*CardResponse, error) {
	var (
		board *kanban.Board
		card  *kanban.Card
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		located, err := repos.Columns().FindByIDForOwner(ctx, ownerID, req.ColumnID)
		if err != nil {
			return wrapNotFound(err, "Column")
		}
		if req.BoardID != nil && *req.BoardID != located.BoardID {
			return shared.NewValidationError("boardId does not match the column's board")
		}
		if board, err = lockBoard(ctx, repos, ownerID, located.BoardID); err != nil {
			return err
		}
		column, err := repos.Columns().FindByIDForOwnerForUpdate(ctx, ownerID, req.ColumnID)
		if err != nil {
			return wrapNotFound(err, "Column")
		}

		if card, err = kanban.NewCard(column, req.Title); err != nil {
			return err
		}
		update := kanban.CardUpdate{DueDate: req.DueDate, Assignee: req.Assignee}
		if req.Description != "" {
			update.Description = &req.Description
		}
		if req.Priority != "" {
			p := kanban.Priority(req.Priority)
			update.Priority = &p
		}
		if req.Tags != nil {
			update.Tags = &req.Tags
		}
		if err := card.Update(update); err != nil {
			return err
		}

		card.Order = column.AppendCard(card.ID)
		if err := repos.Cards().Save(ctx, card); err != nil {
			return fmt.Errorf("save card: %w", err)
		}
		return repos.Columns().Save(ctx, column)
	})
	if err != nil {
		return nil, err
	}
	board.RecordChange(kanban.ActionCardCreated, card.ID, card.ColumnID)
	s.publish(ctx, board)
	resp := toCardResponse(card)
	return &resp, nil
}

// GetCard returns a card with its derived order
func (s *Service) GetCard(ctx context.Context, ownerID, cardID uuid.UUID) (*CardResponse, error) {
	card, err := s.cards.FindByIDForOwner(ctx, ownerID, cardID)
	if err != nil {
		return nil, wrapNotFound(err, "Card")
	}
	card.Order = -1
	if column, err := s.columns.FindByIDForOwner(ctx, ownerID, card.ColumnID); err == nil {
		card.Order = column.CardOrder(card.ID)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("load column: %w", err)
	}
	resp := toCardResponse(card)
	return &resp, nil
}

// mutateCard runs fn on a card with its board locked and saves the card
func (s *Service) mutateCard(
	ctx context.Context,
	ownerID, cardID uuid.UUID,
	action kanban.BoardAction,
	fn func(card *kanban.Card) error,
) (*kanban.Card, error) {
	var (
		board *kanban.Board
		card  *kanban.Card
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		located, err := repos.Cards().FindByIDForOwner(ctx, ownerID, cardID)
		if err != nil {
			return wrapNotFound(err, "Card")
		}
		if board, err = lockBoard(ctx, repos, ownerID, located.BoardID); err != nil {
			return err
		}
		if card, err = repos.Cards().FindByIDForOwner(ctx, ownerID, cardID); err != nil {
			return wrapNotFound(err, "Card")
		}
		if err := fn(card); err != nil {
			return err
		}
		if err := repos.Cards().Save(ctx, card); err != nil {
			return fmt.Errorf("save card: %w", err)
		}
		column, err := repos.Columns().FindByIDForOwner(ctx, ownerID, card.ColumnID)
		if err != nil {
			return wrapNotFound(err, "Column")
		}
		card.Order = column.CardOrder(card.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	board.RecordChange(action, card.ID, card.ColumnID)
	s.publish(ctx, board)
	return card, nil
}

// UpdateCard applies a partial card update
func (s *Service) UpdateCard(ctx context.Context, ownerID, cardID uuid.UUID, req UpdateCardRequest) (*CardResponse, error) {
	card, err := s.mutateCard(ctx, ownerID, cardID, kanban.ActionCardUpdated, func(c *kanban.Card) error {
		return c.Update(req.toDomain())
	})
	if err != nil {
		return nil, err
	}
	resp := toCardResponse(card)
	return &resp, nil
}

// AddComment appends a comment authored by the acting user
func (s *Service) AddComment(ctx context.Context, ownerID, cardID uuid.UUID, req AddCommentRequest) (*CardResponse, error) {
	card, err := s.mutateCard(ctx, ownerID, cardID, kanban.ActionCardCommented, func(c *kanban.Card) error {
		_, err := c.AddComment(ownerID, req.Text)
		return err
	})
	if err != nil {
		return nil, err
	}
	resp := toCardResponse(card)
	return &resp, nil
}

// DeleteCard removes a card and closes the gap in its column
func (s *Service) DeleteCard(ctx context.Context, ownerID, cardID uuid.UUID) error {
	var (
		board    *kanban.Board
		columnID uuid.UUID
	)
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		card, err := repos.Cards().FindByIDForOwner(ctx, ownerID, cardID)
		if err != nil {
			return wrapNotFound(err, "Card")
		}
		if board, err = lockBoard(ctx, repos, ownerID, card.BoardID); err != nil {
			return err
		}
		columnID = card.ColumnID
		column, err := repos.Columns().FindByIDForOwnerForUpdate(ctx, ownerID, card.ColumnID)
		switch {
		case err == nil:
			if column.RemoveCard(card.ID) {
				if err := repos.Columns().Save(ctx, column); err != nil {
					return fmt.Errorf("save column: %w", err)
				}
			}
		case !errors.Is(err, shared.ErrNotFound):
			return err
		}
		return repos.Cards().Delete(ctx, card.ID)
	})
	if err != nil {
		return err
	}
	board.RecordChange(kanban.ActionCardDeleted, cardID, columnID)
	s.publish(ctx, board)
	return nil
}

// MoveCard moves a card to index of the destination column (clamped).
// Moving within the same column is a reorder.
func (s *Service) MoveCard(ctx context.Context, ownerID, cardID uuid.UUID, req MoveCardRequest) (*CardResponse, error) {
	return s.move(ctx, ownerID, cardID, &req.NewColumnID, req.NewOrder)
}

// ReorderCard moves a card to index within its own column
func (s *Service) ReorderCard(ctx context.Context, ownerID, cardID uuid.UUID, req ReorderCardRequest) (*CardResponse, error) {
	return s.move(ctx, ownerID, cardID, nil, req.NewOrder)
}

func (s *Service) move(ctx context.Context, ownerID, cardID uuid.UUID, dstID *uuid.UUID, index int) (_ *CardResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "kanban.card.move", "card_id", cardID, "index", index)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	var (
		board       *kanban.Board
		card        *kanban.Card
		crossColumn bool
	)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		if card, err = repos.Cards().FindByIDForOwner(ctx, ownerID, cardID); err != nil {
			return wrapNotFound(err, "Card")
		}
		if board, err = lockBoard(ctx, repos, ownerID, card.BoardID); err != nil {
			return err
		}
		// re-read under the board lock
		if card, err = repos.Cards().FindByIDForOwner(ctx, ownerID, cardID); err != nil {
			return wrapNotFound(err, "Card")
		}
		src, err := repos.Columns().FindByIDForOwnerForUpdate(ctx, ownerID, card.ColumnID)
		if err != nil {
			return wrapNotFound(err, "Column")
		}
		dst := src
		if dstID != nil && *dstID != src.ID {
			if dst, err = repos.Columns().FindByIDForOwnerForUpdate(ctx, ownerID, *dstID); err != nil {
				return wrapNotFound(err, "Destination column")
			}
			crossColumn = true
		}

		if err := kanban.MoveCard(card, src, dst, index); err != nil {
			return err
		}
		if err := repos.Cards().Save(ctx, card); err != nil {
			return fmt.Errorf("save card: %w", err)
		}
		changed := []*kanban.Column{src}
		if crossColumn {
			changed = append(changed, dst)
		}
		return repos.Columns().SaveBatch(ctx, changed)
	})
	if err != nil {
		return nil, err
	}

	action, kind := kanban.ActionCardReordered, "reorder"
	if crossColumn {
		action, kind = kanban.ActionCardMoved, "cross_column"
	}
	span.SetAttributes(telemetry.AttrMoveKind.String(kind))
	board.RecordChange(action, card.ID, card.ColumnID)
	s.publish(ctx, board)
	if s.moves != nil {
		s.moves.RecordCardMove(ctx, crossColumn)
	}
	logger.For(ctx, s.logger).Debug("card moved",
		zap.String("card_id", card.ID.String()),
		zap.String("column_id", card.ColumnID.String()),
		zap.Int("order", card.Order),
	)
	resp := toCardResponse(card)
	return &resp, nil
}

// SearchCards matches query against title and description of a board's cards
func (s *Service) SearchCards(ctx context.Context, ownerID, boardID uuid.UUID, query string) ([]CardResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, shared.NewValidationError("query is required")
	}
	board, err := s.boards.FindByIDForOwner(ctx, ownerID, boardID)
	if err != nil {
		return nil, wrapNotFound(err, "Board")
	}
	cards, err := s.cards.Search(ctx, board.ID, query)
	if err != nil {
		return nil, fmt.Errorf("search cards: %w", err)
	}
	ptrs, err := s.withOrders(ctx, board, cards)
	if err != nil {
		return nil, err
	}
	return toCardResponses(ptrs), nil
}

// FilterCards returns the board's cards matching every criterion, sorted by
// derived order, then column position
func (s *Service) FilterCards(ctx context.Context, ownerID uuid.UUID, req FilterCardsRequest) ([]CardResponse, error) {
	filter := req.toDomain()
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	board, err := s.boards.FindByIDForOwner(ctx, ownerID, req.BoardID)
	if err != nil {
		return nil, wrapNotFound(err, "Board")
	}
	columns, err := s.columns.FindByBoard(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("load columns: %w", err)
	}
	cards, err := s.cards.FindByBoard(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}

	byID := make(map[uuid.UUID]*kanban.Column, len(columns))
	for i := range columns {
		byID[columns[i].ID] = &columns[i]
	}
	today := shared.StartOfDay(s.clock.Now())

	matched := make([]*kanban.Card, 0, len(cards))
	for i := range cards {
		c := &cards[i]
		title := ""
		c.Order = -1
		if col, ok := byID[c.ColumnID]; ok {
			title = col.Title
			c.Order = col.CardOrder(c.ID)
		}
		if filter.Matches(c, title, today) {
			matched = append(matched, c)
		}
	}
	kanban.SortByPosition(matched, board)
	return toCardResponses(matched), nil
}

// withOrders fills derived orders from the board's columns
func (s *Service) withOrders(ctx context.Context, board *kanban.Board, cards []kanban.Card) ([]*kanban.Card, error) {
	columns, err := s.columns.FindByBoard(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("load columns: %w", err)
	}
	byID := make(map[uuid.UUID]*kanban.Column, len(columns))
	for i := range columns {
		byID[columns[i].ID] = &columns[i]
	}
	out := make([]*kanban.Card, 0, len(cards))
	for i := range cards {
		c := &cards[i]
		c.Order = -1
		if col, ok := byID[c.ColumnID]; ok {
			c.Order = col.CardOrder(c.ID)
		}
		out = append(out, c)
	}
	return out, nil
}
