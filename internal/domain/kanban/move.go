package kanban

import (
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MoveCard moves card out of src and into dst at index (clamped to
// [0, len(dst)]). src and dst may be the same column, in which case the
// column length is unchanged. The card's Order is set to the final index.
func MoveCard(card *Card, src, dst *Column, index int) error {
	if src.ID != card.ColumnID {
		return shared.NewDomainError("INVALID_STATE", "Card is not in the source column")
	}
	if dst.BoardID != card.BoardID {
		return shared.NewValidationError("Destination column belongs to a different board")
	}

	src.RemoveCard(card.ID)
	pos := dst.InsertCard(card.ID, index)

	card.ColumnID = dst.ID
	card.Order = pos
	card.Touch()
	card.IncrementVersion()
	return nil
}

// ReorderCard moves a card to index within its own column
func ReorderCard(card *Card, column *Column, index int) error {
	return MoveCard(card, column, column, index)
}

// RelocateCards re-parents every card of src onto dst, appending them in
// src's order. Cards whose id is missing from src.CardIDs are appended
// after the ordered ones.
func RelocateCards(src, dst *Column, cards []*Card) error {
	if src.ID == dst.ID {
		return shared.NewValidationError("Cannot move cards to the column being deleted")
	}
	if src.BoardID != dst.BoardID {
		return shared.NewValidationError("Destination column belongs to a different board")
	}

	byID := make(map[uuid.UUID]*Card, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}

	for _, id := range src.CardIDs {
		if c, ok := byID[id]; ok {
			c.ColumnID = dst.ID
			c.Order = dst.AppendCard(id)
			delete(byID, id)
		}
	}
	for _, c := range cards {
		if _, pending := byID[c.ID]; pending {
			c.ColumnID = dst.ID
			c.Order = dst.AppendCard(c.ID)
		}
	}

	src.CardIDs = make([]uuid.UUID, 0)
	src.Touch()
	dst.IncrementVersion()
	return nil
}

// FillOrders sets each card's derived Order from its column ordering
func FillOrders(column *Column, cards []*Card) {
	for _, c := range cards {
		if c.ColumnID == column.ID {
			c.Order = column.CardOrder(c.ID)
		}
	}
}
