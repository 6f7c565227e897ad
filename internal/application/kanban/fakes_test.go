package kanban

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/freelancehub/backend/internal/domain/kanban"
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// memStore keeps copies of every aggregate so that tests observe only what
// was saved
type memStore struct {
	mu      sync.Mutex
	boards  map[uuid.UUID]kanban.Board
	columns map[uuid.UUID]kanban.Column
	cards   map[uuid.UUID]kanban.Card
}

func newMemStore() *memStore {
	return &memStore{
		boards:  make(map[uuid.UUID]kanban.Board),
		columns: make(map[uuid.UUID]kanban.Column),
		cards:   make(map[uuid.UUID]kanban.Card),
	}
}

func copyIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return nil
	}
	return append([]uuid.UUID(nil), ids...)
}

func cloneBoard(b kanban.Board) kanban.Board {
	b.ColumnIDs = copyIDs(b.ColumnIDs)
	b.ClearDomainEvents()
	return b
}

func cloneColumn(c kanban.Column) kanban.Column {
	c.CardIDs = copyIDs(c.CardIDs)
	c.Order = 0
	return c
}

func cloneCard(c kanban.Card) kanban.Card {
	c.Tags = append([]string(nil), c.Tags...)
	c.Comments = append([]kanban.Comment(nil), c.Comments...)
	c.Attachments = append([]kanban.Attachment(nil), c.Attachments...)
	c.Order = 0
	return c
}

type memBoards struct{ s *memStore }
type memColumns struct{ s *memStore }
type memCards struct{ s *memStore }

func (r memBoards) FindByIDForOwner(_ context.Context, ownerID, id uuid.UUID) (*kanban.Board, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.boards[id]
	if !ok || b.OwnerID != ownerID {
		return nil, shared.ErrNotFound
	}
	out := cloneBoard(b)
	return &out, nil
}

func (r memBoards) FindByIDForOwnerForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*kanban.Board, error) {
	return r.FindByIDForOwner(ctx, ownerID, id)
}

func (r memBoards) FindActiveByOwner(_ context.Context, ownerID uuid.UUID) ([]kanban.Board, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]kanban.Board, 0)
	for _, b := range r.s.boards {
		if b.OwnerID == ownerID && !b.IsArchived {
			out = append(out, cloneBoard(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memBoards) Save(_ context.Context, b *kanban.Board) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.boards[b.ID] = cloneBoard(*b)
	return nil
}

func (r memColumns) FindByIDForOwner(_ context.Context, ownerID, id uuid.UUID) (*kanban.Column, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.columns[id]
	if !ok || c.OwnerID != ownerID {
		return nil, shared.ErrNotFound
	}
	out := cloneColumn(c)
	return &out, nil
}

func (r memColumns) FindByIDForOwnerForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*kanban.Column, error) {
	return r.FindByIDForOwner(ctx, ownerID, id)
}

func (r memColumns) FindByIDsForOwner(_ context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]kanban.Column, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]kanban.Column, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.s.columns[id]; ok && c.OwnerID == ownerID {
			out = append(out, cloneColumn(c))
		}
	}
	return out, nil
}

func (r memColumns) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]kanban.Column, error) {
	return r.FindByBoards(ctx, []uuid.UUID{boardID})
}

func (r memColumns) FindByBoards(_ context.Context, boardIDs []uuid.UUID) ([]kanban.Column, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]kanban.Column, 0)
	for _, c := range r.s.columns {
		for _, id := range boardIDs {
			if c.BoardID == id {
				out = append(out, cloneColumn(c))
			}
		}
	}
	return out, nil
}

func (r memColumns) Save(_ context.Context, c *kanban.Column) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.columns[c.ID] = cloneColumn(*c)
	return nil
}

func (r memColumns) SaveBatch(ctx context.Context, columns []*kanban.Column) error {
	for _, c := range columns {
		if err := r.Save(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r memColumns) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.columns[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.s.columns, id)
	return nil
}

func (r memCards) FindByIDForOwner(_ context.Context, ownerID, id uuid.UUID) (*kanban.Card, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.cards[id]
	if !ok || c.OwnerID != ownerID {
		return nil, shared.ErrNotFound
	}
	out := cloneCard(c)
	return &out, nil
}

func (r memCards) FindByColumn(_ context.Context, columnID uuid.UUID) ([]kanban.Card, error) {
	return r.filter(func(c kanban.Card) bool { return c.ColumnID == columnID }), nil
}

func (r memCards) FindByBoard(_ context.Context, boardID uuid.UUID) ([]kanban.Card, error) {
	return r.filter(func(c kanban.Card) bool { return c.BoardID == boardID }), nil
}

func (r memCards) FindByBoards(_ context.Context, boardIDs []uuid.UUID) ([]kanban.Card, error) {
	return r.filter(func(c kanban.Card) bool {
		for _, id := range boardIDs {
			if c.BoardID == id {
				return true
			}
		}
		return false
	}), nil
}

func (r memCards) Search(_ context.Context, boardID uuid.UUID, query string) ([]kanban.Card, error) {
	q := strings.ToLower(query)
	return r.filter(func(c kanban.Card) bool {
		return c.BoardID == boardID &&
			(strings.Contains(strings.ToLower(c.Title), q) || strings.Contains(strings.ToLower(c.Description), q))
	}), nil
}

func (r memCards) filter(keep func(kanban.Card) bool) []kanban.Card {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]kanban.Card, 0)
	for _, c := range r.s.cards {
		if keep(c) {
			out = append(out, cloneCard(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r memCards) Save(_ context.Context, c *kanban.Card) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.cards[c.ID] = cloneCard(*c)
	return nil
}

func (r memCards) SaveBatch(ctx context.Context, cards []*kanban.Card) error {
	for _, c := range cards {
		if err := r.Save(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r memCards) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cards[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.s.cards, id)
	return nil
}

func (r memCards) DeleteByColumn(_ context.Context, columnID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, c := range r.s.cards {
		if c.ColumnID == columnID {
			delete(r.s.cards, id)
		}
	}
	return nil
}

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// MockMoveRecorder is a mock implementation of MoveRecorder
type MockMoveRecorder struct {
	mock.Mock
}

func (m *MockMoveRecorder) RecordCardMove(ctx context.Context, crossColumn bool) {
	m.Called(ctx, crossColumn)
}
