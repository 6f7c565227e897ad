package kanban

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(uuid.New(), "Client work", "  Q3 deliverables ")
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	t.Run("trims fields", func(t *testing.T) {
		b := newTestBoard(t)
		assert.Equal(t, "Client work", b.Title)
		assert.Equal(t, "Q3 deliverables", b.Description)
		assert.False(t, b.IsArchived)
		assert.Empty(t, b.ColumnIDs)
		assert.NotEqual(t, uuid.Nil, b.ID)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		_, err := NewBoard(uuid.New(), "   ", "")
		assert.Error(t, err)
	})
}

func TestBoard_ProvisionDefaultColumns(t *testing.T) {
	b := newTestBoard(t)

	cols, err := b.ProvisionDefaultColumns()
	require.NoError(t, err)
	require.Len(t, cols, 4)

	titles := []string{"To Do", "In Progress", "Review", "Done"}
	colors := []string{"#6b7280", "#3b82f6", "#8b5cf6", "#10b981"}
	for i, c := range cols {
		assert.Equal(t, titles[i], c.Title)
		assert.Equal(t, colors[i], c.Color)
		assert.Equal(t, i, c.Order)
		assert.Equal(t, i, b.ColumnOrder(c.ID))
		assert.Equal(t, b.ID, c.BoardID)
		assert.Equal(t, b.OwnerID, c.OwnerID)
		assert.Empty(t, c.CardIDs)
	}
}

func TestBoard_Update(t *testing.T) {
	b := newTestBoard(t)
	v := b.Version

	title := "Renamed"
	require.NoError(t, b.Update(&title, nil))
	assert.Equal(t, "Renamed", b.Title)
	assert.Equal(t, "Q3 deliverables", b.Description)
	assert.Equal(t, v+1, b.Version)

	empty := " "
	assert.Error(t, b.Update(&empty, nil))
	assert.Equal(t, "Renamed", b.Title)
}

func TestBoard_Archive(t *testing.T) {
	b := newTestBoard(t)
	b.Archive()
	assert.True(t, b.IsArchived)
	v := b.Version
	b.Archive()
	assert.Equal(t, v, b.Version)
}

func TestBoard_ReorderColumns(t *testing.T) {
	setup := func(t *testing.T) (*Board, []*Column) {
		b := newTestBoard(t)
		cols, err := b.ProvisionDefaultColumns()
		require.NoError(t, err)
		return b, cols
	}

	t.Run("full reorder", func(t *testing.T) {
		b, c := setup(t)
		err := b.ReorderColumns([]ColumnPosition{
			{ColumnID: c[0].ID, Order: 3},
			{ColumnID: c[1].ID, Order: 2},
			{ColumnID: c[2].ID, Order: 1},
			{ColumnID: c[3].ID, Order: 0},
		})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{c[3].ID, c[2].ID, c[1].ID, c[0].ID}, b.ColumnIDs)
	})

	t.Run("partial reorder keeps unlisted columns after listed ones", func(t *testing.T) {
		b, c := setup(t)
		err := b.ReorderColumns([]ColumnPosition{
			{ColumnID: c[3].ID, Order: 0},
			{ColumnID: c[1].ID, Order: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{c[3].ID, c[1].ID, c[0].ID, c[2].ID}, b.ColumnIDs)
	})

	t.Run("equal orders are stable", func(t *testing.T) {
		b, c := setup(t)
		err := b.ReorderColumns([]ColumnPosition{
			{ColumnID: c[2].ID, Order: 5},
			{ColumnID: c[0].ID, Order: 5},
		})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{c[2].ID, c[0].ID, c[1].ID, c[3].ID}, b.ColumnIDs)
	})

	t.Run("foreign column rejected", func(t *testing.T) {
		b, c := setup(t)
		before := append([]uuid.UUID(nil), b.ColumnIDs...)
		err := b.ReorderColumns([]ColumnPosition{
			{ColumnID: c[0].ID, Order: 1},
			{ColumnID: uuid.New(), Order: 0},
		})
		assert.Error(t, err)
		assert.Equal(t, before, b.ColumnIDs)
	})

	t.Run("duplicate column rejected", func(t *testing.T) {
		b, c := setup(t)
		err := b.ReorderColumns([]ColumnPosition{
			{ColumnID: c[0].ID, Order: 1},
			{ColumnID: c[0].ID, Order: 0},
		})
		assert.Error(t, err)
	})

	t.Run("empty request rejected", func(t *testing.T) {
		b, _ := setup(t)
		assert.Error(t, b.ReorderColumns(nil))
	})
}

func TestBoard_RecordChange(t *testing.T) {
	b := newTestBoard(t)
	cardID := uuid.New()

	b.RecordChange(ActionCardCreated, cardID, uuid.Nil)

	events := b.GetDomainEvents()
	require.Len(t, events, 1)
	e, ok := events[0].(*BoardChangedEvent)
	require.True(t, ok)
	assert.Equal(t, EventTypeBoardChanged, e.EventType())
	assert.Equal(t, b.ID, e.AggregateID())
	assert.Equal(t, b.OwnerID, e.OwnerID())
	assert.Equal(t, ActionCardCreated, e.Action)
	require.NotNil(t, e.CardID)
	assert.Equal(t, cardID, *e.CardID)
	assert.Nil(t, e.ColumnID)
}
