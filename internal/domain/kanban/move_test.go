package kanban

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	board   *Board
	columns []*Column
	cards   map[uuid.UUID]*Card
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	b := newTestBoard(t)
	cols, err := b.ProvisionDefaultColumns()
	require.NoError(t, err)
	return &fixture{board: b, columns: cols, cards: make(map[uuid.UUID]*Card)}
}

func (f *fixture) addCard(t *testing.T, col *Column, title string) *Card {
	t.Helper()
	card, err := NewCard(col, title)
	require.NoError(t, err)
	card.Order = col.AppendCard(card.ID)
	f.cards[card.ID] = card
	return card
}

func (f *fixture) column(id uuid.UUID) *Column {
	for _, c := range f.columns {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// assertConsistent checks that every list entry is a card of that column
// whose derived order equals its index, and that no card is orphaned
func (f *fixture) assertConsistent(t *testing.T) {
	t.Helper()
	listed := 0
	for _, col := range f.columns {
		for i, id := range col.CardIDs {
			card, ok := f.cards[id]
			require.True(t, ok, "column lists unknown card")
			assert.Equal(t, col.ID, card.ColumnID)
			assert.Equal(t, i, col.CardOrder(id))
			listed++
		}
	}
	assert.Equal(t, len(f.cards), listed)
}

func TestCreateCard_AppendsToColumn(t *testing.T) {
	f := newFixture(t)
	todo := f.columns[0]

	a := f.addCard(t, todo, "a")
	b := f.addCard(t, todo, "b")

	assert.Equal(t, 0, a.Order)
	assert.Equal(t, 1, b.Order)
	assert.Equal(t, []uuid.UUID{a.ID, b.ID}, todo.CardIDs)
}

func TestMoveCard(t *testing.T) {
	t.Run("across columns inserts at index", func(t *testing.T) {
		f := newFixture(t)
		src, dst := f.columns[0], f.columns[1]
		a := f.addCard(t, src, "a")
		x := f.addCard(t, dst, "x")
		y := f.addCard(t, dst, "y")

		require.NoError(t, MoveCard(a, src, dst, 1))

		assert.Empty(t, src.CardIDs)
		assert.Equal(t, []uuid.UUID{x.ID, a.ID, y.ID}, dst.CardIDs)
		assert.Equal(t, dst.ID, a.ColumnID)
		assert.Equal(t, 1, a.Order)
		f.assertConsistent(t)
	})

	t.Run("index past end lands at min(k, n)", func(t *testing.T) {
		f := newFixture(t)
		src, dst := f.columns[0], f.columns[2]
		a := f.addCard(t, src, "a")
		f.addCard(t, dst, "x")
		f.addCard(t, dst, "y")
		n := dst.Len()

		require.NoError(t, MoveCard(a, src, dst, 10))

		assert.Equal(t, n+1, dst.Len())
		assert.Equal(t, n, a.Order)
		assert.Equal(t, a.ID, dst.CardIDs[n])
	})

	t.Run("same column keeps length", func(t *testing.T) {
		f := newFixture(t)
		col := f.columns[0]
		a := f.addCard(t, col, "a")
		b := f.addCard(t, col, "b")
		c := f.addCard(t, col, "c")

		require.NoError(t, MoveCard(a, col, col, 2))

		assert.Equal(t, []uuid.UUID{b.ID, c.ID, a.ID}, col.CardIDs)
		assert.Equal(t, 2, a.Order)
		f.assertConsistent(t)
	})

	t.Run("destination on another board is rejected", func(t *testing.T) {
		f := newFixture(t)
		other := newFixture(t)
		a := f.addCard(t, f.columns[0], "a")

		err := MoveCard(a, f.columns[0], other.columns[0], 0)

		assert.Error(t, err)
		assert.Equal(t, []uuid.UUID{a.ID}, f.columns[0].CardIDs)
		assert.Empty(t, other.columns[0].CardIDs)
	})

	t.Run("wrong source column is rejected", func(t *testing.T) {
		f := newFixture(t)
		a := f.addCard(t, f.columns[0], "a")
		assert.Error(t, MoveCard(a, f.columns[1], f.columns[2], 0))
	})
}

func TestReorderCard(t *testing.T) {
	f := newFixture(t)
	col := f.columns[1]
	a := f.addCard(t, col, "a")
	b := f.addCard(t, col, "b")
	c := f.addCard(t, col, "c")

	require.NoError(t, ReorderCard(c, col, 0))

	assert.Equal(t, []uuid.UUID{c.ID, a.ID, b.ID}, col.CardIDs)
	FillOrders(col, []*Card{a, b, c})
	assert.Equal(t, 0, c.Order)
	assert.Equal(t, 1, a.Order)
	assert.Equal(t, 2, b.Order)
}

func TestDeleteCard_ClosesGap(t *testing.T) {
	f := newFixture(t)
	col := f.columns[0]
	a := f.addCard(t, col, "a")
	b := f.addCard(t, col, "b")
	c := f.addCard(t, col, "c")

	require.True(t, col.RemoveCard(b.ID))
	delete(f.cards, b.ID)

	assert.Equal(t, []uuid.UUID{a.ID, c.ID}, col.CardIDs)
	FillOrders(col, []*Card{a, c})
	assert.Equal(t, 1, c.Order)
	f.assertConsistent(t)
}

func TestRelocateCards(t *testing.T) {
	t.Run("appends in source order", func(t *testing.T) {
		f := newFixture(t)
		src, dst := f.columns[1], f.columns[3]
		d := f.addCard(t, dst, "d")
		a := f.addCard(t, src, "a")
		b := f.addCard(t, src, "b")

		require.NoError(t, RelocateCards(src, dst, []*Card{b, a}))

		assert.Equal(t, []uuid.UUID{d.ID, a.ID, b.ID}, dst.CardIDs)
		assert.Empty(t, src.CardIDs)
		assert.Equal(t, 1, a.Order)
		assert.Equal(t, 2, b.Order)
		f.assertConsistent(t)
	})

	t.Run("unlisted strays are kept", func(t *testing.T) {
		f := newFixture(t)
		src, dst := f.columns[0], f.columns[1]
		a := f.addCard(t, src, "a")
		stray, err := NewCard(src, "stray")
		require.NoError(t, err)

		require.NoError(t, RelocateCards(src, dst, []*Card{stray, a}))

		assert.Equal(t, []uuid.UUID{a.ID, stray.ID}, dst.CardIDs)
		assert.Equal(t, dst.ID, stray.ColumnID)
	})

	t.Run("same column rejected", func(t *testing.T) {
		f := newFixture(t)
		assert.Error(t, RelocateCards(f.columns[0], f.columns[0], nil))
	})
}

// Random create/move/reorder/delete sequences never break the ordering
func TestOrdering_RandomSequences(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		f := newFixture(t)

		for step := 0; step < 200; step++ {
			switch op := rng.Intn(4); {
			case op == 0 || len(f.cards) == 0:
				f.addCard(t, f.columns[rng.Intn(len(f.columns))], "c")
			case op == 1:
				card := pick(rng, f.cards)
				src := f.column(card.ColumnID)
				dst := f.columns[rng.Intn(len(f.columns))]
				n := dst.Len()
				same := src.ID == dst.ID
				require.NoError(t, MoveCard(card, src, dst, rng.Intn(n+3)-1))
				if same {
					assert.Equal(t, n, dst.Len())
				} else {
					assert.Equal(t, n+1, dst.Len())
				}
			case op == 2:
				card := pick(rng, f.cards)
				col := f.column(card.ColumnID)
				require.NoError(t, ReorderCard(card, col, rng.Intn(col.Len()+1)))
			default:
				card := pick(rng, f.cards)
				f.column(card.ColumnID).RemoveCard(card.ID)
				delete(f.cards, card.ID)
			}
		}

		f.assertConsistent(t)
	}
}

func pick(rng *rand.Rand, cards map[uuid.UUID]*Card) *Card {
	keys := make([]uuid.UUID, 0, len(cards))
	for id := range cards {
		keys = append(keys, id)
	}
	// map iteration order is random; sort for a reproducible pick
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return cards[keys[rng.Intn(len(keys))]]
}
