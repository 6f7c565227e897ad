package kanban

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardFilter_Matches(t *testing.T) {
	today := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	_, col := newTestColumn(t)

	mk := func(mutate func(c *Card)) *Card {
		c, err := NewCard(col, "card")
		require.NoError(t, err)
		mutate(c)
		return c
	}
	at := func(d time.Time) *time.Time { return &d }
	alice := uuid.New()

	overdue := mk(func(c *Card) { c.DueDate = at(today.Add(-time.Hour)) })
	dueToday := mk(func(c *Card) { c.DueDate = at(today.Add(15 * time.Hour)) })
	dueInSix := mk(func(c *Card) { c.DueDate = at(today.AddDate(0, 0, 6)) })
	dueInSeven := mk(func(c *Card) { c.DueDate = at(today.AddDate(0, 0, 7)) })
	noDue := mk(func(c *Card) {})
	high := mk(func(c *Card) { c.Priority = PriorityHigh })
	assigned := mk(func(c *Card) { c.Assignee = &alice })
	tagged := mk(func(c *Card) { c.Tags = []string{"backend", "api"} })

	t.Run("overdue", func(t *testing.T) {
		f := CardFilter{DueDate: DueOverdue}
		assert.True(t, f.Matches(overdue, "To Do", today))
		assert.False(t, f.Matches(dueToday, "To Do", today))
		assert.False(t, f.Matches(noDue, "To Do", today))
	})

	t.Run("today", func(t *testing.T) {
		f := CardFilter{DueDate: DueToday}
		assert.True(t, f.Matches(dueToday, "To Do", today))
		assert.False(t, f.Matches(overdue, "To Do", today))
		assert.False(t, f.Matches(dueInSix, "To Do", today))
	})

	t.Run("week is half open", func(t *testing.T) {
		f := CardFilter{DueDate: DueWeek}
		assert.True(t, f.Matches(dueToday, "To Do", today))
		assert.True(t, f.Matches(dueInSix, "To Do", today))
		assert.False(t, f.Matches(dueInSeven, "To Do", today))
	})

	t.Run("priority", func(t *testing.T) {
		f := CardFilter{Priority: PriorityHigh}
		assert.True(t, f.Matches(high, "To Do", today))
		assert.False(t, f.Matches(noDue, "To Do", today))
	})

	t.Run("assignee", func(t *testing.T) {
		f := CardFilter{Assignee: &alice}
		assert.True(t, f.Matches(assigned, "To Do", today))
		assert.False(t, f.Matches(noDue, "To Do", today))
	})

	t.Run("tags any of", func(t *testing.T) {
		assert.True(t, CardFilter{Tags: []string{"frontend", "api"}}.Matches(tagged, "To Do", today))
		assert.False(t, CardFilter{Tags: []string{"frontend"}}.Matches(tagged, "To Do", today))
	})

	t.Run("status through column title", func(t *testing.T) {
		f := CardFilter{Status: "in_progress"}
		assert.True(t, f.Matches(noDue, "In Progress", today))
		assert.False(t, f.Matches(noDue, "Done", today))
	})

	t.Run("empty filter matches all", func(t *testing.T) {
		assert.True(t, CardFilter{}.Matches(noDue, "Whatever", today))
	})
}

func TestCardFilter_Validate(t *testing.T) {
	assert.NoError(t, CardFilter{}.Validate())
	assert.NoError(t, CardFilter{Priority: PriorityLow, DueDate: DueWeek, Status: "done"}.Validate())
	assert.Error(t, CardFilter{Priority: "urgent"}.Validate())
	assert.Error(t, CardFilter{DueDate: "month"}.Validate())
	assert.Error(t, CardFilter{Status: "archived"}.Validate())
}

func TestMatchesQuery(t *testing.T) {
	_, col := newTestColumn(t)
	c, err := NewCard(col, "Fix Login bug")
	require.NoError(t, err)
	c.Description = "OAuth callback returns 500"

	assert.True(t, MatchesQuery(c, "login"))
	assert.True(t, MatchesQuery(c, "oauth"))
	assert.False(t, MatchesQuery(c, "signup"))
	assert.False(t, MatchesQuery(c, "   "))
}

func TestSortByPosition(t *testing.T) {
	f := newFixture(t)
	a := f.addCard(t, f.columns[1], "a")
	b := f.addCard(t, f.columns[0], "b")
	c := f.addCard(t, f.columns[0], "c")

	cards := []*Card{c, a, b}
	SortByPosition(cards, f.board)

	assert.Equal(t, []*Card{b, a, c}, cards)
}
