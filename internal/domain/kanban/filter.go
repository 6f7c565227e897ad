package kanban

import (
	"sort"
	"strings"
	"time"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DueDateFilter selects cards by due date relative to today
type DueDateFilter string

const (
	DueOverdue DueDateFilter = "overdue"
	DueToday   DueDateFilter = "today"
	DueWeek    DueDateFilter = "week"
)

// CardFilter narrows the cards of one board. Zero-valued fields match everything.
type CardFilter struct {
	Priority Priority
	Assignee *uuid.UUID
	Tags     []string
	DueDate  DueDateFilter
	Status   string
}

// Validate checks enumerated filter values
func (f CardFilter) Validate() error {
	if f.Priority != "" && !f.Priority.IsValid() {
		return shared.NewValidationError("priority must be one of low, medium, high")
	}
	switch f.DueDate {
	case "", DueOverdue, DueToday, DueWeek:
	default:
		return shared.NewValidationError("dueDateFilter must be one of overdue, today, week")
	}
	if f.Status != "" && NormalizeStatus(f.Status) == StatusUnknown {
		return shared.NewValidationError("unknown status: " + f.Status)
	}
	return nil
}

// Matches reports whether card passes the filter. columnTitle is the title
// of the card's column and today is midnight of the current day.
func (f CardFilter) Matches(card *Card, columnTitle string, today time.Time) bool {
	if f.Priority != "" && card.Priority != f.Priority {
		return false
	}
	if f.Assignee != nil && (card.Assignee == nil || *card.Assignee != *f.Assignee) {
		return false
	}
	if len(f.Tags) > 0 && !card.HasAnyTag(f.Tags) {
		return false
	}
	if f.DueDate != "" && !matchesDue(f.DueDate, card.DueDate, today) {
		return false
	}
	if f.Status != "" && StatusFromColumn(columnTitle) != NormalizeStatus(f.Status) {
		return false
	}
	return true
}

func matchesDue(filter DueDateFilter, due *time.Time, today time.Time) bool {
	if due == nil {
		return false
	}
	switch filter {
	case DueOverdue:
		return due.Before(today)
	case DueToday:
		return !due.Before(today) && due.Before(today.AddDate(0, 0, 1))
	case DueWeek:
		return !due.Before(today) && due.Before(today.AddDate(0, 0, 7))
	}
	return true
}

// MatchesQuery is a case-insensitive substring match on title or description
func MatchesQuery(card *Card, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	return strings.Contains(strings.ToLower(card.Title), q) ||
		strings.Contains(strings.ToLower(card.Description), q)
}

// SortByPosition orders cards by derived order, then by the position of
// their column on the board
func SortByPosition(cards []*Card, board *Board) {
	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].Order != cards[j].Order {
			return cards[i].Order < cards[j].Order
		}
		return board.ColumnOrder(cards[i].ColumnID) < board.ColumnOrder(cards[j].ColumnID)
	})
}
