package kanban

import "strings"

// Column titles of the default layout
const (
	ColumnTitleToDo       = "To Do"
	ColumnTitleInProgress = "In Progress"
	ColumnTitleReview     = "Review"
	ColumnTitleDone       = "Done"
)

// Dashboard task statuses
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusReview     = "review"
	StatusDone       = "done"
	StatusUnknown    = "unknown"
)

var statusByColumnTitle = map[string]string{
	ColumnTitleToDo:       StatusTodo,
	ColumnTitleInProgress: StatusInProgress,
	ColumnTitleReview:     StatusReview,
	ColumnTitleDone:       StatusDone,
}

// keys are already normalized
var statusAliases = map[string]string{
	"todo":        StatusTodo,
	"to-do":       StatusTodo,
	"in-progress": StatusInProgress,
	"inprogress":  StatusInProgress,
	"review":      StatusReview,
	"done":        StatusDone,
	"completed":   StatusDone,
}

// StatusFromColumn maps a column title to a dashboard status.
// Titles outside the default layout map to StatusUnknown.
func StatusFromColumn(title string) string {
	if s, ok := statusByColumnTitle[title]; ok {
		return s
	}
	return StatusUnknown
}

// ColumnTitleForStatus maps a status (or alias) to its column title
func ColumnTitleForStatus(status string) (string, bool) {
	switch NormalizeStatus(status) {
	case StatusTodo:
		return ColumnTitleToDo, true
	case StatusInProgress:
		return ColumnTitleInProgress, true
	case StatusReview:
		return ColumnTitleReview, true
	case StatusDone:
		return ColumnTitleDone, true
	}
	return "", false
}

// NormalizeStatus lower-cases s, replaces underscores and whitespace with
// hyphens and resolves aliases. Unrecognized input yields StatusUnknown.
func NormalizeStatus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		if r == '_' || r == ' ' || r == '\t' {
			return '-'
		}
		return r
	}, s)
	if canonical, ok := statusAliases[s]; ok {
		return canonical
	}
	return StatusUnknown
}
