package dashboard

import (
	"sort"
	"time"

	"github.com/freelancehub/backend/internal/domain/kanban"
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	upcomingDeadlineLimit = 5
	deadlineWindowDays    = 7

	// UnknownColumnTitle buckets cards whose column no longer exists
	UnknownColumnTitle = "Unknown"
)

// Deadline is an open card due within the next week
type Deadline struct {
	ID            uuid.UUID
	Title         string
	DueDate       time.Time
	DaysRemaining int
	Priority      kanban.Priority
	ColumnTitle   string
	Status        string
}

// Task is a card as presented on the dashboard
type Task struct {
	Card        *kanban.Card
	ColumnTitle string
	Status      string
}

// TaskStats is the kanban dashboard snapshot
type TaskStats struct {
	TotalTasks        int
	CompletedTasks    int
	InProgressTasks   int
	HighPriorityTasks int
	TasksByStatus     map[string]int
	UpcomingDeadlines []Deadline
	OverdueTasks      int
	CompletionRate    float64
	Tasks             []Task
}

// EmptyTaskStats is the snapshot of a user without boards
func EmptyTaskStats() TaskStats {
	return TaskStats{
		TasksByStatus:     make(map[string]int),
		UpcomingDeadlines: make([]Deadline, 0),
		Tasks:             make([]Task, 0),
	}
}

// ComputeTaskStats classifies cards by the title of their column. Cards
// in a "Done" column never count as upcoming or overdue. The task list is
// newest first.
func ComputeTaskStats(cards []kanban.Card, columns map[uuid.UUID]kanban.Column, today time.Time) TaskStats {
	today = shared.StartOfDay(today)
	windowEnd := today.AddDate(0, 0, deadlineWindowDays)

	s := EmptyTaskStats()
	s.TotalTasks = len(cards)

	ordered := make([]*kanban.Card, len(cards))
	for i := range cards {
		ordered[i] = &cards[i]
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	for _, c := range ordered {
		title := UnknownColumnTitle
		if col, ok := columns[c.ColumnID]; ok {
			title = col.Title
		}
		done := title == kanban.ColumnTitleDone
		status := kanban.StatusFromColumn(title)

		switch title {
		case kanban.ColumnTitleDone:
			s.CompletedTasks++
		case kanban.ColumnTitleInProgress:
			s.InProgressTasks++
		}
		if c.Priority == kanban.PriorityHigh {
			s.HighPriorityTasks++
		}
		s.TasksByStatus[title]++

		if c.DueDate != nil && !done {
			due := *c.DueDate
			switch {
			case due.Before(today):
				s.OverdueTasks++
			case !due.After(windowEnd):
				s.UpcomingDeadlines = append(s.UpcomingDeadlines, Deadline{
					ID:            c.ID,
					Title:         c.Title,
					DueDate:       due,
					DaysRemaining: DaysRemaining(due, today),
					Priority:      c.Priority,
					ColumnTitle:   title,
					Status:        status,
				})
			}
		}

		s.Tasks = append(s.Tasks, Task{Card: c, ColumnTitle: title, Status: status})
	}

	sort.SliceStable(s.UpcomingDeadlines, func(i, j int) bool {
		return s.UpcomingDeadlines[i].DueDate.Before(s.UpcomingDeadlines[j].DueDate)
	})
	if len(s.UpcomingDeadlines) > upcomingDeadlineLimit {
		s.UpcomingDeadlines = s.UpcomingDeadlines[:upcomingDeadlineLimit]
	}

	if s.TotalTasks > 0 {
		s.CompletionRate = float64(s.CompletedTasks) / float64(s.TotalTasks) * 100
	}
	return s
}
