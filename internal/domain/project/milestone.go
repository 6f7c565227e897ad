package project

import (
	"strings"
	"time"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MilestoneStatus is the single source of truth for milestone completion
type MilestoneStatus string

const (
	MilestoneNotStarted MilestoneStatus = "not_started"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneCompleted  MilestoneStatus = "completed"
)

// IsValid reports whether s is an accepted milestone status
func (s MilestoneStatus) IsValid() bool {
	switch s {
	case MilestoneNotStarted, MilestoneInProgress, MilestoneCompleted:
		return true
	}
	return false
}

// ChecklistItem is a tickable line item
type ChecklistItem struct {
	Text        string `json:"text"`
	IsCompleted bool   `json:"isCompleted"`
}

// Milestone is a dated checkpoint of a project
type Milestone struct {
	shared.OwnedAggregateRoot
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title       string          `gorm:"type:varchar(200);not null"`
	Status      MilestoneStatus `gorm:"type:varchar(20);not null;default:'not_started'"`
	CompletedAt *time.Time
	StartDate   *time.Time
	DueDate     *time.Time      `gorm:"index"`
	Checklist   []ChecklistItem `gorm:"type:jsonb;serializer:json"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Milestone) TableName() string {
	return "project_milestones"
}

// NewMilestone creates a not-started milestone on project p
func NewMilestone(p *Project, title string, startDate, dueDate *time.Time) (*Milestone, error) {
	title = strings.TrimSpace(title)
	if err := validateMilestoneTitle(title); err != nil {
		return nil, err
	}
	return &Milestone{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(p.OwnerID),
		ProjectID:          p.ID,
		Title:              title,
		Status:             MilestoneNotStarted,
		StartDate:          copyTime(startDate),
		DueDate:            copyTime(dueDate),
		Checklist:          make([]ChecklistItem, 0),
	}, nil
}

// IsCompleted is a read-only projection of Status
func (m *Milestone) IsCompleted() bool {
	return m.Status == MilestoneCompleted
}

// MilestoneUpdate carries the optional fields of a milestone update.
// IsCompleted is the legacy boolean input; it is translated to a status.
type MilestoneUpdate struct {
	Title          *string
	Status         *MilestoneStatus
	IsCompleted    *bool
	StartDate      *time.Time
	ClearStartDate bool
	DueDate        *time.Time
	ClearDueDate   bool
	Checklist      *[]ChecklistItem
	Notes          *string
}

// Apply applies a partial update. Entering completed stamps CompletedAt
// with now; leaving it clears CompletedAt.
func (m *Milestone) Apply(u MilestoneUpdate, now time.Time) error {
	if u.Title != nil {
		t := strings.TrimSpace(*u.Title)
		if err := validateMilestoneTitle(t); err != nil {
			return err
		}
		m.Title = t
	}

	status := m.Status
	if u.Status != nil {
		if !u.Status.IsValid() {
			return shared.NewDomainError("INVALID_STATUS", "Status must be one of not_started, in_progress, completed")
		}
		status = *u.Status
	}
	if u.IsCompleted != nil {
		switch {
		case *u.IsCompleted:
			status = MilestoneCompleted
		case status == MilestoneCompleted:
			status = MilestoneInProgress
		}
	}
	m.setStatus(status, now)

	if u.ClearStartDate {
		m.StartDate = nil
	} else if u.StartDate != nil {
		m.StartDate = copyTime(u.StartDate)
	}
	if u.ClearDueDate {
		m.DueDate = nil
	} else if u.DueDate != nil {
		m.DueDate = copyTime(u.DueDate)
	}
	if u.Checklist != nil {
		m.Checklist = append([]ChecklistItem(nil), (*u.Checklist)...)
	}
	if u.Notes != nil {
		m.Notes = *u.Notes
	}
	m.Touch()
	m.IncrementVersion()
	return nil
}

func (m *Milestone) setStatus(s MilestoneStatus, now time.Time) {
	wasCompleted := m.IsCompleted()
	m.Status = s
	switch {
	case s == MilestoneCompleted && !wasCompleted:
		t := now
		m.CompletedAt = &t
	case s != MilestoneCompleted:
		m.CompletedAt = nil
	}
}

func validateMilestoneTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Milestone title is required")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Milestone title cannot exceed 200 characters")
	}
	return nil
}
