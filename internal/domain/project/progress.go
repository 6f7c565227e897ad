package project

import (
	"time"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProgressStepStatus is the status of a progress step
type ProgressStepStatus string

const (
	StepPending    ProgressStepStatus = "pending"
	StepInProgress ProgressStepStatus = "in-progress"
	StepCompleted  ProgressStepStatus = "completed"
)

// ProgressStep is a lightweight milestone tracked on the progress record
type ProgressStep struct {
	Title   string             `json:"title"`
	Status  ProgressStepStatus `json:"status"`
	DueDate *time.Time         `json:"dueDate,omitempty"`
}

// ProgressEntry is one history line
type ProgressEntry struct {
	Date       time.Time `json:"date"`
	Update     string    `json:"update"`
	Percentage int       `json:"percentage"`
}

// Progress is the one-per-project progress record
type Progress struct {
	shared.OwnedAggregateRoot
	ProjectID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	OverallProgress int             `gorm:"not null;default:0"`
	Milestones      []ProgressStep  `gorm:"type:jsonb;serializer:json"`
	History         []ProgressEntry `gorm:"type:jsonb;serializer:json"`
}

// TableName returns the table name for GORM
func (Progress) TableName() string {
	return "project_progress"
}

// NewProgress creates an empty progress record for p
func NewProgress(p *Project) *Progress {
	return &Progress{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(p.OwnerID),
		ProjectID:          p.ID,
		Milestones:         make([]ProgressStep, 0),
		History:            make([]ProgressEntry, 0),
	}
}

// ProgressUpdate carries the optional fields of a progress update
type ProgressUpdate struct {
	OverallProgress *int
	Milestones      *[]ProgressStep
	History         *[]ProgressEntry
}

// Apply replaces the provided fields
func (p *Progress) Apply(u ProgressUpdate, now time.Time) error {
	if u.OverallProgress != nil {
		if err := validatePercentage(*u.OverallProgress); err != nil {
			return err
		}
		p.OverallProgress = *u.OverallProgress
	}
	if u.Milestones != nil {
		steps := make([]ProgressStep, 0, len(*u.Milestones))
		for _, s := range *u.Milestones {
			switch s.Status {
			case "":
				s.Status = StepPending
			case StepPending, StepInProgress, StepCompleted:
			default:
				return shared.NewDomainError("INVALID_STATUS", "Step status must be one of pending, in-progress, completed")
			}
			steps = append(steps, s)
		}
		p.Milestones = steps
	}
	if u.History != nil {
		history := make([]ProgressEntry, 0, len(*u.History))
		for _, h := range *u.History {
			if err := validatePercentage(h.Percentage); err != nil {
				return err
			}
			if h.Date.IsZero() {
				h.Date = now
			}
			history = append(history, h)
		}
		p.History = history
	}
	p.Touch()
	p.IncrementVersion()
	return nil
}

func validatePercentage(v int) error {
	if v < 0 || v > 100 {
		return shared.NewDomainError("INVALID_PROGRESS", "Progress must be between 0 and 100")
	}
	return nil
}
