package project

import (
	"strings"
	"time"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status of a project
type Status string

const (
	StatusActive    Status = "active"
	StatusOnHold    Status = "on-hold"
	StatusCompleted Status = "completed"
)

// IsValid reports whether s is an accepted project status
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusOnHold, StatusCompleted:
		return true
	}
	return false
}

// Project is a client engagement owned by one freelancer
type Project struct {
	shared.OwnedAggregateRoot
	Title       string           `gorm:"type:varchar(200);not null"`
	Description string           `gorm:"type:text"`
	ClientName  string           `gorm:"type:varchar(200);not null;index"`
	Status      Status           `gorm:"type:varchar(20);not null;default:'active'"`
	Budget      *decimal.Decimal `gorm:"type:decimal(18,2)"`
	Deadline    *time.Time
	StartDate   *time.Time
	EndDate     *time.Time
	NetProfit   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Tags        []string        `gorm:"type:jsonb;serializer:json"`
	NotesCount  int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// NewProject creates an active project
func NewProject(ownerID uuid.UUID, title, clientName string) (*Project, error) {
	p := &Project{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Status:             StatusActive,
		NetProfit:          decimal.Zero,
		Tags:               make([]string, 0),
	}
	if err := p.setTitle(title); err != nil {
		return nil, err
	}
	if err := p.setClientName(clientName); err != nil {
		return nil, err
	}
	return p, nil
}

// ProjectUpdate carries the optional fields of a project update
type ProjectUpdate struct {
	Title       *string
	Description *string
	ClientName  *string
	Status      *Status
	Budget      *decimal.Decimal
	Deadline    *time.Time
	StartDate   *time.Time
	EndDate     *time.Time
	NetProfit   *decimal.Decimal
	Tags        *[]string
	NotesCount  *int
}

// Apply applies a partial update
func (p *Project) Apply(u ProjectUpdate) error {
	if u.Title != nil {
		if err := p.setTitle(*u.Title); err != nil {
			return err
		}
	}
	if u.ClientName != nil {
		if err := p.setClientName(*u.ClientName); err != nil {
			return err
		}
	}
	if u.Description != nil {
		p.Description = strings.TrimSpace(*u.Description)
	}
	if u.Status != nil {
		if !u.Status.IsValid() {
			return shared.NewDomainError("INVALID_STATUS", "Status must be one of active, on-hold, completed")
		}
		p.Status = *u.Status
	}
	if u.Budget != nil {
		if u.Budget.IsNegative() {
			return shared.NewDomainError("INVALID_BUDGET", "Budget cannot be negative")
		}
		b := *u.Budget
		p.Budget = &b
	}
	if u.NetProfit != nil {
		if u.NetProfit.IsNegative() {
			return shared.NewDomainError("INVALID_NET_PROFIT", "Net profit cannot be negative")
		}
		p.NetProfit = *u.NetProfit
	}
	if u.Deadline != nil {
		p.Deadline = copyTime(u.Deadline)
	}
	if u.StartDate != nil {
		p.StartDate = copyTime(u.StartDate)
	}
	if u.EndDate != nil {
		p.EndDate = copyTime(u.EndDate)
	}
	if u.Tags != nil {
		p.Tags = cleanTags(*u.Tags)
	}
	if u.NotesCount != nil {
		if *u.NotesCount < 0 {
			return shared.NewDomainError("INVALID_NOTES_COUNT", "Notes count cannot be negative")
		}
		p.NotesCount = *u.NotesCount
	}
	p.Touch()
	p.IncrementVersion()
	return nil
}

// IncrementNotes bumps the cached note count
func (p *Project) IncrementNotes() {
	p.NotesCount++
	p.Touch()
}

// DecrementNotes lowers the cached note count, never below zero
func (p *Project) DecrementNotes() {
	if p.NotesCount > 0 {
		p.NotesCount--
	}
	p.Touch()
}

func (p *Project) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Project title is required")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Project title cannot exceed 200 characters")
	}
	p.Title = title
	return nil
}

func (p *Project) setClientName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_CLIENT_NAME", "Client name is required")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_CLIENT_NAME", "Client name cannot exceed 200 characters")
	}
	p.ClientName = name
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
