package project

import (
	"time"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CommunicationType classifies a client interaction
type CommunicationType string

const (
	CommunicationEmail   CommunicationType = "email"
	CommunicationCall    CommunicationType = "call"
	CommunicationMeeting CommunicationType = "meeting"
	CommunicationOther   CommunicationType = "other"
)

// CommunicationEntry is one logged client interaction
type CommunicationEntry struct {
	Date    time.Time         `json:"date"`
	Summary string            `json:"summary"`
	Type    CommunicationType `json:"type"`
}

// ClientInfo holds client contact data
type ClientInfo struct {
	Email            string               `json:"email"`
	Notes            string               `json:"notes"`
	CommunicationLog []CommunicationEntry `json:"communicationLog"`
}

// Details is the one-per-project requirements/scope extension
type Details struct {
	shared.OwnedAggregateRoot
	ProjectID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Requirements string          `gorm:"type:text"`
	Scope        string          `gorm:"type:text"`
	Deliverables []ChecklistItem `gorm:"type:jsonb;serializer:json"`
	ClientInfo   ClientInfo      `gorm:"type:jsonb;serializer:json"`
}

// TableName returns the table name for GORM
func (Details) TableName() string {
	return "project_details"
}

// NewDetails creates empty details for p
func NewDetails(p *Project) *Details {
	return &Details{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(p.OwnerID),
		ProjectID:          p.ID,
		Deliverables:       make([]ChecklistItem, 0),
		ClientInfo:         ClientInfo{CommunicationLog: make([]CommunicationEntry, 0)},
	}
}

// DetailsUpdate carries the optional fields of a details update
type DetailsUpdate struct {
	Requirements *string
	Scope        *string
	Deliverables *[]ChecklistItem
	ClientInfo   *ClientInfo
}

// Apply replaces the provided fields
func (d *Details) Apply(u DetailsUpdate, now time.Time) error {
	if u.ClientInfo != nil {
		info := *u.ClientInfo
		log := make([]CommunicationEntry, 0, len(info.CommunicationLog))
		for _, e := range info.CommunicationLog {
			switch e.Type {
			case "":
				e.Type = CommunicationOther
			case CommunicationEmail, CommunicationCall, CommunicationMeeting, CommunicationOther:
			default:
				return shared.NewDomainError("INVALID_COMMUNICATION_TYPE", "Communication type must be one of email, call, meeting, other")
			}
			if e.Date.IsZero() {
				e.Date = now
			}
			log = append(log, e)
		}
		info.CommunicationLog = log
		d.ClientInfo = info
	}
	if u.Requirements != nil {
		d.Requirements = *u.Requirements
	}
	if u.Scope != nil {
		d.Scope = *u.Scope
	}
	if u.Deliverables != nil {
		d.Deliverables = append([]ChecklistItem(nil), (*u.Deliverables)...)
	}
	d.Touch()
	d.IncrementVersion()
	return nil
}
