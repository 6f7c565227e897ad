package project

import (
	"strings"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Note is a free-text project note
type Note struct {
	shared.OwnedAggregateRoot
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (Note) TableName() string {
	return "project_notes"
}

// NewNote creates a note on project p
func NewNote(p *Project, content string) (*Note, error) {
	n := &Note{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(p.OwnerID),
		ProjectID:          p.ID,
	}
	if err := n.SetContent(content); err != nil {
		return nil, err
	}
	return n, nil
}

// SetContent replaces the note body
func (n *Note) SetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return shared.NewDomainError("INVALID_CONTENT", "Note content is required")
	}
	n.Content = content
	n.Touch()
	return nil
}
