package kanban

import (
	"strings"
	"time"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Priority of a card
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is a known priority
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Attachment is a file reference on a card
type Attachment struct {
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Comment is a note left on a card
type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Card is a task owned by exactly one column at a time
type Card struct {
	shared.OwnedAggregateRoot
	BoardID     uuid.UUID    `gorm:"type:uuid;not null;index"`
	ColumnID    uuid.UUID    `gorm:"type:uuid;not null;index"`
	Title       string       `gorm:"type:varchar(300);not null"`
	Description string       `gorm:"type:text"`
	Priority    Priority     `gorm:"type:varchar(10);not null;default:'medium'"`
	DueDate     *time.Time   `gorm:"index"`
	Assignee    *uuid.UUID   `gorm:"type:uuid"`
	Tags        []string     `gorm:"type:jsonb;serializer:json"`
	Attachments []Attachment `gorm:"type:jsonb;serializer:json"`
	Comments    []Comment    `gorm:"type:jsonb;serializer:json"`

	// Order is the card's index in its column's CardIDs, filled on read
	Order int `gorm:"-"`
}

// TableName returns the table name for GORM
func (Card) TableName() string {
	return "kanban_cards"
}

// NewCard creates a card in the given column. The caller appends its id
// to the column.
func NewCard(column *Column, title string) (*Card, error) {
	title = strings.TrimSpace(title)
	if err := validateCardTitle(title); err != nil {
		return nil, err
	}

	return &Card{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(column.OwnerID),
		BoardID:            column.BoardID,
		ColumnID:           column.ID,
		Title:              title,
		Priority:           PriorityMedium,
		Tags:               make([]string, 0),
		Attachments:        make([]Attachment, 0),
		Comments:           make([]Comment, 0),
		Order:              column.Len(),
	}, nil
}

// CardUpdate carries the optional fields of a card update
type CardUpdate struct {
	Title         *string
	Description   *string
	Priority      *Priority
	DueDate       *time.Time
	ClearDueDate  bool
	Assignee      *uuid.UUID
	ClearAssignee bool
	Tags          *[]string
}

// Update applies a partial update
func (c *Card) Update(u CardUpdate) error {
	if u.Title != nil {
		t := strings.TrimSpace(*u.Title)
		if err := validateCardTitle(t); err != nil {
			return err
		}
		c.Title = t
	}
	if u.Description != nil {
		c.Description = strings.TrimSpace(*u.Description)
	}
	if u.Priority != nil {
		if err := c.SetPriority(*u.Priority); err != nil {
			return err
		}
	}
	if u.ClearDueDate {
		c.DueDate = nil
	} else if u.DueDate != nil {
		c.SetDueDate(u.DueDate)
	}
	if u.ClearAssignee {
		c.Assignee = nil
	} else if u.Assignee != nil {
		c.SetAssignee(u.Assignee)
	}
	if u.Tags != nil {
		c.SetTags(*u.Tags)
	}
	c.Touch()
	c.IncrementVersion()
	return nil
}

// SetPriority sets the priority; empty means medium
func (c *Card) SetPriority(p Priority) error {
	if p == "" {
		p = PriorityMedium
	}
	if !p.IsValid() {
		return shared.NewDomainError("INVALID_PRIORITY", "Priority must be one of low, medium, high")
	}
	c.Priority = p
	return nil
}

// SetDueDate sets or clears the due date
func (c *Card) SetDueDate(due *time.Time) {
	if due == nil {
		c.DueDate = nil
		return
	}
	d := *due
	c.DueDate = &d
}

// SetAssignee sets or clears the assignee
func (c *Card) SetAssignee(userID *uuid.UUID) {
	if userID == nil || *userID == uuid.Nil {
		c.Assignee = nil
		return
	}
	id := *userID
	c.Assignee = &id
}

// SetTags replaces the tag set. Tags are trimmed, blanks and duplicates dropped.
func (c *Card) SetTags(tags []string) {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	c.Tags = out
}

// AddComment appends a comment authored by userID
func (c *Card) AddComment(userID uuid.UUID, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, shared.NewValidationError("Comment text is required")
	}
	comment := Comment{
		ID:        uuid.New(),
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	c.Comments = append(append([]Comment(nil), c.Comments...), comment)
	c.Touch()
	c.IncrementVersion()
	return &comment, nil
}

// HasAnyTag reports whether the card carries at least one of tags
func (c *Card) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range c.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

func validateCardTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Card title cannot be empty")
	}
	if len(title) > 300 {
		return shared.NewDomainError("INVALID_TITLE", "Card title cannot exceed 300 characters")
	}
	return nil
}
