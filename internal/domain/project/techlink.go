package project

import (
	"net/url"
	"strings"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TechLink points at an external resource of a project (repo, deploy, ...)
type TechLink struct {
	shared.OwnedAggregateRoot
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Platform    string    `gorm:"type:varchar(100);not null"`
	URL         string    `gorm:"column:url;type:varchar(2048);not null"`
	Description string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (TechLink) TableName() string {
	return "project_tech_links"
}

// NewTechLink creates a tech link on project p
func NewTechLink(p *Project, platform, rawURL, description string) (*TechLink, error) {
	l := &TechLink{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(p.OwnerID),
		ProjectID:          p.ID,
		Description:        strings.TrimSpace(description),
	}
	if err := l.setPlatform(platform); err != nil {
		return nil, err
	}
	if err := l.setURL(rawURL); err != nil {
		return nil, err
	}
	return l, nil
}

// Apply applies a partial update
func (l *TechLink) Apply(platform, rawURL, description *string) error {
	if platform != nil {
		if err := l.setPlatform(*platform); err != nil {
			return err
		}
	}
	if rawURL != nil {
		if err := l.setURL(*rawURL); err != nil {
			return err
		}
	}
	if description != nil {
		l.Description = strings.TrimSpace(*description)
	}
	l.Touch()
	l.IncrementVersion()
	return nil
}

func (l *TechLink) setPlatform(platform string) error {
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return shared.NewDomainError("INVALID_PLATFORM", "Platform is required")
	}
	l.Platform = platform
	return nil
}

func (l *TechLink) setURL(raw string) error {
	raw = strings.TrimSpace(raw)
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return shared.NewDomainError("INVALID_URL", "URL must be an absolute http(s) URL")
	}
	l.URL = raw
	return nil
}
