package profile

import (
	"strings"
	"time"

	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Availability of the freelancer
type Availability string

const (
	AvailabilityAvailable    Availability = "Available"
	AvailabilityBusy         Availability = "Busy"
	AvailabilityNotAvailable Availability = "Not Available"
)

// Skill levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
	LevelNative       = "Native"
)

// Language spoken by the freelancer
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// Skill with a self-assessed level
type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// SocialLinks are public profile URLs
type SocialLinks struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// Education entry
type Education struct {
	ID          uuid.UUID `json:"id"`
	Degree      string    `json:"degree"`
	Institution string    `json:"institution"`
	Year        string    `json:"year"`
	Field       string    `json:"field"`
}

// Certification entry
type Certification struct {
	Name         string     `json:"name"`
	Organization string     `json:"organization"`
	Date         *time.Time `json:"date,omitempty"`
	Link         string     `json:"link"`
}

// Experience entry
type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description"`
}

// Profile is the CV-like public data of a user. Its ID is the user id.
type Profile struct {
	shared.BaseAggregateRoot
	Email          string          `gorm:"type:varchar(255)"`
	Username       string          `gorm:"type:varchar(100)"`
	Title          string          `gorm:"type:varchar(200)"`
	Bio            string          `gorm:"type:text"`
	Location       string          `gorm:"type:varchar(200)"`
	Availability   Availability    `gorm:"type:varchar(20);not null;default:'Available'"`
	Phone          string          `gorm:"type:varchar(50)"`
	DateOfBirth    *time.Time      `gorm:"column:dob"`
	Languages      []Language      `gorm:"type:jsonb;serializer:json"`
	HourlyRate     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Portfolio      string          `gorm:"type:varchar(2048)"`
	SocialLinks    SocialLinks     `gorm:"type:jsonb;serializer:json"`
	Skills         []Skill         `gorm:"type:jsonb;serializer:json"`
	Education      []Education     `gorm:"type:jsonb;serializer:json"`
	Certifications []Certification `gorm:"type:jsonb;serializer:json"`
	Experience     []Experience    `gorm:"type:jsonb;serializer:json"`
	Avatar         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}

// NewProfile creates an empty profile for userID
func NewProfile(userID uuid.UUID) *Profile {
	root := shared.NewBaseAggregateRoot()
	root.ID = userID
	return &Profile{
		BaseAggregateRoot: root,
		Availability:      AvailabilityAvailable,
		HourlyRate:        decimal.Zero,
		Languages:         make([]Language, 0),
		Skills:            make([]Skill, 0),
		Education:         make([]Education, 0),
		Certifications:    make([]Certification, 0),
		Experience:        make([]Experience, 0),
	}
}

// Body is the replaceable content of a profile
type Body struct {
	Email          string
	Username       string
	Title          string
	Bio            string
	Location       string
	Availability   Availability
	Phone          string
	DateOfBirth    *time.Time
	Languages      []Language
	HourlyRate     decimal.Decimal
	Portfolio      string
	SocialLinks    SocialLinks
	Skills         []Skill
	Education      []Education
	Certifications []Certification
	Experience     []Experience
	Avatar         string
}

// Replace overwrites the profile content. Experience and education entries
// keep their ids when supplied and get fresh ones otherwise.
func (p *Profile) Replace(b Body) error {
	switch b.Availability {
	case "":
		b.Availability = AvailabilityAvailable
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityNotAvailable:
	default:
		return shared.NewDomainError("INVALID_AVAILABILITY", "Availability must be one of Available, Busy, Not Available")
	}
	if b.HourlyRate.IsNegative() {
		return shared.NewDomainError("INVALID_HOURLY_RATE", "Hourly rate cannot be negative")
	}

	p.Email = strings.TrimSpace(b.Email)
	p.Username = strings.TrimSpace(b.Username)
	p.Title = b.Title
	p.Bio = b.Bio
	p.Location = b.Location
	p.Availability = b.Availability
	p.Phone = b.Phone
	p.DateOfBirth = b.DateOfBirth
	p.Languages = nonNil(b.Languages)
	p.HourlyRate = b.HourlyRate
	p.Portfolio = b.Portfolio
	p.SocialLinks = b.SocialLinks
	p.Skills = nonNil(b.Skills)
	p.Certifications = nonNil(b.Certifications)
	p.Avatar = b.Avatar

	p.Education = make([]Education, 0, len(b.Education))
	for _, e := range b.Education {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		p.Education = append(p.Education, e)
	}
	p.Experience = make([]Experience, 0, len(b.Experience))
	for _, e := range b.Experience {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		p.Experience = append(p.Experience, e)
	}

	p.Touch()
	p.IncrementVersion()
	return nil
}

// AddExperience appends an experience entry and returns it with its id
func (p *Profile) AddExperience(e Experience) Experience {
	e.ID = uuid.New()
	p.Experience = append(append([]Experience(nil), p.Experience...), e)
	p.Touch()
	p.IncrementVersion()
	return e
}

// UpdateExperience replaces the entry with the given id
func (p *Profile) UpdateExperience(id uuid.UUID, e Experience) error {
	for i := range p.Experience {
		if p.Experience[i].ID == id {
			e.ID = id
			p.Experience[i] = e
			p.Touch()
			p.IncrementVersion()
			return nil
		}
	}
	return shared.NewNotFoundError("Experience")
}

// RemoveExperience deletes the entry with the given id
func (p *Profile) RemoveExperience(id uuid.UUID) error {
	for i := range p.Experience {
		if p.Experience[i].ID == id {
			p.Experience = append(append([]Experience(nil), p.Experience[:i]...), p.Experience[i+1:]...)
			p.Touch()
			p.IncrementVersion()
			return nil
		}
	}
	return shared.NewNotFoundError("Experience")
}

// AddEducation appends an education entry and returns it with its id
func (p *Profile) AddEducation(e Education) Education {
	e.ID = uuid.New()
	p.Education = append(append([]Education(nil), p.Education...), e)
	p.Touch()
	p.IncrementVersion()
	return e
}

// UpdateEducation replaces the entry with the given id
func (p *Profile) UpdateEducation(id uuid.UUID, e Education) error {
	for i := range p.Education {
		if p.Education[i].ID == id {
			e.ID = id
			p.Education[i] = e
			p.Touch()
			p.IncrementVersion()
			return nil
		}
	}
	return shared.NewNotFoundError("Education")
}

// RemoveEducation deletes the entry with the given id
func (p *Profile) RemoveEducation(id uuid.UUID) error {
	for i := range p.Education {
		if p.Education[i].ID == id {
			p.Education = append(append([]Education(nil), p.Education[:i]...), p.Education[i+1:]...)
			p.Touch()
			p.IncrementVersion()
			return nil
		}
	}
	return shared.NewNotFoundError("Education")
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return make([]T, 0)
	}
	return in
}
