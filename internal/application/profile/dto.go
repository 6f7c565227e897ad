package profile

import (
	"time"

	"github.com/freelancehub/backend/internal/domain/profile"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpdateProfileRequest is the body of PUT /profile/:id. It replaces the
// whole profile body.
type UpdateProfileRequest struct {
	Email          string                  `json:"email" binding:"omitempty,email"`
	Username       string                  `json:"username" binding:"max=100"`
	Title          string                  `json:"title" binding:"max=200"`
	Bio            string                  `json:"bio"`
	Location       string                  `json:"location" binding:"max=200"`
	Availability   string                  `json:"availability"`
	Phone          string                  `json:"phone" binding:"max=50"`
	DateOfBirth    *time.Time              `json:"dob"`
	Languages      []profile.Language      `json:"languages"`
	HourlyRate     decimal.Decimal         `json:"hourlyRate"`
	Portfolio      string                  `json:"portfolio"`
	SocialLinks    profile.SocialLinks     `json:"socialLinks"`
	Skills         []profile.Skill         `json:"skills"`
	Education      []profile.Education     `json:"education"`
	Certifications []profile.Certification `json:"certifications"`
	Experience     []profile.Experience    `json:"experience"`
	Avatar         string                  `json:"avatar"`
}

func (r UpdateProfileRequest) toDomain() profile.Body {
	return profile.Body{
		Email:          r.Email,
		Username:       r.Username,
		Title:          r.Title,
		Bio:            r.Bio,
		Location:       r.Location,
		Availability:   profile.Availability(r.Availability),
		Phone:          r.Phone,
		DateOfBirth:    r.DateOfBirth,
		Languages:      r.Languages,
		HourlyRate:     r.HourlyRate,
		Portfolio:      r.Portfolio,
		SocialLinks:    r.SocialLinks,
		Skills:         r.Skills,
		Education:      r.Education,
		Certifications: r.Certifications,
		Experience:     r.Experience,
		Avatar:         r.Avatar,
	}
}

// ExperienceRequest is the body of the experience endpoints
type ExperienceRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Company     string     `json:"company" binding:"max=200"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description"`
}

func (r ExperienceRequest) toDomain() profile.Experience {
	return profile.Experience{
		Title:       r.Title,
		Company:     r.Company,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Description: r.Description,
	}
}

// EducationRequest is the body of the education endpoints
type EducationRequest struct {
	Degree      string `json:"degree" binding:"required,max=200"`
	Institution string `json:"institution" binding:"max=200"`
	Year        string `json:"year" binding:"max=20"`
	Field       string `json:"field" binding:"max=200"`
}

func (r EducationRequest) toDomain() profile.Education {
	return profile.Education{
		Degree:      r.Degree,
		Institution: r.Institution,
		Year:        r.Year,
		Field:       r.Field,
	}
}

// ProfileResponse is the API view of a profile
type ProfileResponse struct {
	ID             uuid.UUID               `json:"id"`
	Email          string                  `json:"email"`
	Username       string                  `json:"username"`
	Title          string                  `json:"title"`
	Bio            string                  `json:"bio"`
	Location       string                  `json:"location"`
	Availability   profile.Availability    `json:"availability"`
	Phone          string                  `json:"phone"`
	DateOfBirth    *time.Time              `json:"dob"`
	Languages      []profile.Language      `json:"languages"`
	HourlyRate     decimal.Decimal         `json:"hourlyRate"`
	Portfolio      string                  `json:"portfolio"`
	SocialLinks    profile.SocialLinks     `json:"socialLinks"`
	Skills         []profile.Skill         `json:"skills"`
	Education      []profile.Education     `json:"education"`
	Certifications []profile.Certification `json:"certifications"`
	Experience     []profile.Experience    `json:"experience"`
	Avatar         string                  `json:"avatar"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

func toProfileResponse(p *profile.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:             p.ID,
		Email:          p.Email,
		Username:       p.Username,
		Title:          p.Title,
		Bio:            p.Bio,
		Location:       p.Location,
		Availability:   p.Availability,
		Phone:          p.Phone,
		DateOfBirth:    p.DateOfBirth,
		Languages:      orEmpty(p.Languages),
		HourlyRate:     p.HourlyRate,
		Portfolio:      p.Portfolio,
		SocialLinks:    p.SocialLinks,
		Skills:         orEmpty(p.Skills),
		Education:      orEmpty(p.Education),
		Certifications: orEmpty(p.Certifications),
		Experience:     orEmpty(p.Experience),
		Avatar:         p.Avatar,
		UpdatedAt:      p.UpdatedAt,
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
