package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/freelancehub/backend/internal/domain/profile"
	"github.com/freelancehub/backend/internal/domain/project"
	"github.com/freelancehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const activityLimit = 5

// Service implements profile reads, edits and the derived profile charts
type Service struct {
	profiles profile.ProfileRepository
	projects project.ProjectRepository
}

// NewService creates a profile Service
func NewService(profiles profile.ProfileRepository, projects project.ProjectRepository) *Service {
	return &Service{profiles: profiles, projects: projects}
}

func (s *Service) load(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Profile")
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

// authorize allows a user to edit only their own profile
func authorize(actorID, userID uuid.UUID) error {
	if actorID != userID {
		return shared.ErrForbidden
	}
	return nil
}

// GetProfile returns the profile of userID
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// UpdateProfile replaces the body of the acting user's profile, creating
// the profile on first write
func (s *Service) UpdateProfile(ctx context.Context, actorID, userID uuid.UUID, req UpdateProfileRequest) (*ProfileResponse, error) {
	if err := authorize(actorID, userID); err != nil {
		return nil, err
	}
	p, err := s.profiles.FindByUserID(ctx, userID)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		p = profile.NewProfile(userID)
	case err != nil:
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if err := p.Replace(req.toDomain()); err != nil {
		return nil, err
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return toProfileResponse(p), nil
}

func (s *Service) edit(ctx context.Context, actorID, userID uuid.UUID, fn func(*profile.Profile) error) (*ProfileResponse, error) {
	if err := authorize(actorID, userID); err != nil {
		return nil, err
	}
	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return toProfileResponse(p), nil
}

// AddExperience appends an experience entry with a new id
func (s *Service) AddExperience(ctx context.Context, actorID, userID uuid.UUID, req ExperienceRequest) (*ProfileResponse, error) {
	return s.edit(ctx, actorID, userID, func(p *profile.Profile) error {
		p.AddExperience(req.toDomain())
		return nil
	})
}

// UpdateExperience replaces one experience entry
func (s *Service) UpdateExperience(ctx context.Context, actorID, userID, expID uuid.UUID, req ExperienceRequest) (*ProfileResponse, error) {
	return s.edit(ctx, actorID, userID, func(p *profile.Profile) error {
		return p.UpdateExperience(expID, req.toDomain())
	})
}

// DeleteExperience removes one experience entry
func (s *Service) DeleteExperience(ctx context.Context, actorID, userID, expID uuid.UUID) (*ProfileResponse, error) {
	return s.edit(ctx, actorID, userID, func(p *profile.Profile) error {
		return p.RemoveExperience(expID)
	})
}

// AddEducation appends an education entry with a new id
func (s *Service) AddEducation(ctx context.Context, actorID, userID uuid.UUID, req EducationRequest) (*ProfileResponse, error) {
	return s.edit(ctx, actorID, userID, func(p *profile.Profile) error {
		p.AddEducation(req.toDomain())
		return nil
	})
}

// UpdateEducation replaces one education entry
func (s *Service) UpdateEducation(ctx context.Context, actorID, userID, eduID uuid.UUID, req EducationRequest) (*ProfileResponse, error) {
	return s.edit(ctx, actorID, userID, func(p *profile.Profile) error {
		return p.UpdateEducation(eduID, req.toDomain())
	})
}

// DeleteEducation removes one education entry
func (s *Service) DeleteEducation(ctx context.Context, actorID, userID, eduID uuid.UUID) (*ProfileResponse, error) {
	return s.edit(ctx, actorID, userID, func(p *profile.Profile) error {
		return p.RemoveEducation(eduID)
	})
}

// SkillsChart returns the skill radar of userID. A user without a profile
// has no skills.
func (s *Service) SkillsChart(ctx context.Context, userID uuid.UUID) ([]profile.SkillPoint, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if errors.Is(err, shared.ErrNotFound) {
		return []profile.SkillPoint{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return profile.SkillsChart(p.Skills), nil
}

// Activity lists the most recently updated projects of userID
func (s *Service) Activity(ctx context.Context, userID uuid.UUID) ([]profile.Activity, error) {
	projects, err := s.projects.FindRecentlyUpdated(ctx, userID, activityLimit)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return profile.ActivityFeed(projects, activityLimit), nil
}

// Earnings charts completed-project profit per month
func (s *Service) Earnings(ctx context.Context, userID uuid.UUID) (profile.EarningsChart, error) {
	projects, err := s.projects.FindByOwner(ctx, userID)
	if err != nil {
		return profile.EarningsChart{}, fmt.Errorf("load projects: %w", err)
	}
	return profile.Earnings(projects), nil
}
