package persistence

import (
	"context"

	"github.com/freelancehub/backend/internal/domain/profile"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProfileRepository implements profile.ProfileRepository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByUserID loads the profile whose id is the user id
func (r *GormProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	var p profile.Profile
	if err := r.db.WithContext(ctx).First(&p, "id = ?", userID).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// Save creates or replaces a profile
func (r *GormProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

var _ profile.ProfileRepository = (*GormProfileRepository)(nil)
