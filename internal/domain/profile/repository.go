package profile

import (
	"context"

	"github.com/google/uuid"
)

// ProfileRepository defines persistence for profiles
type ProfileRepository interface {
	// FindByUserID returns shared.ErrNotFound when the user has no profile
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Save(ctx context.Context, profile *Profile) error
}
