package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Trkcnl/twacktwack/internal/logger"
	"github.com/Trkcnl/twacktwack/internal/models"
	"github.com/Trkcnl/twacktwack/internal/validation"
)

// ProfileReader defines read operations for profiles.
type ProfileReader interface {
	GetOwned(ctx context.Context, userID uuid.UUID, id int64) (*models.UserProfileDB, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfileDB, error)
	List(ctx context.Context) ([]models.UserProfileDB, error)
}

// ProfileWriter defines write operations for profiles.
type ProfileWriter interface {
	Insert(ctx context.Context, userID uuid.UUID, name string, birthdate time.Time, heightCm float64, bio string) (int64, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, name string, birthdate time.Time, heightCm float64, bio string) (bool, error)
}

// ProfileService manages user profiles.
type ProfileService struct {
	reader ProfileReader
	writer ProfileWriter
	now    func() time.Time
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader ProfileReader, writer ProfileWriter) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
		now:    time.Now,
	}
}

// Get returns the profile when it is owned by the caller, ErrNotFound
// otherwise.
func (svc *ProfileService) Get(ctx context.Context, callerID uuid.UUID, id int64) (*models.UserProfileDB, error) {
	profile, err := svc.reader.GetOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

// List returns all profiles. The handler restricts this to the elevated tier.
func (svc *ProfileService) List(ctx context.Context) ([]models.UserProfileDB, error) {
	return svc.reader.List(ctx)
}

// Create creates the caller's profile. A user has at most one.
func (svc *ProfileService) Create(ctx context.Context, callerID uuid.UUID, name string, birthdate time.Time, heightCm float64, bio string) (*models.UserProfileDB, error) {
	if err := models.ValidateProfile(name, birthdate, heightCm, svc.now()); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		errs := validation.New()
		errs.Add(validation.NonFieldErrors, "Profile already exists.")
		return nil, errs.Err()
	}

	id, err := svc.writer.Insert(ctx, callerID, name, birthdate, heightCm, bio)
	if err != nil {
		logger.Log.Errorw("failed to insert profile", "err", err)
		return nil, err
	}

	return svc.Get(ctx, callerID, id)
}

// Update rewrites the caller's profile and returns the stored state.
func (svc *ProfileService) Update(ctx context.Context, callerID uuid.UUID, id int64, name string, birthdate time.Time, heightCm float64, bio string) (*models.UserProfileDB, error) {
	if err := models.ValidateProfile(name, birthdate, heightCm, svc.now()); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, callerID, id, name, birthdate, heightCm, bio)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "err", err)
		return nil, err
	}
	if !updated {
		return nil, ErrNotFound
	}

	return svc.Get(ctx, callerID, id)
}
