package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"prepmate/internal/models"
)

// Store is the persistence surface for the single user profile.
type Store interface {
	SaveUserProfile(ctx context.Context, profile *models.UserProfile) error
	GetUserProfile(ctx context.Context) (*models.UserProfile, error)
	ClearUserProfile(ctx context.Context) error
}

// Service manages the user profile. One profile per installation; the
// pipeline has no account system behind it.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// GetOrCreate returns the stored profile, creating a free-tier one when
// none exists. A stored profile wins even when the email differs; the
// profile is keyed per installation, not per address.
func (s *Service) GetOrCreate(ctx context.Context, email string) (*models.UserProfile, error) {
	existing, err := s.store.GetUserProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	profile := &models.UserProfile{
		ID:                  "user-" + uuid.New().String(),
		Email:               email,
		SubscriptionTier:    models.TierFree,
		InterviewsUsed:      0,
		InterviewsRemaining: 1,
		CreatedAt:           time.Now().UTC(),
	}
	if err := s.store.SaveUserProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save new profile: %w", err)
	}
	return profile, nil
}

// Save overwrites the stored profile.
func (s *Service) Save(ctx context.Context, profile *models.UserProfile) error {
	if !models.ValidSubscriptionTiers[profile.SubscriptionTier] {
		return fmt.Errorf("unknown subscription tier: %s", profile.SubscriptionTier)
	}
	return s.store.SaveUserProfile(ctx, profile)
}

// Clear removes the stored profile.
func (s *Service) Clear(ctx context.Context) error {
	return s.store.ClearUserProfile(ctx)
}
