package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VidTubeHQ/vidtube_backend/internal/apperrors"
	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
	portsrepo "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/VidTubeHQ/vidtube_backend/internal/core/ports/services"
)

// SubscriptionService implements subscribe/unsubscribe between users.
type SubscriptionService struct {
	BaseService
	subRepo  portsrepo.SubscriptionRepositoryFacade
	userRepo portsrepo.UserReader
}

func NewSubscriptionService(subRepo portsrepo.SubscriptionRepositoryFacade, userRepo portsrepo.UserReader) portssvc.SubscriptionSvcFacade {
	return &SubscriptionService{subRepo: subRepo, userRepo: userRepo}
}

var _ portssvc.SubscriptionSvcFacade = (*SubscriptionService)(nil)

func (s *SubscriptionService) Subscribe(ctx context.Context, subscriberID, channelID string) (*domain.Subscription, error) {
	if subscriberID == channelID {
		return nil, fmt.Errorf("cannot subscribe to your own channel: %w", apperrors.ErrValidation)
	}

	// The channel must be a real user.
	if _, err := s.userRepo.FindUserByID(ctx, channelID); err != nil {
		return nil, fmt.Errorf("failed to find channel: %w", err)
	}

	sub := domain.Subscription{
		SubscriptionID: uuid.NewString(),
		SubscriberID:   subscriberID,
		ChannelID:      channelID,
		CreatedAt:      time.Now(),
	}

	if err := s.subRepo.SaveSubscription(ctx, sub); err != nil {
		s.LogError(ctx, err, "failed to save subscription", "channel_id", channelID)
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	return &sub, nil
}

func (s *SubscriptionService) Unsubscribe(ctx context.Context, subscriberID, channelID string) error {
	if err := s.subRepo.DeleteSubscription(ctx, subscriberID, channelID); err != nil {
		if errorsIsNotFound(err) {
			return err
		}
		s.LogError(ctx, err, "failed to delete subscription", "channel_id", channelID)
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return nil
}
