package services

import (
	"context"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// SubscriptionSvcFacade defines subscribe/unsubscribe operations.
type SubscriptionSvcFacade interface {
	// Subscribe adds a subscriber→channel edge. Re-subscribing is a no-op;
	// subscribing to your own channel is a validation error.
	Subscribe(ctx context.Context, subscriberID, channelID string) (*domain.Subscription, error)

	// Unsubscribe removes the edge.
	Unsubscribe(ctx context.Context, subscriberID, channelID string) error
}
