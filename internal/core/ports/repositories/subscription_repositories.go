package repositories

import (
	"context"

	"github.com/VidTubeHQ/vidtube_backend/internal/core/domain"
)

// SubscriptionRepositoryFacade defines persistence operations for
// subscription edges.
type SubscriptionRepositoryFacade interface {
	// SaveSubscription upserts a subscriber→channel edge. The pair is
	// unique; re-subscribing is a no-op.
	SaveSubscription(ctx context.Context, sub domain.Subscription) error

	// DeleteSubscription removes the edge. Returns apperrors.ErrNotFound
	// when no such edge exists.
	DeleteSubscription(ctx context.Context, subscriberID, channelID string) error
}
