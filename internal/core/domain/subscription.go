package domain

import "time"

// Subscription is a directed edge meaning "subscriber follows channel".
// (subscriber, channel) is unique.
type Subscription struct {
	SubscriptionID string    `json:"subscriptionID"` // Primary Key (UUID)
	SubscriberID   string    `json:"subscriberID"`   // User reference
	ChannelID      string    `json:"channelID"`      // User reference
	CreatedAt      time.Time `json:"createdAt"`
}
