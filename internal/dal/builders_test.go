package dal

import "time"

// SubscriptionBuilder provides fluent API for building test subscriptions
type SubscriptionBuilder struct {
	sub Subscription
}

// NewSubscription creates a new offline subscription builder
func NewSubscription(username string, chatID int64) *SubscriptionBuilder {
	return &SubscriptionBuilder{
		sub: Subscription{
			Username:  username,
			ChatID:    chatID,
			CreatedAt: time.Now(),
		},
	}
}

func (b *SubscriptionBuilder) Online() *SubscriptionBuilder {
	b.sub.Online = true
	return b
}

// WithCreatedAt sets the creation time
func (b *SubscriptionBuilder) WithCreatedAt(t time.Time) *SubscriptionBuilder {
	b.sub.CreatedAt = t
	return b
}

func (b *SubscriptionBuilder) WithChangedAt(t time.Time) *SubscriptionBuilder {
	b.sub.ChangedAt = t
	return b
}

// Build returns the constructed subscription
func (b *SubscriptionBuilder) Build() Subscription {
	return b.sub
}
