package testutil

import (
	"time"

	"github.com/Roma7-7-7/room-notifier/internal/dal"
)

// SubscriptionBuilder provides fluent API for building test subscriptions
type SubscriptionBuilder struct {
	sub dal.Subscription
}

// NewSubscription creates a new offline subscription builder
func NewSubscription(username string, chatID int64) *SubscriptionBuilder {
	return &SubscriptionBuilder{
		sub: dal.Subscription{
			Username:  username,
			ChatID:    chatID,
			CreatedAt: time.Now(),
		},
	}
}

// Online marks the subscription as announced online
func (b *SubscriptionBuilder) Online() *SubscriptionBuilder {
	b.sub.Online = true
	return b
}

func (b *SubscriptionBuilder) WithCreatedAt(t time.Time) *SubscriptionBuilder {
	b.sub.CreatedAt = t
	return b
}

func (b *SubscriptionBuilder) WithChangedAt(t time.Time) *SubscriptionBuilder {
	b.sub.ChangedAt = t
	return b
}

// Build returns the constructed subscription
func (b *SubscriptionBuilder) Build() dal.Subscription {
	return b.sub
}

// PreferencesBuilder starts from dal.DefaultPreferences
type PreferencesBuilder struct {
	prefs dal.Preferences
}

func NewPreferences(chatID int64) *PreferencesBuilder {
	return &PreferencesBuilder{prefs: dal.DefaultPreferences(chatID)}
}

func (b *PreferencesBuilder) WithoutLinkPreview() *PreferencesBuilder {
	b.prefs.LinkPreview = false
	return b
}

func (b *PreferencesBuilder) Muted() *PreferencesBuilder {
	b.prefs.NotificationsSound = false
	return b
}

func (b *PreferencesBuilder) Build() dal.Preferences {
	return b.prefs
}
