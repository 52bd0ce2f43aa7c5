package telegram

import (
	"log/slog"

	tb "gopkg.in/telebot.v3"
)

type Purger interface {
	Purge(chatID int64) error
}

// PurgeOnBlockedMiddleware drops everything stored for a chat once a reply to it fails because the bot was blocked
type PurgeOnBlockedMiddleware struct {
	purger Purger

	log *slog.Logger
}

func NewPurgeOnBlockedMiddleware(purger Purger, log *slog.Logger) *PurgeOnBlockedMiddleware {
	return &PurgeOnBlockedMiddleware{
		purger: purger,
		log:    log.With("component", "middleware"),
	}
}

func (m *PurgeOnBlockedMiddleware) Handle(next tb.HandlerFunc) tb.HandlerFunc {
	return func(c tb.Context) error {
		rootErr := next(c)
		if !isBlocked(rootErr) {
			return rootErr
		}

		m.log.Warn("Bot is blocked. Purging chat")
		if c.Chat() == nil && c.Sender() == nil {
			m.log.Warn("Chat is not present in telegram context")
			return rootErr
		}
		chatID := chatIDOf(c)
		if err := m.purger.Purge(chatID); err != nil {
			m.log.Error("Purge failed", "chatID", chatID, "error", err)
		}
		return rootErr
	}
}
