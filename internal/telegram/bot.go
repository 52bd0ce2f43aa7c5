package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tb "gopkg.in/telebot.v3"
	"gopkg.in/telebot.v3/middleware"

	"github.com/Roma7-7-7/room-notifier/internal/service"
)

type Bot struct {
	bot *tb.Bot

	allowed []int64

	log *slog.Logger
}

// NewBot creates the bot. When allowedChatIDs is not empty, updates from other chats are ignored.
// The bot can send messages right away, updates are handled once Start is called.
func NewBot(token string, allowedChatIDs []int64, log *slog.Logger) (*Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 5 * time.Second}, //nolint:mnd // it's ok
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Bot{
		bot: bot,

		allowed: allowedChatIDs,

		log: log.With("component", "bot"),
	}, nil
}

// Send makes the bot usable as a RichClient
func (b *Bot) Send(to tb.Recipient, what interface{}, opts ...interface{}) (*tb.Message, error) {
	return b.bot.Send(to, what, opts...)
}

func (b *Bot) Start(ctx context.Context, handler *Handler, purge *PurgeOnBlockedMiddleware) error {
	if len(b.allowed) > 0 {
		b.log.Info("Restricting bot to allowed chats", "chats", len(b.allowed))
		b.bot.Use(middleware.Whitelist(b.allowed...))
	}
	b.bot.Use(purge.Handle)

	b.bot.Handle("/start", handler.Start)
	b.bot.Handle("/help", handler.Start)
	b.bot.Handle("/add", handler.Add)
	b.bot.Handle("/remove", handler.Remove)
	b.bot.Handle("/list", handler.List)
	b.bot.Handle("/stream_image", handler.StreamImage)
	b.bot.Handle("/settings", handler.Settings)
	b.bot.Handle("/authorize_admin", handler.AuthorizeAdmin)
	b.bot.Handle("/send_message_to_everyone", handler.SendMessageToEveryone)

	b.bot.Handle(&tb.Btn{Unique: service.StreamImageUnique}, handler.StreamImageCallback)
	b.bot.Handle(&tb.Btn{Unique: linkPreviewUnique}, handler.ToggleLinkPreview)
	b.bot.Handle(&tb.Btn{Unique: notificationsSoundUnique}, handler.ToggleNotificationsSound)

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.bot.Start()

	return nil
}
