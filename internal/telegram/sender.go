package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	tc "github.com/Roma7-7-7/telegram"
	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/room-notifier/internal/service"
)

type (
	// TextClient sends plain text messages, tc.Client satisfies it
	TextClient interface {
		SendMessage(ctx context.Context, chatID, msg string) error
	}

	// RichClient sends anything telebot can send, *tb.Bot satisfies it
	RichClient interface {
		Send(to tb.Recipient, what interface{}, opts ...interface{}) (*tb.Message, error)
	}

	Sender struct {
		text TextClient
		rich RichClient

		log *slog.Logger
	}
)

func NewSender(text TextClient, rich RichClient, log *slog.Logger) *Sender {
	return &Sender{
		text: text,
		rich: rich,
		log:  log.With("component", "sender"),
	}
}

func (s *Sender) Send(ctx context.Context, n service.Notification) error {
	if !n.Rich() {
		if err := s.text.SendMessage(ctx, strconv.FormatInt(n.ChatID, 10), n.Text); err != nil {
			return wrapSendError(err)
		}
		return nil
	}

	opts := &tb.SendOptions{
		ReplyMarkup:         replyMarkup(n.Buttons),
		DisableNotification: n.Silent,
	}
	if n.HTML {
		opts.ParseMode = tb.ModeHTML
	}

	var what interface{} = n.Text
	if len(n.Image) > 0 {
		what = &tb.Photo{File: tb.FromReader(bytes.NewReader(n.Image)), Caption: n.Text}
	}

	if _, err := s.rich.Send(tb.ChatID(n.ChatID), what, opts); err != nil {
		return wrapSendError(err)
	}
	s.log.DebugContext(ctx, "rich message sent", "chatID", n.ChatID, "image", len(n.Image) > 0, "buttons", len(n.Buttons))
	return nil
}

func wrapSendError(err error) error {
	if isBlocked(err) {
		return fmt.Errorf("send message: %w: %w", service.ErrRecipientBlocked, err)
	}
	return fmt.Errorf("send message: %w", err)
}

func isBlocked(err error) bool {
	return errors.Is(err, tc.ErrForbidden) ||
		errors.Is(err, tb.ErrBlockedByUser) ||
		errors.Is(err, tb.ErrUserIsDeactivated)
}
