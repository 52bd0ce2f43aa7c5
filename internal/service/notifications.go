package service

import (
	"context"
	"errors"
)

//go:generate mockgen -package mocks -destination mocks/messenger.go . Messenger

// ErrRecipientBlocked is returned by a Messenger when the chat does not accept messages from the bot anymore
var ErrRecipientBlocked = errors.New("recipient blocked the bot")

type (
	// Button is a URL button when URL is set and a callback button identified by Unique otherwise
	Button struct {
		Text   string
		URL    string
		Unique string
		Data   string
	}

	Notification struct {
		ChatID  int64
		Text    string
		Image   []byte
		Buttons []Button
		HTML    bool
		Silent  bool
	}

	Messenger interface {
		Send(ctx context.Context, n Notification) error
	}
)

// Rich reports whether the notification needs more than a plain text message
func (n Notification) Rich() bool {
	return len(n.Image) > 0 || len(n.Buttons) > 0 || n.HTML || n.Silent
}
