package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
)

//go:generate mockgen -package mocks -destination mocks/admin.go . AdminStore

var (
	ErrAdminDisabled = errors.New("admin is disabled")
	ErrNotAdmin      = errors.New("not an admin")
)

type (
	AdminStore interface {
		IsAdmin(chatID int64) (bool, error)
		PutAdmin(chatID int64) error
		ListChatIDs() ([]int64, error)
		PurgeChat(chatID int64) error
	}

	AuthorizeOutcome int

	BroadcastSummary struct {
		Sent    int
		Blocked int
		Failed  int
	}

	// Admin authorizes chats with the configured password and lets them message every subscriber
	Admin struct {
		store     AdminStore
		messenger Messenger
		password  string

		log *slog.Logger
	}
)

const (
	AuthorizeOutcomeAuthorized AuthorizeOutcome = iota
	AuthorizeOutcomeAlreadyAdmin
	AuthorizeOutcomeWrongPassword
)

// NewAdmin creates the admin service. An empty password disables authorization.
func NewAdmin(store AdminStore, messenger Messenger, password string, log *slog.Logger) *Admin {
	return &Admin{
		store:     store,
		messenger: messenger,
		password:  password,
		log:       log.With("component", "service").With("service", "admin"),
	}
}

func (a *Admin) Authorize(chatID int64, password string) (AuthorizeOutcome, error) {
	if a.password == "" {
		return AuthorizeOutcomeWrongPassword, ErrAdminDisabled
	}

	admin, err := a.store.IsAdmin(chatID)
	if err != nil {
		return AuthorizeOutcomeWrongPassword, fmt.Errorf("check admin: %w", err)
	}
	if admin {
		return AuthorizeOutcomeAlreadyAdmin, nil
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) != 1 {
		a.log.Warn("wrong admin password", "chatID", chatID)
		return AuthorizeOutcomeWrongPassword, nil
	}
	if err = a.store.PutAdmin(chatID); err != nil {
		return AuthorizeOutcomeWrongPassword, fmt.Errorf("put admin: %w", err)
	}

	a.log.Info("admin authorized", "chatID", chatID)
	return AuthorizeOutcomeAuthorized, nil
}

// Broadcast sends text to every chat following at least one room. Chats that blocked the bot are purged.
func (a *Admin) Broadcast(ctx context.Context, chatID int64, text string) (BroadcastSummary, error) {
	var summary BroadcastSummary

	admin, err := a.store.IsAdmin(chatID)
	if err != nil {
		return summary, fmt.Errorf("check admin: %w", err)
	}
	if !admin {
		return summary, ErrNotAdmin
	}

	chatIDs, err := a.store.ListChatIDs()
	if err != nil {
		return summary, fmt.Errorf("list chat ids: %w", err)
	}

	for _, id := range chatIDs {
		if ctx.Err() != nil {
			return summary, fmt.Errorf("broadcast: %w", ctx.Err())
		}

		err := a.messenger.Send(ctx, Notification{ChatID: id, Text: text})
		switch {
		case err == nil:
			summary.Sent++
		case errors.Is(err, ErrRecipientBlocked):
			summary.Blocked++
			a.log.InfoContext(ctx, "chat blocked the bot. purging", "chatID", id)
			if err := a.store.PurgeChat(id); err != nil {
				a.log.ErrorContext(ctx, "failed to purge chat", "chatID", id, "error", err)
			}
		default:
			summary.Failed++
			a.log.ErrorContext(ctx, "failed to send broadcast", "chatID", id, "error", err)
		}
	}

	a.log.InfoContext(ctx, "broadcast completed",
		"admin", chatID,
		"sent", summary.Sent,
		"blocked", summary.Blocked,
		"failed", summary.Failed)
	return summary, nil
}
