package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/room-notifier/internal/dal"
	"github.com/Roma7-7-7/room-notifier/internal/rooms"
	"github.com/Roma7-7-7/room-notifier/internal/service"
)

//go:generate mockgen -package mocks -destination mocks/subscriptions.go . Subscriptions,Streams,Admin

const (
	genericErrorMsg = "Something went wrong. Please try again later."

	helpMsg = "I will let you know when rooms you follow go online or offline.\n\n" +
		"/add name1,name2 - follow rooms\n" +
		"/remove name1,name2 - stop following rooms, /remove all stops following everything\n" +
		"/list - rooms you follow\n" +
		"/stream_image name - current picture of a room\n" +
		"/settings - link preview and notification sound"

	// service calls behind a command may probe upstream with retries
	commandTimeout = time.Minute
)

type Subscriptions interface {
	Add(ctx context.Context, chatID int64, usernames []string) ([]service.AddResult, error)
	Remove(ctx context.Context, chatID int64, usernames []string) ([]service.RemoveResult, error)
	RemoveAll(ctx context.Context, chatID int64) (int, error)
	List(chatID int64) ([]dal.Subscription, error)
	Preferences(chatID int64) (dal.Preferences, error)
	SetLinkPreview(chatID int64, enabled bool) (dal.Preferences, error)
	SetNotificationsSound(chatID int64, enabled bool) (dal.Preferences, error)
	Purge(chatID int64) error
}

type Streams interface {
	StreamImage(ctx context.Context, username string) ([]byte, rooms.Status, error)
}

type Admin interface {
	Authorize(chatID int64, password string) (service.AuthorizeOutcome, error)
	Broadcast(ctx context.Context, chatID int64, text string) (service.BroadcastSummary, error)
}

type Clock interface {
	Now() time.Time
}

type Handler struct {
	subscriptions Subscriptions
	streams       Streams
	admin         Admin
	clock         Clock
	watchURL      string

	log *slog.Logger
}

func NewHandler(subscriptions Subscriptions, streams Streams, admin Admin, clock Clock, watchURL string, log *slog.Logger) *Handler {
	return &Handler{
		subscriptions: subscriptions,
		streams:       streams,
		admin:         admin,
		clock:         clock,
		watchURL:      watchURL,
		log:           log.With("component", "handler"),
	}
}

func (h *Handler) Start(c tb.Context) error {
	h.log.Debug("start handler called", "chatID", chatIDOf(c))
	return c.Send(helpMsg)
}

func (h *Handler) Add(c tb.Context) error {
	chatID := chatIDOf(c)
	usernames := service.ParseUsernames(c.Data())
	if len(usernames) == 0 {
		return c.Send("Usage: /add name1,name2")
	}

	// every room check is bounded on its own
	results, err := h.subscriptions.Add(context.Background(), chatID, usernames)
	if errors.Is(err, service.ErrLimitExceeded) {
		return c.Send("You have reached the maximum number of rooms you can follow")
	}
	if err != nil {
		h.log.Error("failed to add subscriptions", "chatID", chatID, "usernames", usernames, "error", err)
		return c.Send(genericErrorMsg)
	}

	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, addResultText(r))
	}
	return c.Send(strings.Join(lines, "\n"))
}

func (h *Handler) Remove(c tb.Context) error {
	chatID := chatIDOf(c)
	usernames := service.ParseUsernames(c.Data())
	if len(usernames) == 0 {
		return c.Send("Usage: /remove name1,name2 or /remove all")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if len(usernames) == 1 && usernames[0] == "all" {
		n, err := h.subscriptions.RemoveAll(ctx, chatID)
		if err != nil {
			h.log.Error("failed to remove all subscriptions", "chatID", chatID, "error", err)
			return c.Send(genericErrorMsg)
		}
		if n == 0 {
			return c.Send("You aren't following any room")
		}
		return c.Send("All rooms have been removed")
	}

	results, err := h.subscriptions.Remove(ctx, chatID, usernames)
	if err != nil {
		h.log.Error("failed to remove subscriptions", "chatID", chatID, "usernames", usernames, "error", err)
		return c.Send(genericErrorMsg)
	}

	lines := make([]string, 0, len(results))
	for _, r := range results {
		if r.Removed {
			lines = append(lines, r.Username+" has been removed")
		} else {
			lines = append(lines, "You aren't following "+r.Username)
		}
	}
	return c.Send(strings.Join(lines, "\n"))
}

func (h *Handler) List(c tb.Context) error {
	chatID := chatIDOf(c)

	subs, err := h.subscriptions.List(chatID)
	if err != nil {
		h.log.Error("failed to list subscriptions", "chatID", chatID, "error", err)
		return c.Send(genericErrorMsg)
	}
	if len(subs) == 0 {
		return c.Send("You aren't following any room")
	}

	now := h.clock.Now()
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are currently following %d rooms:", len(subs))
	for _, sub := range subs {
		state := "offline"
		if sub.Online {
			state = "online"
		}
		fmt.Fprintf(&sb, "\n%s: <b>%s</b>", html.EscapeString(sub.Username), state)
		if !sub.ChangedAt.IsZero() {
			fmt.Fprintf(&sb, " (since %s)", humanize.RelTime(sub.ChangedAt, now, "ago", "from now"))
		}
	}

	return c.Send(sb.String(), tb.ModeHTML)
}

func (h *Handler) StreamImage(c tb.Context) error {
	usernames := service.ParseUsernames(c.Data())
	if len(usernames) != 1 {
		return c.Send("Usage: /stream_image name")
	}
	username := usernames[0]

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	img, status, err := h.streams.StreamImage(ctx, username)
	if err != nil {
		if !errors.Is(err, service.ErrNotViewable) {
			h.log.Error("failed to get stream image", "username", username, "error", err)
		}
		return c.Send(notViewableText(username, status))
	}

	return c.Send(
		&tb.Photo{File: tb.FromReader(bytes.NewReader(img))},
		replyMarkup([]service.Button{service.WatchButton(h.watchURL, username), service.StreamImageButton(username)}),
	)
}

// StreamImageCallback replaces the picture of the message the "Update stream image" button belongs to
func (h *Handler) StreamImageCallback(c tb.Context) error {
	username := rooms.NormalizeUsername(c.Data())
	if err := c.Respond(); err != nil {
		h.log.Warn("failed to respond to callback", "chatID", chatIDOf(c), "error", err)
	}
	if username == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	img, _, err := h.streams.StreamImage(ctx, username)
	if err != nil {
		if !errors.Is(err, service.ErrNotViewable) {
			h.log.Error("failed to get stream image", "username", username, "error", err)
		}
		return c.Send(fmt.Sprintf("%s cannot be updated, probably the room is offline", username))
	}

	err = c.Edit(
		&tb.Photo{File: tb.FromReader(bytes.NewReader(img))},
		replyMarkup([]service.Button{service.WatchButton(h.watchURL, username), service.StreamImageButton(username)}),
	)
	if err != nil {
		h.log.Warn("failed to edit stream image", "username", username, "error", err)
		return c.Send(fmt.Sprintf("This is the latest update of %s", username))
	}
	return nil
}

func (h *Handler) Settings(c tb.Context) error {
	chatID := chatIDOf(c)

	prefs, err := h.subscriptions.Preferences(chatID)
	if err != nil {
		h.log.Error("failed to get preferences", "chatID", chatID, "error", err)
		return c.Send(genericErrorMsg)
	}

	return c.Send(settingsText(prefs), settingsMarkup(prefs), tb.ModeHTML)
}

func (h *Handler) ToggleLinkPreview(c tb.Context) error {
	return h.toggle(c, "link preview", h.subscriptions.SetLinkPreview)
}

func (h *Handler) ToggleNotificationsSound(c tb.Context) error {
	return h.toggle(c, "notifications sound", h.subscriptions.SetNotificationsSound)
}

func (h *Handler) toggle(c tb.Context, setting string, set func(chatID int64, enabled bool) (dal.Preferences, error)) error {
	chatID := chatIDOf(c)
	if err := c.Respond(); err != nil {
		h.log.Warn("failed to respond to callback", "chatID", chatID, "error", err)
	}

	prefs, err := set(chatID, c.Data() == toggleOn)
	if err != nil {
		h.log.Error("failed to update preferences", "chatID", chatID, "setting", setting, "error", err)
		return c.Send(genericErrorMsg)
	}
	h.log.Info("user toggled setting", "chatID", chatID, "setting", setting, "enabled", c.Data() == toggleOn)

	return c.Edit(settingsText(prefs), settingsMarkup(prefs), tb.ModeHTML)
}

func (h *Handler) AuthorizeAdmin(c tb.Context) error {
	chatID := chatIDOf(c)
	password := strings.TrimSpace(c.Data())
	if password == "" {
		return c.Send("You need to specify the admin password, use the command like /authorize_admin password")
	}

	outcome, err := h.admin.Authorize(chatID, password)
	if errors.Is(err, service.ErrAdminDisabled) {
		return c.Send("The admin is disabled, check your bot configuration")
	}
	if err != nil {
		h.log.Error("failed to authorize admin", "chatID", chatID, "error", err)
		return c.Send(genericErrorMsg)
	}

	switch outcome {
	case service.AuthorizeOutcomeAlreadyAdmin:
		return c.Send("You already are an admin")
	case service.AuthorizeOutcomeAuthorized:
		return c.Send("Admin enabled. Remember to unset ADMIN_PASSWORD once every admin is authorized")
	default:
		return c.Send("The password is wrong")
	}
}

func (h *Handler) SendMessageToEveryone(c tb.Context) error {
	chatID := chatIDOf(c)
	text := strings.TrimSpace(c.Data())
	if text == "" {
		return c.Send("Usage: /send_message_to_everyone text")
	}

	summary, err := h.admin.Broadcast(context.Background(), chatID, text)
	if errors.Is(err, service.ErrNotAdmin) {
		return c.Send("You're not authorized to do this")
	}
	if err != nil {
		h.log.Error("failed to broadcast message", "chatID", chatID, "error", err)
		return c.Send(genericErrorMsg)
	}

	return c.Send(fmt.Sprintf("The message has been sent to %d chats (blocked: %d, failed: %d)",
		summary.Sent, summary.Blocked, summary.Failed))
}

func addResultText(r service.AddResult) string {
	switch r.Outcome {
	case service.AddOutcomeAdded:
		return r.Username + " has been added"
	case service.AddOutcomeAddedPassword:
		return r.Username + " has been added, the room is password protected so you may not be able to watch it"
	case service.AddOutcomeAlreadyFollowed:
		return r.Username + " has already been added"
	case service.AddOutcomeRejected:
		switch r.Status {
		case rooms.StatusDeleted:
			return r.Username + " has not been added because room has been deleted"
		case rooms.StatusBanned:
			return r.Username + " has not been added because room has been banned"
		case rooms.StatusGeoblocked:
			return r.Username + " has not been added because of geoblocking"
		default:
			return r.Username + " has not been added because the broadcaster does not exist"
		}
	default:
		return r.Username + " has not been added because it could not be checked, try again later"
	}
}

func notViewableText(username string, status rooms.Status) string {
	switch status {
	case rooms.StatusOffline:
		return username + " is offline"
	case rooms.StatusAway:
		return username + " is away, try again later"
	case rooms.StatusPrivate, rooms.StatusHidden:
		return username + " is in a private show, try again later"
	case rooms.StatusPassword:
		return username + " cannot be seen because the room is password protected"
	case rooms.StatusDeleted, rooms.StatusBanned, rooms.StatusGeoblocked, rooms.StatusCanceled:
		return username + " is not available anymore (" + string(status) + ")"
	default:
		return username + " could not be checked, try again later"
	}
}

func chatIDOf(c tb.Context) int64 {
	if chat := c.Chat(); chat != nil {
		return chat.ID
	}
	return c.Sender().ID
}
