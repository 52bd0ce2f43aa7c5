package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/Roma7-7-7/room-notifier/internal/dal"
	"github.com/Roma7-7-7/room-notifier/internal/rooms"
)

//go:generate mockgen -package mocks -destination mocks/reconciler.go . ReconcileStore,SnapshotSource

type (
	ReconcileStore interface {
		SetOnline(username string, chatID int64, online bool) error
		DeleteSubscription(username string, chatID int64) error
		GetPreferences(chatID int64) (dal.Preferences, error)
		PurgeChat(chatID int64) error
	}

	SnapshotSource interface {
		Capture(ctx context.Context, username string) ([]byte, error)
	}

	Action int

	ReconcileSummary struct {
		BecameOnline  int
		BecameOffline int
		Removed       int
		BlockedChats  int
		FailedSends   int
	}

	Reconciler struct {
		store     ReconcileStore
		snapshots SnapshotSource
		messenger Messenger
		watchURL  string

		log *slog.Logger
	}
)

const (
	ActionNone Action = iota
	ActionBecameOnline
	ActionBecameOffline
	ActionRemove
)

func (a Action) String() string {
	switch a {
	case ActionBecameOnline:
		return "became_online"
	case ActionBecameOffline:
		return "became_offline"
	case ActionRemove:
		return "remove"
	default:
		return "none"
	}
}

// Decide maps a freshly observed status and the state last announced to a chat onto the action to take
func Decide(status rooms.Status, prevOnline bool) Action {
	switch {
	case status == rooms.StatusError:
		return ActionNone
	case status.Terminal():
		return ActionRemove
	case status.Online() && !prevOnline:
		return ActionBecameOnline
	case !status.Online() && prevOnline:
		return ActionBecameOffline
	default:
		return ActionNone
	}
}

func NewReconciler(store ReconcileStore, snapshots SnapshotSource, messenger Messenger, watchURL string, log *slog.Logger) *Reconciler {
	return &Reconciler{
		store:     store,
		snapshots: snapshots,
		messenger: messenger,
		watchURL:  watchURL,

		log: log.With("component", "service").With("service", "reconciler"),
	}
}

// Reconcile diffs the cycle results against the subscription snapshot taken before the cycle.
// Every pair is notified first and mutated afterwards, so a crash in between causes a repeat, never a loss.
func (r *Reconciler) Reconcile(ctx context.Context, results map[string]rooms.Room, snapshot map[string][]dal.Subscription) ReconcileSummary {
	c := &reconcileCycle{
		Reconciler: r,
		prefs:      make(map[int64]dal.Preferences),
		blocked:    make(map[int64]bool),
		images:     make(map[string][]byte),
	}

	usernames := make([]string, 0, len(snapshot))
	for username := range snapshot {
		usernames = append(usernames, username)
	}
	slices.Sort(usernames)

	for _, username := range usernames {
		room, ok := results[username]
		if !ok {
			room = rooms.Room{Username: username, Status: rooms.StatusError}
		}
		for _, sub := range snapshot[username] {
			c.apply(ctx, room, sub)
		}
	}

	return c.summary
}

type reconcileCycle struct {
	*Reconciler

	summary ReconcileSummary
	prefs   map[int64]dal.Preferences
	blocked map[int64]bool
	images  map[string][]byte
}

func (c *reconcileCycle) apply(ctx context.Context, room rooms.Room, sub dal.Subscription) {
	if c.blocked[sub.ChatID] {
		return
	}

	action := Decide(room.Status, sub.Online)
	if action == ActionNone {
		return
	}

	log := c.log.With("username", room.Username, "chatID", sub.ChatID, "status", room.Status, "action", action)
	prefs := c.preferences(ctx, sub.ChatID)

	n := Notification{
		ChatID: sub.ChatID,
		Silent: !prefs.NotificationsSound,
	}
	switch action {
	case ActionBecameOnline:
		n.Text = onlineText(room.Username)
		n.HTML = true
		n.Buttons = []Button{WatchButton(c.watchURL, room.Username)}
		if prefs.LinkPreview && room.Status.Previewable() {
			if img := c.image(ctx, room.Username); img != nil {
				n.Image = img
				n.Buttons = append(n.Buttons, StreamImageButton(room.Username))
			}
		}
	case ActionBecameOffline:
		n.Text = offlineText(room.Username)
		n.HTML = true
	case ActionRemove:
		n.Text = removedText(room.Username, room.Status)
	}

	if err := c.messenger.Send(ctx, n); err != nil {
		if errors.Is(err, ErrRecipientBlocked) {
			log.InfoContext(ctx, "bot is blocked by user. purging chat", "error", err)
			c.blocked[sub.ChatID] = true
			c.summary.BlockedChats++
			if err := c.store.PurgeChat(sub.ChatID); err != nil {
				log.ErrorContext(ctx, "failed to purge chat", "error", err)
			}
			return
		}
		log.ErrorContext(ctx, "failed to send notification", "error", err)
		c.summary.FailedSends++
	}

	var err error
	switch action {
	case ActionBecameOnline:
		err = c.store.SetOnline(room.Username, sub.ChatID, true)
		c.summary.BecameOnline++
	case ActionBecameOffline:
		err = c.store.SetOnline(room.Username, sub.ChatID, false)
		c.summary.BecameOffline++
	case ActionRemove:
		err = c.store.DeleteSubscription(room.Username, sub.ChatID)
		c.summary.Removed++
	}
	switch {
	case errors.Is(err, dal.ErrNotFound):
		log.WarnContext(ctx, "subscription disappeared during cycle", "error", err)
	case err != nil:
		log.ErrorContext(ctx, "failed to apply transition", "error", err)
	default:
		log.DebugContext(ctx, "transition applied")
	}
}

func (c *reconcileCycle) preferences(ctx context.Context, chatID int64) dal.Preferences {
	if p, ok := c.prefs[chatID]; ok {
		return p
	}

	p, err := c.store.GetPreferences(chatID)
	if err != nil {
		c.log.ErrorContext(ctx, "failed to get preferences. using defaults", "chatID", chatID, "error", err)
		p = dal.DefaultPreferences(chatID)
	}
	c.prefs[chatID] = p
	return p
}

// image captures a room snapshot at most once per cycle, failures included
func (c *reconcileCycle) image(ctx context.Context, username string) []byte {
	if img, ok := c.images[username]; ok {
		return img
	}

	img, err := c.snapshots.Capture(ctx, username)
	if err != nil {
		c.log.WarnContext(ctx, "failed to capture snapshot", "username", username, "error", err)
		img = nil
	}
	c.images[username] = img
	return img
}
