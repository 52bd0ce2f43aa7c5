package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/Roma7-7-7/room-notifier/internal/dal"
	"github.com/Roma7-7-7/room-notifier/internal/rooms"
)

//go:generate mockgen -package mocks -destination mocks/watcher.go . WatcherStore,RoomPoller,TransitionReconciler

type (
	WatcherStore interface {
		SubscriptionsByUsername() (map[string][]dal.Subscription, error)
	}

	RoomPoller interface {
		RunCycle(ctx context.Context, usernames []string) map[string]rooms.Room
	}

	TransitionReconciler interface {
		Reconcile(ctx context.Context, results map[string]rooms.Room, snapshot map[string][]dal.Subscription) ReconcileSummary
	}

	// Watcher runs poll cycles over every followed room until its context is done
	Watcher struct {
		store      WatcherStore
		poller     RoomPoller
		reconciler TransitionReconciler
		clock      Clock
		idleDelay  time.Duration

		log *slog.Logger
	}
)

func NewWatcher(
	store WatcherStore,
	poller RoomPoller,
	reconciler TransitionReconciler,
	clock Clock,
	idleDelay time.Duration,
	log *slog.Logger,
) *Watcher {
	return &Watcher{
		store:      store,
		poller:     poller,
		reconciler: reconciler,
		clock:      clock,
		idleDelay:  idleDelay,

		log: log.With("component", "service").With("service", "watcher"),
	}
}

// Run starts the next cycle as soon as the previous one is done. The only pause is idleDelay
// after a cycle that had no rooms to check or could not read the store.
func (w *Watcher) Run(ctx context.Context) {
	w.log.InfoContext(ctx, "starting watcher")
	for ctx.Err() == nil {
		checked, err := w.safeCheckAll(ctx)
		if err != nil {
			w.log.ErrorContext(ctx, "poll cycle failed", "error", err)
		}
		if checked == 0 {
			w.idle(ctx)
		}
	}
	w.log.InfoContext(ctx, "watcher stopped")
}

// CheckAll runs one poll cycle and returns the number of rooms checked
func (w *Watcher) CheckAll(ctx context.Context) (int, error) {
	start := w.clock.Now()

	snapshot, err := w.store.SubscriptionsByUsername()
	if err != nil {
		return 0, fmt.Errorf("read subscriptions: %w", err)
	}

	queue := make([]string, 0, len(snapshot))
	for username, subs := range snapshot {
		if len(subs) == 0 {
			delete(snapshot, username)
			continue
		}
		queue = append(queue, username)
	}
	slices.Sort(queue)
	if len(queue) == 0 {
		w.log.DebugContext(ctx, "no rooms to check")
		return 0, nil
	}

	results := w.poller.RunCycle(ctx, queue)
	summary := w.reconciler.Reconcile(ctx, results, snapshot)

	w.log.InfoContext(ctx, "poll cycle completed",
		"rooms", len(queue),
		"became_online", summary.BecameOnline,
		"became_offline", summary.BecameOffline,
		"removed", summary.Removed,
		"blocked_chats", summary.BlockedChats,
		"failed_sends", summary.FailedSends,
		"duration", w.clock.Now().Sub(start))

	return len(queue), nil
}

func (w *Watcher) safeCheckAll(ctx context.Context) (checked int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in poll cycle: %v", r)
		}
	}()
	return w.CheckAll(ctx)
}

func (w *Watcher) idle(ctx context.Context) {
	if w.idleDelay <= 0 {
		return
	}
	t := time.NewTimer(w.idleDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
