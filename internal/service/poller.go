package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Roma7-7-7/room-notifier/internal/rooms"
)

//go:generate mockgen -package mocks -destination mocks/poller.go . StatusFetcher

type (
	StatusFetcher interface {
		Fetch(ctx context.Context, username string) rooms.Status
	}

	Clock interface {
		Now() time.Time
	}

	// Poller checks a batch of rooms with a bounded number of workers draining one shared queue
	Poller struct {
		fetcher StatusFetcher
		clock   Clock
		workers int
		stagger time.Duration

		log *slog.Logger
	}
)

func NewPoller(fetcher StatusFetcher, clock Clock, workers int, stagger time.Duration, log *slog.Logger) *Poller {
	return &Poller{
		fetcher: fetcher,
		clock:   clock,
		workers: max(workers, 1),
		stagger: stagger,

		log: log.With("component", "service").With("service", "poller"),
	}
}

// RunCycle returns one result per distinct username once every worker has finished
func (p *Poller) RunCycle(ctx context.Context, usernames []string) map[string]rooms.Room {
	queue := make(chan string, len(usernames))
	seen := make(map[string]struct{}, len(usernames))
	for _, u := range usernames {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		queue <- u
	}
	close(queue)

	res := make(map[string]rooms.Room, len(seen))
	if len(seen) == 0 {
		return res
	}

	var (
		mx sync.Mutex
		g  errgroup.Group
	)
	workers := min(p.workers, len(seen))
	for i := range workers {
		if i > 0 && !p.wait(ctx) {
			p.log.InfoContext(ctx, "context is done. not launching more workers", "launched", i)
			break
		}
		g.Go(func() error {
			for username := range queue {
				room := p.check(ctx, username)
				mx.Lock()
				res[username] = room
				mx.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return res
}

func (p *Poller) check(ctx context.Context, username string) (room rooms.Room) {
	defer func() {
		if r := recover(); r != nil {
			p.log.ErrorContext(ctx, "panic while checking room", "username", username, "error", fmt.Sprintf("%v", r))
			room = rooms.Room{Username: username, Status: rooms.StatusError, CheckedAt: p.clock.Now()}
		}
	}()

	return rooms.Room{
		Username:  username,
		Status:    p.fetcher.Fetch(ctx, username),
		CheckedAt: p.clock.Now(),
	}
}

func (p *Poller) wait(ctx context.Context) bool {
	if p.stagger <= 0 {
		return ctx.Err() == nil
	}

	t := time.NewTimer(p.stagger)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
