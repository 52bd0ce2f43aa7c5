package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Roma7-7-7/room-notifier/internal/rooms"
)

// ErrNotViewable means the room is not broadcasting publicly, the accompanying status tells why
var ErrNotViewable = errors.New("room is not viewable")

type Streams struct {
	fetcher   StatusFetcher
	snapshots SnapshotSource

	log *slog.Logger
}

func NewStreams(fetcher StatusFetcher, snapshots SnapshotSource, log *slog.Logger) *Streams {
	return &Streams{
		fetcher:   fetcher,
		snapshots: snapshots,
		log:       log.With("component", "service").With("service", "streams"),
	}
}

// StreamImage returns a fresh snapshot of a public room
func (s *Streams) StreamImage(ctx context.Context, username string) ([]byte, rooms.Status, error) {
	status := s.fetcher.Fetch(ctx, username)
	if !status.Previewable() {
		return nil, status, fmt.Errorf("%s is %s: %w", username, status, ErrNotViewable)
	}

	img, err := s.snapshots.Capture(ctx, username)
	if err != nil {
		return nil, status, fmt.Errorf("capture snapshot: %w", err)
	}
	s.log.DebugContext(ctx, "stream image captured", "username", username, "size", len(img))
	return img, status, nil
}
