package rooms

import (
	"strings"
	"time"
)

type Status string

const (
	StatusOnline     Status = "online"
	StatusOffline    Status = "offline"
	StatusAway       Status = "away"
	StatusPrivate    Status = "private"
	StatusHidden     Status = "hidden"
	StatusPassword   Status = "password"
	StatusDeleted    Status = "deleted"
	StatusBanned     Status = "banned"
	StatusGeoblocked Status = "geoblocked"
	StatusCanceled   Status = "canceled"
	StatusError      Status = "error"
)

// Online reports whether subscribers should consider the room live.
// Password protected rooms count as online.
func (s Status) Online() bool {
	return s == StatusOnline || s == StatusPassword
}

// Terminal reports whether the room is gone for good and its subscriptions must be removed.
func (s Status) Terminal() bool {
	switch s {
	case StatusDeleted, StatusBanned, StatusGeoblocked, StatusCanceled:
		return true
	default:
		return false
	}
}

// Previewable reports whether a stream snapshot can be shown for the room.
func (s Status) Previewable() bool {
	return s == StatusOnline
}

// Room is the outcome of one poll for one username. It lives for a single poll cycle.
type Room struct {
	Username  string
	Status    Status
	CheckedAt time.Time
}

func (r Room) Online() bool {
	return r.Status.Online()
}

// NormalizeUsername lowercases the username and strips slashes, as the upstream rejects both.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(username), "/", ""))
}
