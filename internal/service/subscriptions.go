package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/Roma7-7-7/room-notifier/internal/dal"
	"github.com/Roma7-7-7/room-notifier/internal/rooms"
)

//go:generate mockgen -package mocks -destination mocks/subscriptions.go . SubscriptionsStore

var ErrLimitExceeded = errors.New("subscriptions limit exceeded")

type (
	SubscriptionsStore interface {
		IsAdmin(chatID int64) (bool, error)
		ListChatSubscriptions(chatID int64) ([]dal.Subscription, error)
		PutSubscription(sub dal.Subscription) error
		DeleteSubscription(username string, chatID int64) error
		GetPreferences(chatID int64) (dal.Preferences, error)
		PutPreferences(p dal.Preferences) error
		PurgeChat(chatID int64) error
	}

	AddOutcome int

	AddResult struct {
		Username string
		Outcome  AddOutcome
		Status   rooms.Status
	}

	RemoveResult struct {
		Username string
		Removed  bool
	}

	Subscriptions struct {
		store        SubscriptionsStore
		fetcher      StatusFetcher
		limit        int
		checkTimeout time.Duration

		log *slog.Logger
		mx  *sync.Mutex
	}
)

const (
	AddOutcomeAdded AddOutcome = iota
	AddOutcomeAddedPassword
	AddOutcomeAlreadyFollowed
	AddOutcomeRejected
	AddOutcomeCheckFailed
)

func (o AddOutcome) added() bool {
	return o == AddOutcomeAdded || o == AddOutcomeAddedPassword
}

// NewSubscriptions creates the command side of subscriptions. limit is the maximum number of rooms
// a chat may follow, 0 means unlimited. checkTimeout bounds the upstream check of a single room.
func NewSubscriptions(store SubscriptionsStore, fetcher StatusFetcher, limit int, checkTimeout time.Duration, log *slog.Logger) *Subscriptions {
	return &Subscriptions{
		store:        store,
		fetcher:      fetcher,
		limit:        limit,
		checkTimeout: checkTimeout,
		log:          log.With("component", "service").With("service", "subscriptions"),
		mx:           &sync.Mutex{},
	}
}

// ParseUsernames splits command arguments on commas and whitespace, normalizes and de-duplicates them
func ParseUsernames(args string) []string {
	fields := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	res := make([]string, 0, len(fields))
	for _, f := range fields {
		u := rooms.NormalizeUsername(f)
		if u == "" || slices.Contains(res, u) {
			continue
		}
		res = append(res, u)
	}
	return res
}

// Add probes every new room once before following it. Rooms that cannot be followed are
// reported in the result, only storage failures are returned as errors.
// Upstream checks run without holding the lock, each one bounded by checkTimeout.
func (s *Subscriptions) Add(ctx context.Context, chatID int64, usernames []string) ([]AddResult, error) {
	followed, err := s.followed(chatID)
	if err != nil {
		return nil, err
	}
	if err = s.checkLimit(chatID, len(followed), countNew(followed, usernames)); err != nil {
		return nil, err
	}

	res := make([]AddResult, 0, len(usernames))
	for _, u := range usernames {
		if _, ok := followed[u]; ok {
			res = append(res, AddResult{Username: u, Outcome: AddOutcomeAlreadyFollowed})
			continue
		}
		res = append(res, s.check(ctx, u))
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	// another command of the same chat may have changed the list while rooms were checked
	if followed, err = s.followed(chatID); err != nil {
		return nil, err
	}
	adding := 0
	for i, r := range res {
		if !r.Outcome.added() {
			continue
		}
		if _, ok := followed[r.Username]; ok {
			res[i].Outcome = AddOutcomeAlreadyFollowed
			continue
		}
		adding++
	}
	if err = s.checkLimit(chatID, len(followed), adding); err != nil {
		return nil, err
	}

	for i, r := range res {
		if !r.Outcome.added() {
			continue
		}
		// offline on purpose so the next cycle announces a live room
		if err = s.store.PutSubscription(dal.Subscription{Username: r.Username, ChatID: chatID}); err != nil {
			return res[:i], fmt.Errorf("put subscription %s: %w", r.Username, err)
		}
		s.log.InfoContext(ctx, "room followed", "chatID", chatID, "username", r.Username, "status", r.Status)
	}

	return res, nil
}

func (s *Subscriptions) check(ctx context.Context, username string) AddResult {
	if s.checkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.checkTimeout)
		defer cancel()
	}

	status := s.fetcher.Fetch(ctx, username)
	r := AddResult{Username: username, Status: status}
	switch {
	case status.Terminal():
		r.Outcome = AddOutcomeRejected
	case status == rooms.StatusError:
		r.Outcome = AddOutcomeCheckFailed
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			s.log.WarnContext(ctx, "room check timed out", "username", username, "timeout", s.checkTimeout)
		}
	case status == rooms.StatusPassword:
		r.Outcome = AddOutcomeAddedPassword
	default:
		r.Outcome = AddOutcomeAdded
	}
	return r
}

// checkLimit lets admins follow any number of rooms
func (s *Subscriptions) checkLimit(chatID int64, following, adding int) error {
	if s.limit <= 0 || following+adding <= s.limit {
		return nil
	}
	admin, err := s.store.IsAdmin(chatID)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if admin {
		return nil
	}
	return fmt.Errorf("follow %d more rooms with limit %d: %w", adding, s.limit, ErrLimitExceeded)
}

func countNew(followed map[string]struct{}, usernames []string) int {
	res := 0
	for _, u := range usernames {
		if _, ok := followed[u]; !ok {
			res++
		}
	}
	return res
}

func (s *Subscriptions) Remove(ctx context.Context, chatID int64, usernames []string) ([]RemoveResult, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	followed, err := s.followed(chatID)
	if err != nil {
		return nil, err
	}

	res := make([]RemoveResult, 0, len(usernames))
	for _, u := range usernames {
		if _, ok := followed[u]; !ok {
			res = append(res, RemoveResult{Username: u})
			continue
		}
		if err := s.store.DeleteSubscription(u, chatID); err != nil {
			return res, fmt.Errorf("delete subscription %s: %w", u, err)
		}
		s.log.InfoContext(ctx, "room unfollowed", "chatID", chatID, "username", u)
		res = append(res, RemoveResult{Username: u, Removed: true})
	}

	return res, nil
}

// RemoveAll unfollows every room of the chat and keeps its preferences
func (s *Subscriptions) RemoveAll(ctx context.Context, chatID int64) (int, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	subs, err := s.store.ListChatSubscriptions(chatID)
	if err != nil {
		return 0, fmt.Errorf("list chat subscriptions: %w", err)
	}
	for i, sub := range subs {
		if err := s.store.DeleteSubscription(sub.Username, chatID); err != nil {
			return i, fmt.Errorf("delete subscription %s: %w", sub.Username, err)
		}
	}

	s.log.InfoContext(ctx, "all rooms unfollowed", "chatID", chatID, "count", len(subs))
	return len(subs), nil
}

// List returns followed rooms sorted by username
func (s *Subscriptions) List(chatID int64) ([]dal.Subscription, error) {
	subs, err := s.store.ListChatSubscriptions(chatID)
	if err != nil {
		return nil, fmt.Errorf("list chat subscriptions: %w", err)
	}
	slices.SortFunc(subs, func(a, b dal.Subscription) int {
		return strings.Compare(a.Username, b.Username)
	})
	return subs, nil
}

func (s *Subscriptions) Preferences(chatID int64) (dal.Preferences, error) {
	p, err := s.store.GetPreferences(chatID)
	if err != nil {
		return p, fmt.Errorf("get preferences: %w", err)
	}
	return p, nil
}

func (s *Subscriptions) SetLinkPreview(chatID int64, enabled bool) (dal.Preferences, error) {
	return s.updatePreferences(chatID, func(p *dal.Preferences) {
		p.LinkPreview = enabled
	})
}

func (s *Subscriptions) SetNotificationsSound(chatID int64, enabled bool) (dal.Preferences, error) {
	return s.updatePreferences(chatID, func(p *dal.Preferences) {
		p.NotificationsSound = enabled
	})
}

// Purge forgets everything about the chat
func (s *Subscriptions) Purge(chatID int64) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	if err := s.store.PurgeChat(chatID); err != nil {
		return fmt.Errorf("purge chat: %w", err)
	}
	return nil
}

func (s *Subscriptions) updatePreferences(chatID int64, update func(p *dal.Preferences)) (dal.Preferences, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	p, err := s.store.GetPreferences(chatID)
	if err != nil {
		return p, fmt.Errorf("get preferences: %w", err)
	}
	update(&p)
	if err := s.store.PutPreferences(p); err != nil {
		return p, fmt.Errorf("put preferences: %w", err)
	}

	s.log.Debug("preferences updated",
		"chatID", chatID,
		"linkPreview", p.LinkPreview,
		"notificationsSound", p.NotificationsSound)
	return p, nil
}

func (s *Subscriptions) followed(chatID int64) (map[string]struct{}, error) {
	subs, err := s.store.ListChatSubscriptions(chatID)
	if err != nil {
		return nil, fmt.Errorf("list chat subscriptions: %w", err)
	}
	res := make(map[string]struct{}, len(subs))
	for _, sub := range subs {
		res[sub.Username] = struct{}{}
	}
	return res, nil
}
