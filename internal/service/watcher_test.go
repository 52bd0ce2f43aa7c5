package service_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
	"go.uber.org/mock/gomock"

	"github.com/Roma7-7-7/room-notifier/internal/dal"
	"github.com/Roma7-7-7/room-notifier/internal/dal/migrations"
	"github.com/Roma7-7-7/room-notifier/internal/dal/testutil"
	"github.com/Roma7-7-7/room-notifier/internal/rooms"
	"github.com/Roma7-7-7/room-notifier/internal/service"
	"github.com/Roma7-7-7/room-notifier/internal/service/mocks"
	"github.com/Roma7-7-7/room-notifier/pkg/clock"
)

func TestWatcher_CheckAll(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockWatcherStore(ctrl)
		poller := mocks.NewMockRoomPoller(ctrl)
		reconciler := mocks.NewMockTransitionReconciler(ctrl)

		aliceSubs := []dal.Subscription{testutil.NewSubscription("alice", 1).Build()}
		bobSubs := []dal.Subscription{testutil.NewSubscription("bob", 1).Online().Build(), testutil.NewSubscription("bob", 2).Build()}
		res := results(room("alice", rooms.StatusOnline), room("bob", rooms.StatusOffline))

		store.EXPECT().SubscriptionsByUsername().Return(map[string][]dal.Subscription{
			"bob":   bobSubs,
			"dave":  nil,
			"alice": aliceSubs,
		}, nil)
		poller.EXPECT().RunCycle(gomock.Any(), []string{"alice", "bob"}).Return(res)
		reconciler.EXPECT().Reconcile(gomock.Any(), res, map[string][]dal.Subscription{
			"alice": aliceSubs,
			"bob":   bobSubs,
		}).Return(service.ReconcileSummary{BecameOnline: 1, BecameOffline: 1})

		w := service.NewWatcher(store, poller, reconciler, clock.NewMock(checkedAt), 0, slog.New(slog.DiscardHandler))
		checked, err := w.CheckAll(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 2, checked)
	})

	t.Run("nothing_to_check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockWatcherStore(ctrl)
		store.EXPECT().SubscriptionsByUsername().Return(map[string][]dal.Subscription{}, nil)

		w := service.NewWatcher(store, mocks.NewMockRoomPoller(ctrl), mocks.NewMockTransitionReconciler(ctrl), clock.New(), 0, slog.New(slog.DiscardHandler))
		checked, err := w.CheckAll(t.Context())
		require.NoError(t, err)
		assert.Zero(t, checked)
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mocks.NewMockWatcherStore(ctrl)
		store.EXPECT().SubscriptionsByUsername().Return(nil, assert.AnError)

		w := service.NewWatcher(store, mocks.NewMockRoomPoller(ctrl), mocks.NewMockTransitionReconciler(ctrl), clock.New(), 0, slog.New(slog.DiscardHandler))
		_, err := w.CheckAll(t.Context())
		testutil.AssertErrorIsAndContains(assert.AnError, "read subscriptions: ")(t, err)
	})
}

func TestWatcher_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	calls := 0
	store := mocks.NewMockWatcherStore(ctrl)
	store.EXPECT().SubscriptionsByUsername().DoAndReturn(func() (map[string][]dal.Subscription, error) {
		calls++
		switch calls {
		case 1:
			panic("corrupted page")
		case 2:
			return nil, assert.AnError
		default:
			cancel()
			return nil, nil
		}
	}).Times(3)

	w := service.NewWatcher(store, mocks.NewMockRoomPoller(ctrl), mocks.NewMockTransitionReconciler(ctrl), clock.New(), time.Millisecond, slog.New(slog.DiscardHandler))

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after context cancellation")
	}
	assert.Equal(t, 3, calls)
}

// recordingMessenger keeps everything sent during a test
type recordingMessenger struct {
	mx   sync.Mutex
	sent []service.Notification
}

func (m *recordingMessenger) Send(_ context.Context, n service.Notification) error {
	m.mx.Lock()
	defer m.mx.Unlock()
	m.sent = append(m.sent, n)
	return nil
}

func (m *recordingMessenger) take() []service.Notification {
	m.mx.Lock()
	defer m.mx.Unlock()
	res := m.sent
	m.sent = nil
	return res
}

func newTestStore(t *testing.T) *dal.BoltDB {
	t.Helper()

	db, err := bbolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	require.NoError(t, migrations.RunMigrations(db, slog.New(slog.DiscardHandler)))

	store, err := dal.NewBoltDB(db)
	require.NoError(t, err)
	return store
}

func TestWatcher_CheckAll_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newTestStore(t)
	for _, sub := range []dal.Subscription{
		testutil.NewSubscription("alice", 1).Build(),
		testutil.NewSubscription("bob", 1).Build(),
		testutil.NewSubscription("carol", 1).Online().Build(),
		testutil.NewSubscription("eve", 1).Build(),
		testutil.NewSubscription("eve", 2).Online().Build(),
	} {
		require.NoError(t, store.PutSubscription(sub))
	}

	statuses := map[string]rooms.Status{
		"alice": rooms.StatusOffline,
		"bob":   rooms.StatusPassword,
		"carol": rooms.StatusPrivate,
		"eve":   rooms.StatusBanned,
	}
	fetcher := mocks.NewMockStatusFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, username string) rooms.Status {
		return statuses[username]
	}).AnyTimes()

	messenger := &recordingMessenger{}
	c := clock.NewMock(checkedAt)
	log := slog.New(slog.DiscardHandler)
	w := service.NewWatcher(
		store,
		service.NewPoller(fetcher, c, 3, 0, log),
		service.NewReconciler(store, mocks.NewMockSnapshotSource(ctrl), messenger, watchURL, log),
		c,
		0,
		log,
	)

	checked, err := w.CheckAll(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 4, checked)
	assert.ElementsMatch(t, []service.Notification{
		{ChatID: 1, Text: "bob is now <b>online</b>!", HTML: true, Buttons: []service.Button{service.WatchButton(watchURL, "bob")}},
		{ChatID: 1, Text: "carol is now <b>offline</b>", HTML: true},
		{ChatID: 1, Text: "eve has been removed because room has been banned"},
		{ChatID: 2, Text: "eve has been removed because room has been banned"},
	}, messenger.take())

	bob, ok, err := store.GetSubscription("bob", 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, bob.Online)
	carol, ok, err := store.GetSubscription("carol", 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, carol.Online)
	usernames, err := store.ListUsernames()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, usernames)

	// same statuses again: nothing changes and nothing is sent
	checked, err = w.CheckAll(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 3, checked)
	assert.Empty(t, messenger.take())

	// an unreachable upstream never flips state
	statuses["bob"] = rooms.StatusError
	statuses["carol"] = rooms.StatusError
	_, err = w.CheckAll(t.Context())
	require.NoError(t, err)
	assert.Empty(t, messenger.take())
	bob, _, err = store.GetSubscription("bob", 1)
	require.NoError(t, err)
	assert.True(t, bob.Online)
}
