package dal

import (
	"time"
)

var testNow = time.Date(2025, time.November, 11, 18, 19, 20, 0, time.UTC)

func (s *BoltDBTestSuite) TestBoltDB_ListUsernames() {
	usernames, err := s.store.ListUsernames()
	s.Require().NoError(err, "error listing usernames")
	s.Empty(usernames)

	s.Require().NoError(s.store.PutSubscription(NewSubscription("bob", 1).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 1).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 2).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice_b", 3).Build()))

	usernames, err = s.store.ListUsernames()
	s.Require().NoError(err, "error listing usernames")
	s.Equal([]string{"alice", "alice_b", "bob"}, usernames)
}

func (s *BoltDBTestSuite) TestBoltDB_ListSubscriptions() {
	s.now.Set(testNow)
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 1).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 20).Online().Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice_b", 1).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("bob", 1).Build()))

	actual, err := s.store.ListSubscriptions("alice")
	s.Require().NoError(err, "error listing subscriptions")
	s.Equal([]Subscription{
		NewSubscription("alice", 1).WithCreatedAt(testNow).Build(),
		NewSubscription("alice", 20).Online().WithCreatedAt(testNow).Build(),
	}, actual)

	actual, err = s.store.ListSubscriptions("carol")
	s.Require().NoError(err, "error listing subscriptions")
	s.Empty(actual)
}

func (s *BoltDBTestSuite) TestBoltDB_SubscriptionsByUsername() {
	actual, err := s.store.SubscriptionsByUsername()
	s.Require().NoError(err)
	s.Empty(actual)

	s.now.Set(testNow)
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 20).Online().Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 1).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice_b", 1).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("bob", 3).Build()))

	actual, err = s.store.SubscriptionsByUsername()
	s.Require().NoError(err)
	s.Equal(map[string][]Subscription{
		"alice": {
			NewSubscription("alice", 1).WithCreatedAt(testNow).Build(),
			NewSubscription("alice", 20).Online().WithCreatedAt(testNow).Build(),
		},
		"alice_b": {NewSubscription("alice_b", 1).WithCreatedAt(testNow).Build()},
		"bob":     {NewSubscription("bob", 3).WithCreatedAt(testNow).Build()},
	}, actual)
}

func (s *BoltDBTestSuite) TestBoltDB_ListChatIDs() {
	ids, err := s.store.ListChatIDs()
	s.Require().NoError(err)
	s.Empty(ids)

	s.Require().NoError(s.store.PutSubscription(NewSubscription("bob", 20).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 3).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("bob", 3).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("carol", -100).Build()))

	ids, err = s.store.ListChatIDs()
	s.Require().NoError(err)
	s.Equal([]int64{-100, 3, 20}, ids)
}

func (s *BoltDBTestSuite) TestBoltDB_ListChatSubscriptions() {
	s.now.Set(testNow)
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 1).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 2).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("bob", 1).Online().Build()))

	actual, err := s.store.ListChatSubscriptions(1)
	s.Require().NoError(err, "error listing chat subscriptions")
	s.Equal([]Subscription{
		NewSubscription("alice", 1).WithCreatedAt(testNow).Build(),
		NewSubscription("bob", 1).Online().WithCreatedAt(testNow).Build(),
	}, actual)

	actual, err = s.store.ListChatSubscriptions(3)
	s.Require().NoError(err, "error listing chat subscriptions")
	s.Empty(actual)
}

func (s *BoltDBTestSuite) TestBoltDB_GetSubscription() {
	s.now.Set(testNow)
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 1).Build()))

	actual, ok, err := s.store.GetSubscription("alice", 1)
	s.Require().NoError(err, "error getting subscription")
	if s.True(ok) {
		s.Equal(NewSubscription("alice", 1).WithCreatedAt(testNow).Build(), actual)
	}

	_, ok, err = s.store.GetSubscription("alice", 2)
	s.Require().NoError(err, "error getting subscription")
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_PutSubscription() {
	s.now.Set(testNow)

	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 1).WithCreatedAt(time.Time{}).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 2).Build()))

	expected1 := NewSubscription("alice", 1).WithCreatedAt(testNow).Build()
	expected2 := NewSubscription("alice", 2).WithCreatedAt(testNow).Build()
	s.Equal(expected1, s.mustGetSubscription("alice", 1))
	s.Equal(expected2, s.mustGetSubscription("alice", 2))

	// make sure created at is not overridden
	s.now.Set(testNow.Add(24 * time.Hour))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 2).Online().Build()))
	s.Equal(NewSubscription("alice", 2).Online().WithCreatedAt(testNow).Build(), s.mustGetSubscription("alice", 2))
}

func (s *BoltDBTestSuite) TestBoltDB_SetOnline() {
	s.now.Set(testNow)
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 1).Build()))

	changedAt := testNow.Add(time.Hour)
	s.now.Set(changedAt)
	s.Require().NoError(s.store.SetOnline("alice", 1, true))
	s.Equal(
		NewSubscription("alice", 1).Online().WithCreatedAt(testNow).WithChangedAt(changedAt).Build(),
		s.mustGetSubscription("alice", 1),
	)

	s.Require().NoError(s.store.SetOnline("alice", 1, false))
	s.Equal(
		NewSubscription("alice", 1).WithCreatedAt(testNow).WithChangedAt(changedAt).Build(),
		s.mustGetSubscription("alice", 1),
	)

	err := s.store.SetOnline("alice", 2, true)
	s.ErrorIs(err, ErrNotFound)
	s.ErrorContains(err, "subscription alice/2")
	_, ok, err := s.store.GetSubscription("alice", 2)
	s.Require().NoError(err)
	s.False(ok, "SetOnline must not create subscriptions")
}

func (s *BoltDBTestSuite) TestBoltDB_DeleteSubscription() {
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 1).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 2).Build()))

	s.Require().NoError(s.store.DeleteSubscription("alice", 1))
	s.Require().NoError(s.store.DeleteSubscription("alice", 3), "deleting missing subscription is not an error")

	_, ok, err := s.store.GetSubscription("alice", 1)
	s.Require().NoError(err)
	s.False(ok)
	s.mustGetSubscription("alice", 2)
}

func (s *BoltDBTestSuite) TestBoltDB_PurgeChat() {
	s.Require().NoError(s.store.PutSubscription(NewSubscription("alice", 1).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("bob", 1).Build()))
	s.Require().NoError(s.store.PutSubscription(NewSubscription("bob", 11).Build()))
	s.Require().NoError(s.store.PutPreferences(Preferences{ChatID: 1}))
	s.Require().NoError(s.store.PutPreferences(Preferences{ChatID: 11}))

	s.Require().NoError(s.store.PurgeChat(1))

	subs, err := s.store.ListChatSubscriptions(1)
	s.Require().NoError(err)
	s.Empty(subs)
	prefs, err := s.store.GetPreferences(1)
	s.Require().NoError(err)
	s.Equal(DefaultPreferences(1), prefs)

	s.mustGetSubscription("bob", 11)
	prefs, err = s.store.GetPreferences(11)
	s.Require().NoError(err)
	s.Equal(Preferences{ChatID: 11}, prefs)

	usernames, err := s.store.ListUsernames()
	s.Require().NoError(err)
	s.Equal([]string{"bob"}, usernames)
}

func (s *BoltDBTestSuite) mustGetSubscription(username string, chatID int64) Subscription {
	res, ok, err := s.store.GetSubscription(username, chatID)
	s.Require().NoError(err, "error getting subscription")
	s.Require().True(ok)
	return res
}
