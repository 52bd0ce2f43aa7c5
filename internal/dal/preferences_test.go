package dal

func (s *BoltDBTestSuite) TestBoltDB_GetPreferences_Defaults() {
	actual, err := s.store.GetPreferences(1)
	s.Require().NoError(err)
	s.Equal(Preferences{ChatID: 1, LinkPreview: true, NotificationsSound: true}, actual)
}

func (s *BoltDBTestSuite) TestBoltDB_PutPreferences() {
	s.Require().NoError(s.store.PutPreferences(Preferences{ChatID: 1, LinkPreview: false, NotificationsSound: true}))

	actual, err := s.store.GetPreferences(1)
	s.Require().NoError(err)
	s.Equal(Preferences{ChatID: 1, LinkPreview: false, NotificationsSound: true}, actual)

	s.Require().NoError(s.store.PutPreferences(Preferences{ChatID: 1, LinkPreview: true, NotificationsSound: false}))
	actual, err = s.store.GetPreferences(1)
	s.Require().NoError(err)
	s.Equal(Preferences{ChatID: 1, LinkPreview: true, NotificationsSound: false}, actual)

	other, err := s.store.GetPreferences(2)
	s.Require().NoError(err)
	s.Equal(DefaultPreferences(2), other)
}
