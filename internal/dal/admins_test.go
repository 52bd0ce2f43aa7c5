package dal

import (
	"encoding/json"
	"time"

	"go.etcd.io/bbolt"
)

func (s *BoltDBTestSuite) TestBoltDB_Admins() {
	ok, err := s.store.IsAdmin(1)
	s.Require().NoError(err)
	s.False(ok)

	s.now.Set(testNow)
	s.Require().NoError(s.store.PutAdmin(1))

	ok, err = s.store.IsAdmin(1)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.store.IsAdmin(2)
	s.Require().NoError(err)
	s.False(ok)

	// authorizing again keeps the first authorization time
	s.now.Set(testNow.Add(time.Hour))
	s.Require().NoError(s.store.PutAdmin(1))
	s.Equal(Admin{ChatID: 1, AuthorizedAt: testNow}, s.mustGetAdmin(1))
}

func (s *BoltDBTestSuite) mustGetAdmin(chatID int64) Admin {
	var res Admin
	err := s.db.View(func(tx *bbolt.Tx) error {
		return json.Unmarshal(tx.Bucket([]byte(adminsBucket)).Get(i64tob(chatID)), &res)
	})
	s.Require().NoError(err)
	return res
}
