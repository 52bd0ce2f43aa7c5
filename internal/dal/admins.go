package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const adminsBucket = "admins"

type Admin struct {
	ChatID       int64     `json:"chat_id"`
	AuthorizedAt time.Time `json:"authorized_at"`
}

func (s *BoltDB) IsAdmin(chatID int64) (bool, error) {
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket([]byte(adminsBucket)).Get(i64tob(chatID)) != nil
		return nil
	})

	return found, err
}

// PutAdmin authorizes the chat, an existing authorization keeps its original time
func (s *BoltDB) PutAdmin(chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(adminsBucket))
		if b.Get(i64tob(chatID)) != nil {
			return nil
		}

		data, err := json.Marshal(&Admin{ChatID: chatID, AuthorizedAt: s.now()})
		if err != nil {
			return fmt.Errorf("marshal admin chatID=%d: %w", chatID, err)
		}
		if err := b.Put(i64tob(chatID), data); err != nil {
			return fmt.Errorf("put admin chatID=%d: %w", chatID, err)
		}
		return nil
	})
}
