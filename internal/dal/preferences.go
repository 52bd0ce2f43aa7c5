package dal

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

const preferencesBucket = "preferences"

type Preferences struct {
	ChatID             int64 `json:"chat_id"`
	LinkPreview        bool  `json:"link_preview"`
	NotificationsSound bool  `json:"notifications_sound"`
}

// DefaultPreferences is what a chat gets until it changes anything in /settings
func DefaultPreferences(chatID int64) Preferences {
	return Preferences{
		ChatID:             chatID,
		LinkPreview:        true,
		NotificationsSound: true,
	}
}

// GetPreferences never reports a missing record, defaults are returned instead
func (s *BoltDB) GetPreferences(chatID int64) (Preferences, error) {
	res := DefaultPreferences(chatID)

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(preferencesBucket)).Get(i64tob(chatID))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &res); err != nil {
			return fmt.Errorf("unmarshal preferences for chatID=%d: %w", chatID, err)
		}
		return nil
	})

	return res, err
}

func (s *BoltDB) PutPreferences(p Preferences) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(&p)
		if err != nil {
			return fmt.Errorf("marshal preferences for chatID=%d: %w", p.ChatID, err)
		}
		if err := tx.Bucket([]byte(preferencesBucket)).Put(i64tob(p.ChatID), data); err != nil {
			return fmt.Errorf("put preferences for chatID=%d: %w", p.ChatID, err)
		}
		return nil
	})
}
