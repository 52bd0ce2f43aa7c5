package dal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

const subscriptionsBucket = "subscriptions"

// Subscription is a single (room, chat) pair. Online holds the last state the chat was told about.
type Subscription struct {
	Username  string    `json:"username"`
	ChatID    int64     `json:"chat_id"`
	Online    bool      `json:"online"`
	CreatedAt time.Time `json:"created_at"`
	ChangedAt time.Time `json:"changed_at,omitzero"`
}

// ListUsernames returns every distinct followed room in key order
func (s *BoltDB) ListUsernames() ([]string, error) {
	var res []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(subscriptionsBucket)).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			username, _, err := parseSubscriptionKey(k)
			if err != nil {
				return err
			}
			if len(res) == 0 || res[len(res)-1] != username {
				res = append(res, username)
			}
		}
		return nil
	})

	return res, err
}

// ListSubscriptions returns all subscribers of a room
func (s *BoltDB) ListSubscriptions(username string) ([]Subscription, error) {
	var res []Subscription

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(subscriptionsBucket)).Cursor()
		prefix := []byte(username + "/")
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var sub Subscription
			if err := json.Unmarshal(v, &sub); err != nil {
				return fmt.Errorf("unmarshal subscription %s: %w", k, err)
			}
			res = append(res, sub)
		}
		return nil
	})

	return res, err
}

// SubscriptionsByUsername reads every subscription grouped by room in a single transaction,
// so the result is one point in time view of the bucket
func (s *BoltDB) SubscriptionsByUsername() (map[string][]Subscription, error) {
	res := make(map[string][]Subscription)

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(subscriptionsBucket)).ForEach(func(k, v []byte) error {
			var sub Subscription
			if err := json.Unmarshal(v, &sub); err != nil {
				return fmt.Errorf("unmarshal subscription %s: %w", k, err)
			}
			res[sub.Username] = append(res[sub.Username], sub)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// ListChatIDs returns every chat following at least one room, sorted
func (s *BoltDB) ListChatIDs() ([]int64, error) {
	seen := make(map[int64]struct{})

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(subscriptionsBucket)).ForEach(func(k, _ []byte) error {
			_, chatID, err := parseSubscriptionKey(k)
			if err != nil {
				return err
			}
			seen[chatID] = struct{}{}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	res := make([]int64, 0, len(seen))
	for chatID := range seen {
		res = append(res, chatID)
	}
	slices.Sort(res)
	return res, nil
}

// ListChatSubscriptions returns all rooms followed by a chat
func (s *BoltDB) ListChatSubscriptions(chatID int64) ([]Subscription, error) {
	var res []Subscription

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(subscriptionsBucket)).ForEach(func(k, v []byte) error {
			_, id, err := parseSubscriptionKey(k)
			if err != nil {
				return err
			}
			if id != chatID {
				return nil
			}
			var sub Subscription
			if err := json.Unmarshal(v, &sub); err != nil {
				return fmt.Errorf("unmarshal subscription %s: %w", k, err)
			}
			res = append(res, sub)
			return nil
		})
	})

	return res, err
}

func (s *BoltDB) GetSubscription(username string, chatID int64) (Subscription, bool, error) {
	var res Subscription
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(subscriptionsBucket)).Get(subscriptionKey(username, chatID))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) PutSubscription(sub Subscription) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscriptionsBucket))
		key := subscriptionKey(sub.Username, sub.ChatID)

		if data := b.Get(key); data != nil {
			var existing Subscription
			if err := json.Unmarshal(data, &existing); err != nil {
				return fmt.Errorf("unmarshal existing subscription %s: %w", key, err)
			}
			// make sure we do not override created at
			sub.CreatedAt = existing.CreatedAt
		} else {
			sub.CreatedAt = s.now()
		}

		return putSubscription(b, key, sub)
	})
}

// SetOnline stores the state last announced to the chat
func (s *BoltDB) SetOnline(username string, chatID int64, online bool) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscriptionsBucket))
		key := subscriptionKey(username, chatID)

		data := b.Get(key)
		if data == nil {
			return fmt.Errorf("subscription %s: %w", key, ErrNotFound)
		}
		var sub Subscription
		if err := json.Unmarshal(data, &sub); err != nil {
			return fmt.Errorf("unmarshal subscription %s: %w", key, err)
		}

		sub.Online = online
		sub.ChangedAt = s.now()
		return putSubscription(b, key, sub)
	})
}

func (s *BoltDB) DeleteSubscription(username string, chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		key := subscriptionKey(username, chatID)
		if err := tx.Bucket([]byte(subscriptionsBucket)).Delete(key); err != nil {
			return fmt.Errorf("delete subscription %s: %w", key, err)
		}
		return nil
	})
}

// PurgeChat removes every subscription and the preferences of a chat in one transaction
func (s *BoltDB) PurgeChat(chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscriptionsBucket))

		var keys [][]byte
		err := b.ForEach(func(k, _ []byte) error {
			_, id, err := parseSubscriptionKey(k)
			if err != nil {
				return err
			}
			if id == chatID {
				keys = append(keys, bytes.Clone(k))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return fmt.Errorf("delete subscription %s: %w", k, err)
			}
		}

		if err := tx.Bucket([]byte(preferencesBucket)).Delete(i64tob(chatID)); err != nil {
			return fmt.Errorf("delete preferences for chatID=%d: %w", chatID, err)
		}

		return nil
	})
}

func putSubscription(b *bbolt.Bucket, key []byte, sub Subscription) error {
	data, err := json.Marshal(&sub)
	if err != nil {
		return fmt.Errorf("marshal subscription %s: %w", key, err)
	}
	if err := b.Put(key, data); err != nil {
		return fmt.Errorf("put subscription %s: %w", key, err)
	}
	return nil
}

func subscriptionKey(username string, chatID int64) []byte {
	return []byte(username + "/" + strconv.FormatInt(chatID, 10))
}

func parseSubscriptionKey(k []byte) (string, int64, error) {
	i := strings.LastIndexByte(string(k), '/')
	if i <= 0 {
		return "", 0, fmt.Errorf("malformed subscription key %q", k)
	}
	chatID, err := strconv.ParseInt(string(k[i+1:]), 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("parse chat id from key %q: %w", k, err)
	}
	return string(k[:i]), chatID, nil
}
