package v3

import (
	"go.etcd.io/bbolt"
)

// MigrationV3 creates the per chat preferences bucket.
// Chats without a record keep link preview and notification sound enabled.
type MigrationV3 struct{}

func (m *MigrationV3) Version() int {
	return 3 //nolint:mnd // version 3
}

func (m *MigrationV3) Description() string {
	return "Create preferences bucket"
}

func (m *MigrationV3) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte("preferences"))
		return err
	})
}

func New() *MigrationV3 {
	return &MigrationV3{}
}
