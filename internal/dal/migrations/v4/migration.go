package v4

import (
	"go.etcd.io/bbolt"
)

// MigrationV4 creates the bucket of chats authorized as bot admins.
type MigrationV4 struct{}

func (m *MigrationV4) Version() int {
	return 4 //nolint:mnd // version 4
}

func (m *MigrationV4) Description() string {
	return "Create admins bucket"
}

func (m *MigrationV4) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte("admins"))
		return err
	})
}

func New() *MigrationV4 {
	return &MigrationV4{}
}
