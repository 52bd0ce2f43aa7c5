package migrations

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.etcd.io/bbolt"

	v1 "github.com/Roma7-7-7/room-notifier/internal/dal/migrations/v1"
	v2 "github.com/Roma7-7-7/room-notifier/internal/dal/migrations/v2"
	v3 "github.com/Roma7-7-7/room-notifier/internal/dal/migrations/v3"
	v4 "github.com/Roma7-7-7/room-notifier/internal/dal/migrations/v4"
)

// Migration represents a database migration
type Migration interface {
	// Version returns the migration version number (1, 2, 3, ...)
	Version() int

	// Description returns a human-readable description of what this migration does
	Description() string

	// Up performs the migration on the provided database
	Up(db *bbolt.DB) error
}

var registeredMigrations []Migration

const migrationsBucket = "migrations"

func init() {
	registerMigration(v1.New())
	registerMigration(v2.New())
	registerMigration(v3.New())
	registerMigration(v4.New())
}

func registerMigration(m Migration) {
	registeredMigrations = append(registeredMigrations, m)
}

// RunMigrations executes all pending migrations in version order
func RunMigrations(db *bbolt.DB, log *slog.Logger) error {
	log = log.With("component", "migrations")

	if err := ensureMigrationsBucket(db); err != nil {
		return fmt.Errorf("ensure migrations bucket: %w", err)
	}

	applied, err := getAppliedMigrations(db)
	if err != nil {
		return fmt.Errorf("get applied migrations: %w", err)
	}

	slices.SortFunc(registeredMigrations, func(a, b Migration) int {
		return a.Version() - b.Version()
	})

	appliedCount := 0
	for _, migration := range registeredMigrations {
		version := migration.Version()

		if appliedAt, ok := applied[version]; ok {
			log.Debug("skipping applied migration",
				"version", version,
				"applied_at", appliedAt.Format(time.RFC3339))
			continue
		}

		log.Info("applying migration", "version", version, "description", migration.Description())

		start := time.Now()
		if err := migration.Up(db); err != nil {
			return fmt.Errorf("migration v%d failed: %w", version, err)
		}

		if err := recordMigration(db, version); err != nil {
			return fmt.Errorf("record migration v%d: %w", version, err)
		}

		appliedCount++
		log.Info("migration applied", "version", version, "duration", time.Since(start))
	}

	log.Info("migrations completed", "applied_count", appliedCount)
	return nil
}

func ensureMigrationsBucket(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(migrationsBucket))
		return err
	})
}

func getAppliedMigrations(db *bbolt.DB) (map[int]time.Time, error) {
	applied := make(map[int]time.Time)

	err := db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(migrationsBucket))
		if b == nil {
			return nil
		}

		return b.ForEach(func(k, v []byte) error {
			var version int
			if _, err := fmt.Sscanf(string(k), "v%d", &version); err != nil {
				return fmt.Errorf("parse version from key %s: %w", k, err)
			}

			timestamp, err := time.Parse(time.RFC3339, string(v))
			if err != nil {
				return fmt.Errorf("parse timestamp for v%d: %w", version, err)
			}

			applied[version] = timestamp
			return nil
		})
	})

	return applied, err
}

func recordMigration(db *bbolt.DB, version int) error {
	return db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(migrationsBucket))
		if b == nil {
			return errors.New("migrations bucket not found")
		}
		return b.Put(fmt.Appendf(nil, "v%d", version), []byte(time.Now().Format(time.RFC3339)))
	})
}
