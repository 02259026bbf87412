package store

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/migrations"
)

// DB is the local session database behind the sqlite medium.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded kv schema and logs the resulting version.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		return err
	}

	version, err := goose.GetDBVersion(db.DB)
	if err != nil {
		return fmt.Errorf("error reading schema version: %w", err)
	}
	db.logger.Debug().Int64("schema_version", version).Msg("session database migrated")

	return nil
}
