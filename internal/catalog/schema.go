package catalog

import (
	"database/sql"

	"github.com/llehouerou/songbook/internal/songs"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB, store *songs.Store) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`)
	if err != nil {
		return err
	}

	if err := store.CreateTable(); err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
