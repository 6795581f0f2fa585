// Package catalog owns the lifecycle of the songbook database handle.
package catalog

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/songbook/internal/songs"
)

const (
	appName    = "songbook"
	dbFileName = "songbook.db"
)

// Catalog is an open songbook database. Callers obtain one with Open or
// OpenPath and must Close it when done; nothing else holds the handle.
type Catalog struct {
	db    *sql.DB
	songs *songs.Store
	path  string
}

// Open opens the catalog at the default XDG data location, creating the
// file and schema on first use.
func Open() (*Catalog, error) {
	path, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(path)
}

// OpenPath opens the catalog at an explicit database path.
func OpenPath(path string) (*Catalog, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	store := songs.New(db)
	if err := initSchema(db, store); err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{db: db, songs: store, path: path}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Songs returns the song store bound to this catalog.
func (c *Catalog) Songs() *songs.Store {
	return c.songs
}

// DB exposes the underlying handle for callers that need raw queries.
func (c *Catalog) DB() *sql.DB {
	return c.db
}

// Path returns the database file path.
func (c *Catalog) Path() string {
	return c.path
}
