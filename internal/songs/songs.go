package songs

import (
	"database/sql"
	"fmt"

	dbutil "github.com/llehouerou/songbook/internal/db"
)

// Song is one catalog entry. ID is zero until the song has been saved.
type Song struct {
	ID    int64
	Name  string
	Album string
}

// Saved reports whether the song has been persisted.
func (s *Song) Saved() bool {
	return s.ID != 0
}

// NewSong builds an in-memory song. No I/O happens until Save.
func NewSong(name, album string) *Song {
	return &Song{Name: name, Album: album}
}

// Store provides database operations for songs.
type Store struct {
	db *sql.DB
}

// New creates a new Store bound to db.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateTable creates the songs table if it does not exist.
// Safe to call repeatedly; existing rows are left untouched.
func (s *Store) CreateTable() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS songs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			album TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create songs table: %w", err)
	}
	return nil
}

// Save inserts the song and assigns the generated row id onto it.
// Requires the songs table to exist; see ErrNoTable.
func (s *Store) Save(song *Song) error {
	result, err := s.db.Exec(`
		INSERT INTO songs (name, album) VALUES (?, ?)
	`, song.Name, song.Album)
	if err != nil {
		return wrapStorageErr("save song", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("save song: %w", err)
	}
	song.ID = id
	return nil
}

// Create builds a song from name and album, saves it, and returns the
// persisted instance.
func (s *Store) Create(name, album string) (*Song, error) {
	song := NewSong(name, album)
	if err := s.Save(song); err != nil {
		return nil, err
	}
	return song, nil
}

// Rename updates a song's name.
func (s *Store) Rename(id int64, name string) error {
	_, err := s.db.Exec(`UPDATE songs SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return wrapStorageErr("rename song", err)
	}
	return nil
}

// Delete removes a song by id. Deleting an absent id is not an error.
func (s *Store) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM songs WHERE id = ?`, id)
	if err != nil {
		return wrapStorageErr("delete song", err)
	}
	return nil
}

// Import inserts all songs in a single transaction and assigns their
// generated ids. Either every song is inserted or none are; ids are
// only written back after the transaction commits.
func (s *Store) Import(list []Song) error {
	ids := make([]int64, len(list))
	err := dbutil.WithTx(s.db, func(tx *sql.Tx) error {
		for i := range list {
			result, err := tx.Exec(`
				INSERT INTO songs (name, album) VALUES (?, ?)
			`, list[i].Name, list[i].Album)
			if err != nil {
				return wrapStorageErr("import songs", err)
			}
			id, err := result.LastInsertId()
			if err != nil {
				return err
			}
			ids[i] = id
		}
		return nil
	})
	if err != nil {
		return err
	}
	for i := range list {
		list[i].ID = ids[i]
	}
	return nil
}
