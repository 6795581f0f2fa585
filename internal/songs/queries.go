package songs

import (
	"database/sql"
	"errors"
)

// ByID returns a song by its id.
// Returns sql.ErrNoRows unchanged when no such song exists.
func (s *Store) ByID(id int64) (*Song, error) {
	row := s.db.QueryRow(`SELECT id, name, album FROM songs WHERE id = ?`, id)

	var song Song
	if err := row.Scan(&song.ID, &song.Name, &song.Album); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, wrapStorageErr("load song", err)
	}
	return &song, nil
}

// ByNameAndAlbum returns every song matching both name and album, in
// insertion order. Duplicates are allowed, so this can return more
// than one row.
func (s *Store) ByNameAndAlbum(name, album string) ([]Song, error) {
	rows, err := s.db.Query(`
		SELECT id, name, album FROM songs
		WHERE name = ? AND album = ?
		ORDER BY id
	`, name, album)
	if err != nil {
		return nil, wrapStorageErr("load songs", err)
	}
	defer rows.Close()

	return collect(rows)
}

// All returns every song in the catalog, sorted case-insensitively by
// name then album.
func (s *Store) All() ([]Song, error) {
	rows, err := s.db.Query(`
		SELECT id, name, album FROM songs
		ORDER BY name COLLATE NOCASE, album COLLATE NOCASE
	`)
	if err != nil {
		return nil, wrapStorageErr("list songs", err)
	}
	defer rows.Close()

	return collect(rows)
}

// InAlbum returns all songs in the given album, sorted by name.
func (s *Store) InAlbum(album string) ([]Song, error) {
	rows, err := s.db.Query(`
		SELECT id, name, album FROM songs
		WHERE album = ?
		ORDER BY name COLLATE NOCASE
	`, album)
	if err != nil {
		return nil, wrapStorageErr("list songs", err)
	}
	defer rows.Close()

	return collect(rows)
}

// Albums returns all distinct album names in the catalog.
func (s *Store) Albums() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT album FROM songs ORDER BY album COLLATE NOCASE
	`)
	if err != nil {
		return nil, wrapStorageErr("list albums", err)
	}
	defer rows.Close()

	var albums []string
	for rows.Next() {
		var album string
		if err := rows.Scan(&album); err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}
	return albums, rows.Err()
}

// Count returns the total number of songs.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM songs`).Scan(&count)
	if err != nil {
		return 0, wrapStorageErr("count songs", err)
	}
	return count, nil
}

func collect(rows *sql.Rows) ([]Song, error) {
	var list []Song
	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.ID, &song.Name, &song.Album); err != nil {
			return nil, err
		}
		list = append(list, song)
	}
	return list, rows.Err()
}
