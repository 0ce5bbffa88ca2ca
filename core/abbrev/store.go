package abbrev

import (
	"database/sql"
	"fmt"

	"github.com/FocuswithJustin/LaurelLatin/core/errors"
)

// Store is a SQLite-backed abbreviation dictionary. It supports both the
// pure Go driver (default) and the CGO driver (build with -tags cgo_sqlite);
// see driver_purego.go and driver_cgo.go.
//
// Store is not itself a Source: database access can fail, so callers load a
// snapshot with Load and hand the resulting List to the segmenter.
type Store struct {
	db *sql.DB
}

// DriverType returns a string identifying the underlying SQLite
// implementation: "purego" for modernc.org/sqlite, "cgo" for mattn/go-sqlite3.
func DriverType() string {
	return driverType
}

// DriverPackage returns the import path of the active SQLite driver.
func DriverPackage() string {
	return driverPackage
}

// OpenStore opens (creating if necessary) an abbreviation database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open abbreviation store: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS abbreviations (
		abbr TEXT PRIMARY KEY,
		note TEXT NOT NULL DEFAULT ''
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create abbreviation schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns a snapshot of all stored abbreviations, ordered by literal.
func (s *Store) Load() (List, error) {
	rows, err := s.db.Query(`SELECT abbr FROM abbreviations ORDER BY abbr`)
	if err != nil {
		return nil, fmt.Errorf("load abbreviations: %w", err)
	}
	defer rows.Close()

	var list List
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("scan abbreviation row: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate abbreviation rows: %w", err)
	}
	return list, nil
}

// Put inserts or updates an abbreviation literal with an optional note.
// The literal is stored without its trailing period.
func (s *Store) Put(abbr, note string) error {
	if abbr == "" {
		return errors.NewValidation("abbr", "must not be empty")
	}
	if abbr[len(abbr)-1] == '.' {
		abbr = abbr[:len(abbr)-1]
	}
	_, err := s.db.Exec(
		`INSERT INTO abbreviations (abbr, note) VALUES (?, ?)
		 ON CONFLICT(abbr) DO UPDATE SET note = excluded.note`,
		abbr, note)
	if err != nil {
		return fmt.Errorf("store abbreviation %q: %w", abbr, err)
	}
	return nil
}

// Remove deletes an abbreviation literal. Removing an unknown literal
// returns a NotFoundError.
func (s *Store) Remove(abbr string) error {
	res, err := s.db.Exec(`DELETE FROM abbreviations WHERE abbr = ?`, abbr)
	if err != nil {
		return fmt.Errorf("remove abbreviation %q: %w", abbr, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove abbreviation %q: %w", abbr, err)
	}
	if n == 0 {
		return errors.NewNotFound("abbreviation", abbr)
	}
	return nil
}

// Seed inserts every literal from src that is not already present.
func (s *Store) Seed(src Source) error {
	for _, a := range src.Abbreviations() {
		_, err := s.db.Exec(
			`INSERT OR IGNORE INTO abbreviations (abbr, note) VALUES (?, '')`, a)
		if err != nil {
			return fmt.Errorf("seed abbreviation %q: %w", a, err)
		}
	}
	return nil
}
