package tally

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const slotSchema = `
CREATE TABLE IF NOT EXISTS slots (
	name     TEXT PRIMARY KEY,
	document TEXT NOT NULL
);
`

// SQLiteSlot stores the document as one row of a slots table in a sqlite
// database. The document is still one serialized blob overwritten wholesale;
// sqlite only provides the named key-value slot.
type SQLiteSlot struct {
	db   *sql.DB
	name string
}

// OpenSQLiteSlot opens (creating if needed) the sqlite database at path and
// returns the slot with the given name.
func OpenSQLiteSlot(path, name string) (*SQLiteSlot, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("could not create directory for database %q: %w", path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open database %q: %w", path, err)
	}
	if _, err := db.Exec(slotSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create slots table: %w", err)
	}
	return &SQLiteSlot{db: db, name: name}, nil
}

func (s *SQLiteSlot) Read() ([]byte, error) {
	var doc string
	err := s.db.QueryRow(`SELECT document FROM slots WHERE name = ?`, s.name).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("slot %q: %w", s.name, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read slot %q: %w", s.name, err)
	}
	return []byte(doc), nil
}

func (s *SQLiteSlot) Write(data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO slots (name, document) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET document = excluded.document
	`, s.name, string(data))
	if err != nil {
		return fmt.Errorf("could not write slot %q: %w", s.name, err)
	}
	return nil
}

func (s *SQLiteSlot) Remove() error {
	if _, err := s.db.Exec(`DELETE FROM slots WHERE name = ?`, s.name); err != nil {
		return fmt.Errorf("could not remove slot %q: %w", s.name, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteSlot) Close() error { return s.db.Close() }

var _ Slot = (*SQLiteSlot)(nil)
var _ Slot = (*FileSlot)(nil)
