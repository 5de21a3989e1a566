package tally

import (
	"fmt"
	"os"
	"path/filepath"
)

// Slot is one named slot in a key-value persistent store, holding a single
// serialized document. Writes are wholesale overwrites; there is no partial
// or incremental persistence.
type Slot interface {
	// Read returns the slot content. It returns an error satisfying
	// errors.Is(err, fs.ErrNotExist) when the slot is absent.
	Read() ([]byte, error)
	// Write overwrites the slot content atomically from the caller's
	// perspective.
	Write(data []byte) error
	// Remove deletes the slot entirely. Removing an absent slot is not an
	// error.
	Remove() error
}

// FileSlot stores the document in a single file on disk, the default backend.
type FileSlot struct {
	Path string
}

// NewFileSlot returns a slot backed by the given file path.
func NewFileSlot(path string) *FileSlot { return &FileSlot{Path: path} }

func (s *FileSlot) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("could not read slot %q: %w", s.Path, err)
	}
	return data, nil
}

func (s *FileSlot) Write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("could not create directory for slot %q: %w", s.Path, err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("could not write slot %q: %w", s.Path, err)
	}
	return nil
}

func (s *FileSlot) Remove() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not remove slot %q: %w", s.Path, err)
	}
	return nil
}
