package tally

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sort"
)

// ErrNotFound is returned by Update and Delete when no record matches the id.
var ErrNotFound = errors.New("record not found")

// Store holds the aggregate document in memory and persists it wholesale to
// its slot after every mutation. It is single-actor by design: all mutations
// happen on one goroutine in response to discrete user actions, so the last
// write wins and no locking is needed.
type Store struct {
	slot Slot
	doc  *Document
}

// Open loads the persisted document from the slot. An absent or malformed
// slot initializes an empty document instead of failing: the persisted state
// is a cache of the user's data, never a reason to crash.
func Open(slot Slot) *Store {
	s := &Store{slot: slot, doc: NewDocument()}

	data, err := slot.Read()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s // first run
	case err != nil:
		log.Printf("warning: could not read persisted data, starting empty: %v", err)
		return s
	}

	doc, err := DecodeDocument(bytes.NewReader(data))
	if err != nil {
		log.Printf("warning: persisted data is malformed, starting empty: %v", err)
		return s
	}
	s.doc = doc
	return s
}

// Document returns the current in-memory aggregate document.
func (s *Store) Document() *Document { return s.doc }

// Add assigns a fresh id to the record, appends it to its collection, and
// persists. It returns the stored record.
func (s *Store) Add(r Record) (Record, error) {
	r = r.withID(newID())
	if err := s.doc.append(r); err != nil {
		return nil, err
	}
	if err := s.Persist(); err != nil {
		return nil, err
	}
	return r, nil
}

// Update replaces the record at id wholesale, preserving its id, and
// persists. It returns ErrNotFound when the id is absent from the collection.
func (s *Store) Update(kind Kind, id string, r Record) error {
	if !s.doc.replace(kind, id, r) {
		return fmt.Errorf("update %s %q: %w", kind, id, ErrNotFound)
	}
	return s.Persist()
}

// Delete removes the record with the matching id and persists. It returns
// ErrNotFound when the id is absent. Confirmation of the deletion is the
// caller's concern.
func (s *Store) Delete(kind Kind, id string) error {
	if !s.doc.remove(kind, id) {
		return fmt.Errorf("delete %s %q: %w", kind, id, ErrNotFound)
	}
	return s.Persist()
}

// Merge appends imported records to their collections and persists once.
// Records are expected to carry fresh import ids already; see ImportRecords.
func (s *Store) Merge(recs []Record) error {
	for _, r := range recs {
		if err := s.doc.append(r); err != nil {
			return err
		}
	}
	return s.Persist()
}

// Persist serializes the full aggregate document and overwrites the slot.
func (s *Store) Persist() error {
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, s.doc); err != nil {
		return err
	}
	return s.slot.Write(buf.Bytes())
}

// Clear resets the store to three empty collections and removes the
// persisted slot entirely.
func (s *Store) Clear() error {
	s.doc = NewDocument()
	return s.slot.Remove()
}

// Sorted returns the records of a kind in display order: newest first, by id
// descending. Insertion order is preserved in the document but never relied
// upon for display.
func (s *Store) Sorted(kind Kind) []Record {
	recs := s.doc.Records(kind)
	sort.SliceStable(recs, func(i, j int) bool {
		return moreRecent(recs[i].Id(), recs[j].Id())
	})
	return recs
}
