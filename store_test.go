package tally

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return Open(NewFileSlot(filepath.Join(t.TempDir(), "tally.json")))
}

func TestStoreAdd(t *testing.T) {
	s := tempStore(t)

	stored, err := s.Add(Expense{Date: "2024-03-01", Category: "Rent", Amount: "500"})
	if err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}
	if stored.Id() == "" {
		t.Error("Add() stored a record without an id")
	}
	if got := len(s.Document().Expenses); got != 1 {
		t.Errorf("document has %d expenses, want 1", got)
	}
}

func TestStoreAddDeleteLength(t *testing.T) {
	s := tempStore(t)

	before := len(s.Document().Assets)
	stored, err := s.Add(Asset{Name: "Savings", Value: "100"})
	if err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}
	if err := s.Delete(Assets, stored.Id()); err != nil {
		t.Fatalf("Delete() returned an unexpected error: %v", err)
	}
	if got := len(s.Document().Assets); got != before {
		t.Errorf("document has %d assets after add+delete, want %d", got, before)
	}
}

func TestStoreUpdatePreservesID(t *testing.T) {
	s := tempStore(t)

	stored, err := s.Add(Liability{Name: "Card", Amount: "400"})
	if err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}
	if err := s.Update(Liabilities, stored.Id(), Liability{Name: "Card", Amount: "250"}); err != nil {
		t.Fatalf("Update() returned an unexpected error: %v", err)
	}

	got := s.Document().Liabilities[0]
	if got.ID != stored.Id() {
		t.Errorf("Update() changed the id from %q to %q", stored.Id(), got.ID)
	}
	if got.Amount != "250" {
		t.Errorf("Amount = %q after update, want %q", got.Amount, "250")
	}
}

func TestStoreUpdateUnknownID(t *testing.T) {
	s := tempStore(t)
	err := s.Update(Expenses, "nope", Expense{Category: "Rent"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestStoreDeleteUnknownID(t *testing.T) {
	s := tempStore(t)
	err := s.Delete(Expenses, "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.json")

	s := Open(NewFileSlot(path))
	if _, err := s.Add(Expense{Date: "2024-03-01", Category: "Rent", Amount: "500"}); err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}

	// A second store opened on the same slot sees the persisted record.
	again := Open(NewFileSlot(path))
	if got := len(again.Document().Expenses); got != 1 {
		t.Errorf("reopened store has %d expenses, want 1", got)
	}
}

// A malformed persisted document loads as three empty collections.
func TestStoreOpenMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	s := Open(NewFileSlot(path))
	doc := s.Document()
	if len(doc.Expenses) != 0 || len(doc.Assets) != 0 || len(doc.Liabilities) != 0 {
		t.Errorf("Open() on malformed data = %d/%d/%d records, want empty",
			len(doc.Expenses), len(doc.Assets), len(doc.Liabilities))
	}
}

func TestStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.json")

	s := Open(NewFileSlot(path))
	if _, err := s.Add(Asset{Name: "Savings", Value: "100"}); err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() returned an unexpected error: %v", err)
	}

	if got := len(s.Document().Assets); got != 0 {
		t.Errorf("document has %d assets after clear, want 0", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("persisted file still exists after clear (stat error: %v)", err)
	}
}

func TestStoreSorted(t *testing.T) {
	s := tempStore(t)
	s.doc.append(Expense{ID: "1709312400000", Category: "old", Amount: "1"})
	s.doc.append(Expense{ID: "1709312400002", Category: "newest", Amount: "1"})
	s.doc.append(Expense{ID: "1709312400001", Category: "middle", Amount: "1"})

	recs := s.Sorted(Expenses)
	want := []string{"1709312400002", "1709312400001", "1709312400000"}
	for i, id := range want {
		if recs[i].Id() != id {
			t.Errorf("Sorted()[%d].Id() = %q, want %q", i, recs[i].Id(), id)
		}
	}
}

func TestStoreMerge(t *testing.T) {
	s := tempStore(t)
	if _, err := s.Add(Expense{Date: "2024-03-01", Category: "Rent", Amount: "500"}); err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}

	imported := []Record{
		Expense{ID: newImportID(), Date: "2024-03-02", Category: "Food", Amount: "20"},
		Expense{ID: newImportID(), Date: "2024-03-03", Category: "Food", Amount: "30"},
	}
	if err := s.Merge(imported); err != nil {
		t.Fatalf("Merge() returned an unexpected error: %v", err)
	}

	// Merge appends: existing records stay, duplicates are not collapsed.
	if got := len(s.Document().Expenses); got != 3 {
		t.Errorf("document has %d expenses after merge, want 3", got)
	}
}
