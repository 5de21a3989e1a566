package tally

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/etnz/tally/date"
)

// This file handles the CSV import/export surface of the tracker.

// ErrNothingToExport is returned when a collection is empty: the encoder
// output would be indistinguishable from "never exported", so no file is
// produced at all.
var ErrNothingToExport = errors.New("nothing to export")

// ExportFilename returns the conventional export file name for a collection:
// {collection}_{date}.csv.
func ExportFilename(kind Kind, on date.Date) string {
	return fmt.Sprintf("%s_%s.csv", kind, on)
}

// ExportRecords writes a record collection to w in the tracker's CSV
// dialect. The header is the first record's keys in that record's own key
// order; every record is aligned to it, absent keys exporting as "".
// An empty collection returns ErrNothingToExport without writing.
func ExportRecords(w io.Writer, recs []Record) error {
	if len(recs) == 0 {
		return ErrNothingToExport
	}

	first := recs[0].fields()
	header := make([]string, 0, len(first))
	for _, f := range first {
		header = append(header, f.Key)
	}

	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		byKey := make(map[string]string)
		for _, f := range r.fields() {
			byKey[f.Key] = f.Value
		}
		row := make([]string, len(header))
		for i, key := range header {
			row[i] = byKey[key]
		}
		rows = append(rows, row)
	}

	return EncodeCSV(w, header, rows)
}

// ImportRecords decodes CSV text into records of the given kind, applying
// the import merge policy: every row gets a fresh unique id (ids present in
// the file are discarded, they could collide with existing store ids), known
// headers fill the kind's fields, and any other header is kept as an extra
// field. No schema validation happens here; mismatched files import as-is.
//
// The decoded records are meant to be appended to the store (see
// Store.Merge): imports never replace existing records and never deduplicate
// by content.
func ImportRecords(kind Kind, r io.Reader) ([]Record, error) {
	header, rows, err := DecodeCSV(r)
	if err != nil {
		return nil, err
	}

	var recs []Record
	for _, row := range rows {
		m := make(map[string]string, len(header))
		for i, key := range header {
			m[key] = row[i]
		}
		delete(m, "id") // never reuse ids from the source file

		var rec Record
		switch kind {
		case Expenses:
			rec = Expense{
				Date:     take(m, "date"),
				Category: take(m, "category"),
				Amount:   take(m, "amount"),
				Note:     take(m, "note"),
				Extra:    extraFrom(m),
			}
		case Assets:
			rec = Asset{
				Name:  take(m, "name"),
				Type:  take(m, "type"),
				Value: take(m, "value"),
				Extra: extraFrom(m),
			}
		case Liabilities:
			rec = Liability{
				Name:   take(m, "name"),
				Type:   take(m, "type"),
				Amount: take(m, "amount"),
				Extra:  extraFrom(m),
			}
		default:
			return nil, fmt.Errorf("unknown record kind: %q", kind)
		}
		recs = append(recs, rec.withID(newImportID()))
	}
	return recs, nil
}

// ReadResult is the outcome of a single-shot asynchronous file read.
type ReadResult struct {
	Data []byte
	Err  error
}

// ReadFileAsync starts reading the file and returns a channel that delivers
// exactly one result. There is no cancellation path: once started, the read
// completes or reports its failure once.
func ReadFileAsync(path string) <-chan ReadResult {
	ch := make(chan ReadResult, 1)
	go func() {
		data, err := os.ReadFile(path)
		if err != nil {
			err = fmt.Errorf("could not read %q: %w", path, err)
		}
		ch <- ReadResult{Data: data, Err: err}
	}()
	return ch
}
