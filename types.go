package tally

import (
	"encoding/binary"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind is a typed string identifying one of the three record collections.
type Kind string

// Record kinds. The plural forms double as the JSON property names of the
// aggregate document, matching the legacy on-disk layout.
const (
	Expenses    Kind = "expenses"
	Assets      Kind = "assets"
	Liabilities Kind = "liabilities"
)

// ParseKind parses a user-supplied kind name, accepting singular and plural.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expense", "expenses":
		return Expenses, nil
	case "asset", "assets":
		return Assets, nil
	case "liability", "liabilities":
		return Liabilities, nil
	default:
		return "", fmt.Errorf("unknown record kind: %q", s)
	}
}

// Record is the common interface of the three record types.
//
// All field values are plain strings: records originate from forms and CSV
// files, and numeric coercion is deferred to aggregation and formatting time.
type Record interface {
	Kind() Kind
	Id() string
	// fields returns the record's key/value pairs in canonical key order,
	// known fields first then Extra keys sorted.
	fields() []field
	// withID returns a copy of the record with the given id.
	withID(id string) Record
}

// field is one key/value pair of a record, used for CSV and rendering.
type field struct{ Key, Value string }

// Expense is a spending record.
type Expense struct {
	ID       string
	Date     string // calendar date string, ISO-8601 expected but not enforced
	Category string
	Amount   string
	Note     string
	Extra    Extra
}

// Asset is something owned.
type Asset struct {
	ID    string
	Name  string
	Type  string
	Value string
	Extra Extra
}

// Liability is something owed.
type Liability struct {
	ID     string
	Name   string
	Type   string
	Amount string
	Extra  Extra
}

// Extra holds fields that do not belong to the record's schema, typically
// mismatched headers from an imported CSV file. They are carried through
// persistence and export untouched.
type Extra map[string]string

func (e Extra) sortedKeys() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e Extra) fields() []field {
	var fs []field
	for _, k := range e.sortedKeys() {
		fs = append(fs, field{k, e[k]})
	}
	return fs
}

func (e Expense) Kind() Kind { return Expenses }
func (e Expense) Id() string { return e.ID }
func (e Expense) fields() []field {
	fs := []field{
		{"id", e.ID},
		{"date", e.Date},
		{"category", e.Category},
		{"amount", e.Amount},
		{"note", e.Note},
	}
	return append(fs, e.Extra.fields()...)
}
func (e Expense) withID(id string) Record { e.ID = id; return e }

func (a Asset) Kind() Kind { return Assets }
func (a Asset) Id() string { return a.ID }
func (a Asset) fields() []field {
	fs := []field{
		{"id", a.ID},
		{"name", a.Name},
		{"type", a.Type},
		{"value", a.Value},
	}
	return append(fs, a.Extra.fields()...)
}
func (a Asset) withID(id string) Record { a.ID = id; return a }

func (l Liability) Kind() Kind { return Liabilities }
func (l Liability) Id() string { return l.ID }
func (l Liability) fields() []field {
	fs := []field{
		{"id", l.ID},
		{"name", l.Name},
		{"type", l.Type},
		{"amount", l.Amount},
	}
	return append(fs, l.Extra.fields()...)
}
func (l Liability) withID(id string) Record { l.ID = id; return l }

// newID returns a fresh record id from the wall clock, in milliseconds.
// Uniqueness is probabilistic: two interactive creations in the same
// millisecond collide. Bulk imports use newImportID instead.
func newID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// newImportID returns a fresh record id for bulk imports: the millisecond
// timestamp suffixed with three random digits, keeping rows of a single
// import apart. Ids stay numeric so the id-descending display order keeps
// working.
func newImportID() string {
	u := uuid.New()
	suffix := binary.BigEndian.Uint32(u[0:4]) % 1000
	return fmt.Sprintf("%s%03d", newID(), suffix)
}

// moreRecent compares two ids for the newest-first display order. Numeric ids
// (the normal case) compare as numbers, anything else falls back to string
// comparison.
func moreRecent(a, b string) bool {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return na > nb
	}
	return a > b
}
