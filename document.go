package tally

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Document is the aggregate document: the three record collections, stored
// together and persisted wholesale. There is no cross-referential integrity
// between collections.
type Document struct {
	Expenses    []Expense   `json:"expenses"`
	Assets      []Asset     `json:"assets"`
	Liabilities []Liability `json:"liabilities"`
}

// NewDocument creates an empty document with three empty collections.
func NewDocument() *Document {
	return &Document{
		Expenses:    make([]Expense, 0),
		Assets:      make([]Asset, 0),
		Liabilities: make([]Liability, 0),
	}
}

// Records returns the collection of the given kind as a flat record slice,
// in insertion order.
func (d *Document) Records(kind Kind) []Record {
	var recs []Record
	switch kind {
	case Expenses:
		for _, e := range d.Expenses {
			recs = append(recs, e)
		}
	case Assets:
		for _, a := range d.Assets {
			recs = append(recs, a)
		}
	case Liabilities:
		for _, l := range d.Liabilities {
			recs = append(recs, l)
		}
	}
	return recs
}

// append adds a record to the collection matching its kind.
func (d *Document) append(r Record) error {
	switch v := r.(type) {
	case Expense:
		d.Expenses = append(d.Expenses, v)
	case Asset:
		d.Assets = append(d.Assets, v)
	case Liability:
		d.Liabilities = append(d.Liabilities, v)
	default:
		return fmt.Errorf("unsupported record type %T", r)
	}
	return nil
}

// replace swaps the record at id in the collection of the given kind.
// It reports whether the id was found.
func (d *Document) replace(kind Kind, id string, r Record) bool {
	switch kind {
	case Expenses:
		for i, e := range d.Expenses {
			if e.ID == id {
				v, ok := r.(Expense)
				if !ok {
					return false
				}
				v.ID = id
				d.Expenses[i] = v
				return true
			}
		}
	case Assets:
		for i, a := range d.Assets {
			if a.ID == id {
				v, ok := r.(Asset)
				if !ok {
					return false
				}
				v.ID = id
				d.Assets[i] = v
				return true
			}
		}
	case Liabilities:
		for i, l := range d.Liabilities {
			if l.ID == id {
				v, ok := r.(Liability)
				if !ok {
					return false
				}
				v.ID = id
				d.Liabilities[i] = v
				return true
			}
		}
	}
	return false
}

// remove deletes the record at id from the collection of the given kind.
// It reports whether the id was found.
func (d *Document) remove(kind Kind, id string) bool {
	switch kind {
	case Expenses:
		for i, e := range d.Expenses {
			if e.ID == id {
				d.Expenses = append(d.Expenses[:i], d.Expenses[i+1:]...)
				return true
			}
		}
	case Assets:
		for i, a := range d.Assets {
			if a.ID == id {
				d.Assets = append(d.Assets[:i], d.Assets[i+1:]...)
				return true
			}
		}
	case Liabilities:
		for i, l := range d.Liabilities {
			if l.ID == id {
				d.Liabilities = append(d.Liabilities[:i], d.Liabilities[i+1:]...)
				return true
			}
		}
	}
	return false
}

// EncodeDocument serializes the aggregate document as a single JSON object
// to w. Records are flat objects: schema fields first, extra fields merged
// into the same object, matching the legacy layout.
func EncodeDocument(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode document: %w", err)
	}
	return nil
}

// DecodeDocument reads one aggregate document from r. Callers decide what a
// decode failure means; the store treats it as an absent slot.
func DecodeDocument(r io.Reader) (*Document, error) {
	doc := NewDocument()
	dec := json.NewDecoder(r)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("could not decode document: %w", err)
	}
	return doc, nil
}

// decodeFlat reads a JSON object into a flat string mapping. Numbers keep
// their literal text, nested values keep their raw JSON text.
func decodeFlat(data []byte) (map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = stringify(v)
	}
	return out, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

// take pops a key from a flat mapping, returning "" when absent.
func take(m map[string]string, key string) string {
	v := m[key]
	delete(m, key)
	return v
}

// extraFrom turns the remaining keys of a flat mapping into an Extra, or nil
// when nothing is left.
func extraFrom(m map[string]string) Extra {
	if len(m) == 0 {
		return nil
	}
	extra := make(Extra, len(m))
	for k, v := range m {
		extra[k] = v
	}
	return extra
}

func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("category", e.Category)
	w.Append("amount", e.Amount)
	w.Optional("note", e.Note)
	for _, k := range e.Extra.sortedKeys() {
		w.Append(k, e.Extra[k])
	}
	return w.MarshalJSON()
}

func (e *Expense) UnmarshalJSON(data []byte) error {
	m, err := decodeFlat(data)
	if err != nil {
		return err
	}
	e.ID = take(m, "id")
	e.Date = take(m, "date")
	e.Category = take(m, "category")
	e.Amount = take(m, "amount")
	e.Note = take(m, "note")
	e.Extra = extraFrom(m)
	return nil
}

func (a Asset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Append("value", a.Value)
	for _, k := range a.Extra.sortedKeys() {
		w.Append(k, a.Extra[k])
	}
	return w.MarshalJSON()
}

func (a *Asset) UnmarshalJSON(data []byte) error {
	m, err := decodeFlat(data)
	if err != nil {
		return err
	}
	a.ID = take(m, "id")
	a.Name = take(m, "name")
	a.Type = take(m, "type")
	a.Value = take(m, "value")
	a.Extra = extraFrom(m)
	return nil
}

func (l Liability) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", l.ID)
	w.Append("name", l.Name)
	w.Append("type", l.Type)
	w.Append("amount", l.Amount)
	for _, k := range l.Extra.sortedKeys() {
		w.Append(k, l.Extra[k])
	}
	return w.MarshalJSON()
}

func (l *Liability) UnmarshalJSON(data []byte) error {
	m, err := decodeFlat(data)
	if err != nil {
		return err
	}
	l.ID = take(m, "id")
	l.Name = take(m, "name")
	l.Type = take(m, "type")
	l.Amount = take(m, "amount")
	l.Extra = extraFrom(m)
	return nil
}

var _ json.Marshaler = Expense{}
var _ json.Unmarshaler = (*Expense)(nil)
