package tally

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeCSV(t *testing.T) {
	var buf bytes.Buffer
	header := []string{"id", "date", "category", "amount", "note"}
	rows := [][]string{
		{"1709312400000", "2024-03-01", "Groceries", "1250.50", "weekly shop"},
		{"1709312400001", "2024-03-02", "Dining", "300", `he said "hi", twice`},
	}

	if err := EncodeCSV(&buf, header, rows); err != nil {
		t.Fatalf("EncodeCSV() returned an unexpected error: %v", err)
	}

	want := "id,date,category,amount,note\n" +
		`"1709312400000","2024-03-01","Groceries","1250.50","weekly shop"` + "\n" +
		`"1709312400001","2024-03-02","Dining","300","he said ""hi"", twice"` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeCSV() = %q, want %q", got, want)
	}
}

// Every field is quoted, unconditionally, so encode/decode stays round-trip
// safe whatever punctuation the values carry.
func TestEncodeCSVQuotesEveryField(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeCSV(&buf, []string{"a"}, [][]string{{"plain"}}); err != nil {
		t.Fatalf("EncodeCSV() returned an unexpected error: %v", err)
	}
	if got, want := buf.String(), "a\n\"plain\"\n"; got != want {
		t.Errorf("EncodeCSV() = %q, want %q", got, want)
	}
}

func TestEncodeCSVEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeCSV(&buf, []string{"a", "b"}, nil); err != nil {
		t.Fatalf("EncodeCSV() returned an unexpected error: %v", err)
	}
	// Empty input encodes to an empty result, not a header-only file.
	if buf.Len() != 0 {
		t.Errorf("EncodeCSV() wrote %q for empty input, want nothing", buf.String())
	}
}

func TestDecodeCSV(t *testing.T) {
	text := "id,date,amount\n" +
		`"1","2024-03-01","12.50"` + "\n" +
		"\n" + // blank lines are skipped
		`"2","2024-03-02","4,000"` + "\n"

	header, rows, err := DecodeCSV(strings.NewReader(text))
	if err != nil {
		t.Fatalf("DecodeCSV() returned an unexpected error: %v", err)
	}

	wantHeader := []string{"id", "date", "amount"}
	if len(header) != len(wantHeader) {
		t.Fatalf("DecodeCSV() header = %v, want %v", header, wantHeader)
	}
	for i := range wantHeader {
		if header[i] != wantHeader[i] {
			t.Errorf("header[%d] = %q, want %q", i, header[i], wantHeader[i])
		}
	}

	if len(rows) != 2 {
		t.Fatalf("DecodeCSV() decoded %d rows, want 2", len(rows))
	}
	// A comma inside quotes does not split the field.
	if got, want := rows[1][2], "4,000"; got != want {
		t.Errorf("rows[1][2] = %q, want %q", got, want)
	}
}

func TestDecodeCSVFailsClosed(t *testing.T) {
	// Fewer than two lines yields an empty result, not an error.
	for _, text := range []string{"", "header,only", "   \n\n"} {
		header, rows, err := DecodeCSV(strings.NewReader(text))
		if err != nil {
			t.Errorf("DecodeCSV(%q) returned an unexpected error: %v", text, err)
		}
		if header != nil || rows != nil {
			t.Errorf("DecodeCSV(%q) = (%v, %v), want empty result", text, header, rows)
		}
	}
}

func TestDecodeCSVShortRow(t *testing.T) {
	text := "a,b,c\n\"1\",\"2\"\n"
	_, rows, err := DecodeCSV(strings.NewReader(text))
	if err != nil {
		t.Fatalf("DecodeCSV() returned an unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("DecodeCSV() decoded %d rows, want 1", len(rows))
	}
	// Missing trailing fields decode as "".
	if rows[0][2] != "" {
		t.Errorf("rows[0][2] = %q, want empty", rows[0][2])
	}
}

// TestCSVRoundTrip checks the round-trip law: decode(encode(x)) reproduces
// x's values as strings, for arbitrary punctuation and quotes (no embedded
// newlines, which the line-oriented dialect does not support).
func TestCSVRoundTrip(t *testing.T) {
	header := []string{"id", "note", "amount"}
	rows := [][]string{
		{"1", `plain`, "100"},
		{"2", `with "quotes"`, "0.5"},
		{"3", `commas, "and", quotes`, ""},
		{"4", `""`, `-12.30`},
		{"5", `semi;colon & <tags>`, `1e9`},
	}

	var buf bytes.Buffer
	if err := EncodeCSV(&buf, header, rows); err != nil {
		t.Fatalf("EncodeCSV() returned an unexpected error: %v", err)
	}

	gotHeader, gotRows, err := DecodeCSV(&buf)
	if err != nil {
		t.Fatalf("DecodeCSV() returned an unexpected error: %v", err)
	}

	if len(gotHeader) != len(header) {
		t.Fatalf("round trip header = %v, want %v", gotHeader, header)
	}
	if len(gotRows) != len(rows) {
		t.Fatalf("round trip decoded %d rows, want %d", len(gotRows), len(rows))
	}
	for i, row := range rows {
		for j, want := range row {
			if got := gotRows[i][j]; got != want {
				t.Errorf("round trip rows[%d][%d] = %q, want %q", i, j, got, want)
			}
		}
	}
}
