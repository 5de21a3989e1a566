package tally

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// This file implements the tracker's CSV dialect, kept compatible with files
// exported by earlier versions of the tool:
//
//   - the header line is the raw keys joined by commas, unquoted;
//   - every data field is wrapped in double quotes, unconditionally, with
//     internal quotes doubled;
//   - the format is strictly line-oriented. Fields containing literal
//     newlines are not supported, a preserved limitation: "fixing" it would
//     silently break round trips with previously exported files.
//
// encoding/csv cannot express this dialect (it quotes conditionally and
// consumes embedded newlines), hence the hand-rolled codec.

// EncodeCSV writes a header line followed by one line per row, each field
// quoted and escaped. Empty input encodes to nothing at all; the caller must
// treat that as "nothing to export", not as a valid empty file.
func EncodeCSV(w io.Writer, header []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(header, ","))
	bw.WriteByte('\n')

	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				bw.WriteByte(',')
			}
			bw.WriteByte('"')
			bw.WriteString(strings.ReplaceAll(v, `"`, `""`))
			bw.WriteByte('"')
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not write csv: %w", err)
	}
	return nil
}

// DecodeCSV reads the dialect back: the first non-empty line is the header,
// every further non-empty line is one row aligned positionally with the
// header (missing trailing fields decode as ""). It fails closed: fewer than
// two lines yields an empty result, not an error.
func DecodeCSV(r io.Reader) (header []string, rows [][]string, err error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("could not read csv: %w", err)
	}

	if len(lines) < 2 {
		return nil, nil, nil
	}

	header = splitLine(lines[0])
	want := len(header)
	for _, line := range lines[1:] {
		raw := splitLine(line)
		row := make([]string, want)
		for i := range row {
			if i < len(raw) {
				row[i] = unquoteField(raw[i])
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// splitLine splits one line on commas that are outside double quotes. The
// fields keep their surrounding quotes; use unquoteField to strip them.
func splitLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch c := line[i]; c {
		case '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case ',':
			if inQuotes {
				cur.WriteByte(c)
			} else {
				fields = append(fields, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// unquoteField strips one pair of wrapping quotes and un-doubles internal
// quotes. Unquoted fields pass through unchanged.
func unquoteField(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, `""`, `"`)
}
