package tally

import "github.com/etnz/tally/date"

// Date is re-exported from the date package for the convenience of callers
// that only need the tracker's surface.
type Date = date.Date

// Today returns the current date in UTC.
func Today() Date { return date.Today() }

// ParseDate parses a calendar date string.
func ParseDate(s string) (Date, error) { return date.Parse(s) }
