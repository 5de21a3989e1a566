package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// time.Time values are usually not comparable (location pointer),
		// this checks the canonical property holds.
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	// Day 32 of January normalizes to February 1st.
	d := New(2024, time.January, 32)
	if got, want := d.String(), "2024-02-01"; got != want {
		t.Errorf("New(2024, January, 32) = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-03-01", "2024-03-01", true},
		{"2024-3-1", "2024-03-01", true},
		{"not a date", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		d, err := Parse(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("Parse(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && d.String() != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, d, tc.want)
		}
	}
}

func TestSameMonth(t *testing.T) {
	ref := New(2024, time.March, 15)
	tests := []struct {
		day  Date
		want bool
	}{
		{New(2024, time.March, 1), true},
		{New(2024, time.March, 31), true},
		{New(2024, time.February, 28), false},
		{New(2024, time.April, 1), false},
		{New(2023, time.March, 15), false}, // same month, different year
	}
	for _, tc := range tests {
		if got := tc.day.SameMonth(ref); got != tc.want {
			t.Errorf("%s SameMonth %s = %v, want %v", tc.day, ref, got, tc.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, time.August, 9)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `"2025-08-09"` {
		t.Errorf("Marshal() = %s, want %q", data, `"2025-08-09"`)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
