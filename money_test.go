package tally

import (
	"strings"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100", "100"},
		{" 1250.50 ", "1250.5"},
		{"-42", "-42"},
		{"", "0"},
		{"abc", "0"},
		{"12.3.4", "0"},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.in).String(); got != tt.want {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatterGrouping(t *testing.T) {
	f := NewFormatter(DefaultCurrency)
	got := f.FormatString("1234.5")
	if !strings.Contains(got, "1,234.50") {
		t.Errorf("FormatString(1234.5) = %q, want it to contain %q", got, "1,234.50")
	}
}

func TestFormatterLargeAmount(t *testing.T) {
	f := NewFormatter(DefaultCurrency)
	got := f.FormatString("1234567.89")
	if !strings.Contains(got, "1,234,567.89") {
		t.Errorf("FormatString(1234567.89) = %q, want it to contain %q", got, "1,234,567.89")
	}
}

// Formatting never fails: garbage renders as zero.
func TestFormatterNonNumeric(t *testing.T) {
	f := NewFormatter(DefaultCurrency)
	for _, in := range []string{"", "garbage", "1/2", "NaN"} {
		got := f.FormatString(in)
		if !strings.Contains(got, "0.00") {
			t.Errorf("FormatString(%q) = %q, want the zero amount", in, got)
		}
	}
}

func TestFormatterCurrencies(t *testing.T) {
	usd := NewFormatter("USD")
	if got := usd.FormatString("10"); !strings.Contains(got, "$") {
		t.Errorf("USD FormatString(10) = %q, want a $ sign", got)
	}
	eur := NewFormatter("EUR")
	if got := eur.FormatString("10"); !strings.Contains(got, "€") {
		t.Errorf("EUR FormatString(10) = %q, want a € sign", got)
	}
}
