package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/tally"
	"github.com/etnz/tally/date"
)

func TestDashboardMarkdown(t *testing.T) {
	doc := tally.NewDocument()
	doc.Assets = append(doc.Assets, tally.Asset{ID: "1", Name: "Savings", Value: "1000"})
	doc.Liabilities = append(doc.Liabilities, tally.Liability{ID: "2", Name: "Loan", Amount: "400"})
	doc.Expenses = append(doc.Expenses, tally.Expense{ID: "3", Date: "2024-03-10", Category: "Food", Amount: "50"})

	s := tally.Summarize(doc, date.New(2024, 3, 15))
	got := DashboardMarkdown(s, tally.NewFormatter("USD"))

	for _, want := range []string{
		"# Dashboard on 2024-03-15",
		"Net Worth",
		"600.00",
		"Total Assets",
		"1,000.00",
		"Expenses in March 2024",
		"50.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DashboardMarkdown() lacks %q:\n%s", want, got)
		}
	}
}

func TestRecordsMarkdown(t *testing.T) {
	recs := []tally.Record{
		tally.Expense{ID: "2", Date: "2024-03-02", Category: "Food", Amount: "12.5"},
		tally.Expense{ID: "1", Date: "2024-03-01", Category: "Rent", Amount: "500", Note: "march"},
	}
	got := RecordsMarkdown(tally.Expenses, recs, tally.NewFormatter("USD"))

	if !strings.Contains(got, "# expenses") {
		t.Errorf("RecordsMarkdown() lacks the title:\n%s", got)
	}
	for _, want := range []string{"Rent", "Food", "12.50", "500.00", "march"} {
		if !strings.Contains(got, want) {
			t.Errorf("RecordsMarkdown() lacks %q:\n%s", want, got)
		}
	}
	// Rows keep the order they were given in.
	if strings.Index(got, "Food") > strings.Index(got, "Rent") {
		t.Errorf("RecordsMarkdown() reordered the rows:\n%s", got)
	}
}

func TestRecordsMarkdownEmpty(t *testing.T) {
	got := RecordsMarkdown(tally.Assets, nil, tally.NewFormatter("USD"))
	if !strings.Contains(got, "No records.") {
		t.Errorf("RecordsMarkdown() on an empty collection:\n%s", got)
	}
}
