// Package renderer builds the markdown views of the tracker: the dashboard
// summary and the per-collection record lists. Rendering is presentation
// only; every number it shows is derived elsewhere.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/tally"
)

// DashboardMarkdown renders the dashboard summary.
func DashboardMarkdown(s tally.Summary, f tally.Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dashboard on %s", s.Date))
	doc.PlainText(fmt.Sprintf("Net Worth: %s", f.Format(s.NetWorth)))

	table := md.TableSet{
		Header: []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Total Assets", f.Format(s.TotalAssets)},
			{"Total Liabilities", f.Format(s.TotalLiabilities)},
			{fmt.Sprintf("Expenses in %s %d", s.Date.Month(), s.Date.Year()), f.Format(s.MonthlyExpenses)},
		},
	}
	doc.Table(table)

	return doc.String()
}

// RecordsMarkdown renders a record collection as a table, one row per
// record, in the order given (callers pass the newest-first view).
func RecordsMarkdown(kind tally.Kind, recs []tally.Record, f tally.Formatter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(string(kind))
	if len(recs) == 0 {
		doc.PlainText("No records.")
		return doc.String()
	}

	table := md.TableSet{Header: headerFor(kind)}
	for _, r := range recs {
		table.Rows = append(table.Rows, rowFor(r, f))
	}
	doc.Table(table)

	return doc.String()
}

func headerFor(kind tally.Kind) []string {
	switch kind {
	case tally.Expenses:
		return []string{"Id", "Date", "Category", "Amount", "Note"}
	default:
		return []string{"Id", "Name", "Type", "Amount"}
	}
}

func rowFor(r tally.Record, f tally.Formatter) []string {
	switch v := r.(type) {
	case tally.Expense:
		return []string{v.ID, v.Date, v.Category, f.FormatString(v.Amount), v.Note}
	case tally.Asset:
		return []string{v.ID, v.Name, v.Type, f.FormatString(v.Value)}
	case tally.Liability:
		return []string{v.ID, v.Name, v.Type, f.FormatString(v.Amount)}
	default:
		return []string{r.Id(), "", "", ""}
	}
}
