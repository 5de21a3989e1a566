package tally

import (
	"github.com/shopspring/decimal"

	"github.com/etnz/tally/date"
)

// Summary is the dashboard view derived from the aggregate document.
// All totals are exact decimal sums; unparsable numeric fields contribute
// zero, silently, matching the tracker's lenient input model.
type Summary struct {
	Date             date.Date // the injected reference date
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	MonthlyExpenses  decimal.Decimal
	NetWorth         decimal.Decimal
}

// Summarize derives the dashboard from a snapshot of the document. It is a
// pure function: the "current" date is the caller-supplied on, never an
// implicit clock read, so boundary days are testable and unambiguous.
//
// An expense counts toward MonthlyExpenses iff its date parses and falls in
// the same UTC calendar month and year as on. Dates that do not parse never
// match.
func Summarize(doc *Document, on date.Date) Summary {
	s := Summary{Date: on}

	for _, a := range doc.Assets {
		s.TotalAssets = s.TotalAssets.Add(ParseAmount(a.Value))
	}
	for _, l := range doc.Liabilities {
		s.TotalLiabilities = s.TotalLiabilities.Add(ParseAmount(l.Amount))
	}
	for _, e := range doc.Expenses {
		d, err := date.Parse(e.Date)
		if err != nil {
			continue
		}
		if d.SameMonth(on) {
			s.MonthlyExpenses = s.MonthlyExpenses.Add(ParseAmount(e.Amount))
		}
	}

	s.NetWorth = s.TotalAssets.Sub(s.TotalLiabilities)
	return s
}
