// Package tally implements a local-first personal finance tracker: it
// records expenses, assets, and liabilities, persists them as one aggregate
// document in a named slot, derives a dashboard (monthly spend, net worth),
// and imports/exports collections as CSV.
//
// The core pieces are:
//   - Record model: three concrete record kinds whose field values stay
//     plain strings; numeric coercion is deferred to aggregation and
//     formatting time.
//   - Store: the aggregate document held in memory and rewritten wholesale
//     to its Slot after every mutation. Absent or malformed persisted state
//     degrades to an empty document, never a crash.
//   - Dashboard: a pure aggregation over a document snapshot with an
//     injected reference date.
//   - CSV codec and import merge policy: a line-oriented, fully quoted CSV
//     dialect kept round-trip compatible with previously exported files;
//     imports always append with fresh ids.
//
// This package is the foundation of the `tally` command-line tool.
package tally
