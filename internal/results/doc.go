// Package results models the tabular race results extracted from a competition page.
//
// A Table is a header row plus the competitor rows below it, kept rectangular:
// rows are padded or truncated to the header width on construction. The package
// also provides the cleanup transforms applied before export: duplicate-row
// removal, Name-column club stripping, and column selection. Transforms never
// mutate their input; each returns a new table.
package results
