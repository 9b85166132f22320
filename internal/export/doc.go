// Package export writes result tables to CSV files.
//
// A single export goes to an explicit path, overwriting any existing file
// and creating no directories. Batch exports go through a Writer bound to
// an output directory, created on first use (a leading ~/ expands to the
// home directory). Encoding is standard CSV: comma separated fields,
// double-quoted when they contain separators, quotes or line breaks.
package export
