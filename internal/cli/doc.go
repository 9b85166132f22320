// Package cli implements the command-line interface for racetime-export.
//
// The cli package provides the Cobra-based CLI with its two modes: a single
// competition URL written to an explicit CSV path, or a URL list file
// processed sequentially with one derived race_<EVENT_ID>.csv per
// competition. It coordinates the scraper, results, competition, export and
// config packages, logs per-URL failures without stopping a batch run, and
// maps pipeline errors to the failure categories reported on standard error.
package cli
