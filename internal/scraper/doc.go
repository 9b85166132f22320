// Package scraper provides HTTP fetching and HTML parsing for competition
// results pages on events.racetime.pro.
//
// Fetching sends a browser-like User-Agent because the site serves reduced
// markup to clients that identify as scripts. Parsing scores every table on
// the page by how many typical results headers (Pos, Name, Time, Club, ...)
// appear among its columns and extracts the best-scoring one; a page without
// a plausible results table fails with ErrNoResultsTable rather than
// yielding an empty table.
package scraper
