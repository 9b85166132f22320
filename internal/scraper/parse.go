package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/akarlsons/racetime-export/internal/results"
)

// ErrNoResultsTable indicates a page without a usable results table.
var ErrNoResultsTable = errors.New("no results table found")

// typicalHeaders are the column names a race results table is expected to
// carry. They score candidate tables during extraction.
var typicalHeaders = []string{
	"Pos",
	"No",
	"Name",
	"Year of Birth",
	"Time",
	"Status",
	"Club",
	"UCI-ID",
	"Pace",
}

// ParseResultsTable extracts the most plausible results table from a page.
//
// Every <table> with a header row is a candidate. Candidates are scored by
// how many typical header names appear among their columns; the best score
// wins, with ties going to the earlier table in document order. A page with
// no candidate matching any typical header, or a winner without data rows,
// fails with ErrNoResultsTable.
func ParseResultsTable(html string) (*results.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var best *results.Table
	bestScore := 0

	doc.Find("table").Each(func(i int, table *goquery.Selection) {
		candidate := parseTable(table)
		if candidate == nil {
			return
		}
		if score := scoreHeader(candidate.Header); score > bestScore {
			best = candidate
			bestScore = score
		}
	})

	if best == nil {
		return nil, fmt.Errorf("%w in document", ErrNoResultsTable)
	}
	if len(best.Rows) == 0 {
		return nil, fmt.Errorf("%w: best candidate has no data rows", ErrNoResultsTable)
	}

	return best, nil
}

// parseTable extracts a single table element into header and data rows.
// Tables without header cells yield nil.
func parseTable(table *goquery.Selection) *results.Table {
	headerRow := table.Find("thead tr").First()
	if headerRow.Length() == 0 {
		headerRow = table.Find("tr").First()
	}
	if headerRow.Length() == 0 {
		return nil
	}

	headerCells := headerRow.Find("th")
	if headerCells.Length() == 0 {
		headerCells = headerRow.Find("td")
	}
	if headerCells.Length() == 0 {
		return nil
	}

	header := make(results.Row, 0, headerCells.Length())
	headerCells.Each(func(i int, cell *goquery.Selection) {
		header = append(header, normalizeSpace(cell.Text()))
	})

	// Data rows are every tr outside the thead and below the header row.
	// Cell text keeps its inner whitespace; the Name column relies on the
	// gap between athlete and club surviving extraction.
	var rows []results.Row
	dataRows := table.Find("tr").NotSelection(table.Find("thead tr")).NotSelection(headerRow)
	dataRows.Each(func(i int, tr *goquery.Selection) {
		cells := tr.Find("th, td")
		if cells.Length() == 0 {
			return
		}
		row := make(results.Row, 0, cells.Length())
		cells.Each(func(j int, cell *goquery.Selection) {
			row = append(row, strings.TrimSpace(cell.Text()))
		})
		rows = append(rows, row)
	})

	return results.New(header, rows)
}

// scoreHeader counts how many typical header names occur among the header
// cells. Substring matches count; sites render combined cells like "Cat Pos".
func scoreHeader(header results.Row) int {
	score := 0
	for _, token := range typicalHeaders {
		for _, cell := range header {
			if strings.Contains(cell, token) {
				score++
				break
			}
		}
	}
	return score
}

// normalizeSpace collapses whitespace runs to single spaces and trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
