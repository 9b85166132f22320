package results

import (
	"regexp"
	"strings"
)

// nameGap matches the run of whitespace separating an athlete's name from the
// club text rendered into the same cell. Includes Unicode space separators,
// which the site uses between the two parts.
var nameGap = regexp.MustCompile(`[\s\p{Zs}]{2,}`)

// identityColumns are the headers (lowercased) whose cells identify a competitor.
var identityColumns = map[string]bool{
	"pos":  true,
	"no":   true,
	"name": true,
}

// Dedupe returns a table with duplicate rows removed, keeping the first
// occurrence. Rows are duplicates when they agree on every identity column
// (Pos, No, Name). A table without identity columns is returned unchanged.
func (t *Table) Dedupe() *Table {
	var keyCols []int
	for i, h := range t.Header {
		if identityColumns[strings.ToLower(h)] {
			keyCols = append(keyCols, i)
		}
	}
	if len(keyCols) == 0 {
		return t
	}

	seen := make(map[string]bool)
	kept := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		parts := make([]string, len(keyCols))
		for j, col := range keyCols {
			parts[j] = row[col]
		}
		key := strings.Join(parts, "\x00")
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, row)
	}

	return &Table{Header: t.Header, Rows: kept}
}

// CleanNames strips club text from the Name column. The site renders the club
// into the same cell as the athlete, separated by a wide whitespace gap; only
// the text before the first gap is kept. A table without a Name column is
// returned unchanged.
func (t *Table) CleanNames() *Table {
	col := t.ColumnIndex("Name")
	if col < 0 {
		return t
	}

	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		cleaned := make(Row, len(row))
		copy(cleaned, row)
		cleaned[col] = CleanName(row[col])
		rows[i] = cleaned
	}

	return &Table{Header: t.Header, Rows: rows}
}

// CleanName returns the text before the first run of two or more whitespace
// characters, trimmed at both ends.
func CleanName(s string) string {
	s = strings.TrimSpace(s)
	if loc := nameGap.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	return strings.TrimSpace(s)
}

// Select returns a table restricted to the named columns, in the given order.
// A requested column the table does not have becomes an empty column, so the
// output shape stays stable across pages that omit optional columns. An empty
// column list returns the table unchanged.
func (t *Table) Select(columns []string) *Table {
	if len(columns) == 0 {
		return t
	}

	indexes := make([]int, len(columns))
	for i, name := range columns {
		indexes[i] = t.ColumnIndex(name)
	}

	header := make(Row, len(columns))
	copy(header, columns)

	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		selected := make(Row, len(columns))
		for j, idx := range indexes {
			if idx >= 0 {
				selected[j] = row[idx]
			}
		}
		rows[i] = selected
	}

	return &Table{Header: header, Rows: rows}
}
