package results

// Row holds the cell values of a single table row, in column order.
type Row []string

// Table represents a race results table: one header row plus competitor rows.
type Table struct {
	Header Row
	Rows   []Row
}

// New creates a Table with every row normalized to the header width.
// Rows shorter than the header are padded with empty cells, longer rows
// are truncated.
func New(header Row, rows []Row) *Table {
	t := &Table{
		Header: header,
		Rows:   make([]Row, 0, len(rows)),
	}
	for _, row := range rows {
		t.Rows = append(t.Rows, fitRow(row, len(header)))
	}
	return t
}

// fitRow returns a copy of row with exactly width cells.
func fitRow(row Row, width int) Row {
	fitted := make(Row, width)
	copy(fitted, row)
	return fitted
}

// ColumnIndex returns the index of the first header cell equal to name,
// or -1 when the table has no such column.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}
