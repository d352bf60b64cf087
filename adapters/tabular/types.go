package tabular

// RowData is one raw source row keyed by header name. A header absent
// from the map means the cell was null; the merge step relies on that
// distinction to null-fill unmatched join sides.
type RowData map[string]string

// TableData is a parsed source file: the trimmed header row plus every
// data row as a RowData.
type TableData struct {
	Headers []string
	Rows    []RowData
}

// HasColumn reports whether the header row contains the named column.
func (t *TableData) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}
