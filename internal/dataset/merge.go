package dataset

import (
	"strings"

	"fatalview/adapters/tabular"
)

// FullOuterJoin joins two parsed sources on the given key columns,
// preserving every row from both sides. Unmatched rows keep only their
// own side's cells, so the other side's columns read as null (absent
// keys in the RowData). Pedestrian person rows have no vehicle-keyed
// match and must survive the join this way rather than being dropped.
//
// Matching right rows are combined with each matching left row
// (cross-product on duplicate keys); left cells win when both sides
// carry the same column.
func FullOuterJoin(left, right *tabular.TableData, keys []string) *tabular.TableData {
	rightIndex := make(map[string][]int, len(right.Rows))
	for i, row := range right.Rows {
		k := joinKey(row, keys)
		rightIndex[k] = append(rightIndex[k], i)
	}

	merged := &tabular.TableData{
		Headers: unionHeaders(left.Headers, right.Headers),
	}

	matched := make([]bool, len(right.Rows))
	for _, leftRow := range left.Rows {
		k := joinKey(leftRow, keys)
		indices, ok := rightIndex[k]
		if !ok {
			merged.Rows = append(merged.Rows, copyRow(leftRow))
			continue
		}
		for _, ri := range indices {
			matched[ri] = true
			merged.Rows = append(merged.Rows, combineRows(leftRow, right.Rows[ri]))
		}
	}

	// Right-only rows survive with the left columns null-filled.
	for i, row := range right.Rows {
		if !matched[i] {
			merged.Rows = append(merged.Rows, copyRow(row))
		}
	}

	return merged
}

// joinKey builds the composite key string for a row. A key column the
// row does not carry contributes its null form, so two rows that are
// both missing a key column still line up, mirroring how the upstream
// export pads its key columns.
func joinKey(row tabular.RowData, keys []string) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = row[key]
	}
	return strings.Join(parts, "\x1f")
}

func unionHeaders(left, right []string) []string {
	seen := make(map[string]bool, len(left))
	headers := make([]string, 0, len(left)+len(right))
	for _, h := range left {
		seen[h] = true
		headers = append(headers, h)
	}
	for _, h := range right {
		if !seen[h] {
			seen[h] = true
			headers = append(headers, h)
		}
	}
	return headers
}

func copyRow(row tabular.RowData) tabular.RowData {
	out := make(tabular.RowData, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

func combineRows(left, right tabular.RowData) tabular.RowData {
	out := copyRow(right)
	for k, v := range left {
		out[k] = v
	}
	return out
}
