package aggregate

import (
	"sort"

	"fatalview/domain/traffic"
)

// MinSupport is the stability floor: categories with fewer merged rows
// than this are never shown, because a percentage from an under-100
// sample is too noisy to chart.
const MinSupport = 100

// Mode selects how the surviving categories are narrowed.
type Mode int

const (
	// ModeTopN keeps the N most frequent categories.
	ModeTopN Mode = iota
	// ModeSpecific keeps a caller-chosen category subset.
	ModeSpecific
)

// Params carries the mode-specific inputs: Count for ModeTopN, Selected
// for ModeSpecific.
type Params struct {
	Count    int
	Selected []string
}

// Row is one aggregated category.
type Row struct {
	Category     string  `json:"category"`
	TotalCases   int     `json:"total_cases"`
	FatalCases   int     `json:"fatal_cases"`
	FatalPercent float64 `json:"fatal_percent"`
}

// Result is the transient aggregation output. It is rebuilt from the
// Traffic table on every relevant input change and owned entirely by the
// request that computed it.
type Result struct {
	Dimension string `json:"dimension"`
	Rows      []Row  `json:"rows"`
}

// Aggregate filters, groups, counts and ranks the Traffic table along
// one dimension. Rows with an unknown severity flag, a null dimension
// value, or the Pedestrian substitute are excluded before grouping;
// groups below MinSupport are silently dropped.
//
// ModeTopN ranks by total cases descending with stable ties and keeps
// the first Count groups. ModeSpecific keeps only the selected
// categories; an empty selection yields an empty result, not an error.
func Aggregate(table *traffic.Table, dim traffic.Dimension, mode Mode, params Params) Result {
	groups := groupByDimension(table, dim)

	switch mode {
	case ModeTopN:
		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].TotalCases > groups[j].TotalCases
		})
		if params.Count < len(groups) {
			if params.Count < 0 {
				params.Count = 0
			}
			groups = groups[:params.Count]
		}
	case ModeSpecific:
		selected := make(map[string]bool, len(params.Selected))
		for _, category := range params.Selected {
			selected[category] = true
		}
		kept := groups[:0]
		for _, g := range groups {
			if selected[g.Category] {
				kept = append(kept, g)
			}
		}
		groups = kept
	}

	return Result{Dimension: dim.Key(), Rows: groups}
}

// Categories returns the valid category list for a dimension: every
// group passing the support floor, Pedestrian excluded, ordered by total
// cases descending. The UI rebuilds its mode-specific controls from this
// whenever the dimension changes.
func Categories(table *traffic.Table, dim traffic.Dimension) []string {
	groups := groupByDimension(table, dim)
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalCases > groups[j].TotalCases
	})
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Category
	}
	return names
}

// groupByDimension applies the row exclusions, groups by dimension
// value, and drops under-supported groups. Group order follows first
// appearance in the table, which is what makes TopN tie-breaking stable
// across identical recomputations.
func groupByDimension(table *traffic.Table, dim traffic.Dimension) []Row {
	var order []string
	totals := make(map[string]*Row)

	for _, rec := range table.Records() {
		if !rec.FatalKnown {
			continue
		}
		category := dim.Value(&rec)
		if category == "" || category == traffic.Pedestrian {
			continue
		}
		row, ok := totals[category]
		if !ok {
			row = &Row{Category: category}
			totals[category] = row
			order = append(order, category)
		}
		row.TotalCases++
		row.FatalCases += rec.Fatal
	}

	rows := make([]Row, 0, len(order))
	for _, category := range order {
		row := totals[category]
		if row.TotalCases < MinSupport {
			continue
		}
		row.FatalPercent = 100 * float64(row.FatalCases) / float64(row.TotalCases)
		rows = append(rows, *row)
	}
	return rows
}
