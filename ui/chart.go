package ui

import (
	"fmt"
	"sort"

	"fatalview/domain/traffic"
	"fatalview/internal/aggregate"
)

// Chart layout constants. The plot is a horizontal lollipop: one row per
// category, a baseline segment from zero to the category's fatality
// percentage, and a point at the tip.
const (
	chartWidth   = 760
	marginLeft   = 240
	marginRight  = 40
	marginTop    = 24
	marginBottom = 48
	rowHeight    = 30
	pointRadius  = 6
)

// Two-hue gradient endpoints: low percentages render blue, high render
// red, interpolated over the result's own percentage range.
var (
	gradientLow  = [3]int{49, 130, 189}
	gradientHigh = [3]int{222, 45, 38}
)

// ChartPoint is one rendered category row.
type ChartPoint struct {
	Category string
	Percent  float64
	Label    string
	X        float64
	Y        float64
	BaseX    float64
	Color    string
}

// AxisTick is one percentage axis mark.
type AxisTick struct {
	Value float64
	Label string
	X     float64
}

// Chart is the server-computed geometry for the lollipop chart
// fragment. Templates only place the shapes; every coordinate and color
// is decided here so the rendering is testable without a browser.
type Chart struct {
	Width      int
	Height     int
	PlotTop    int
	AxisY      float64
	TickBottom float64
	Points     []ChartPoint
	Ticks      []AxisTick
	Caption    string
	Empty      bool
	Note       string
}

// BuildChart converts an aggregation result into chart geometry:
// categories ordered by percentage ascending, points positioned on a
// shared percentage axis, colors graded between the two hues.
func BuildChart(result aggregate.Result, dim traffic.Dimension) Chart {
	caption := "*Percent of Fatal Accidents by " + dim.Label()

	if len(result.Rows) == 0 {
		return Chart{
			Width:   chartWidth,
			Height:  160,
			Caption: caption,
			Empty:   true,
			Note:    "No categories to display. Pick at least one category with 100 or more cases.",
		}
	}

	rows := make([]aggregate.Row, len(result.Rows))
	copy(rows, result.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].FatalPercent < rows[j].FatalPercent
	})

	axisMax := 10.0
	minPct, maxPct := rows[0].FatalPercent, rows[0].FatalPercent
	for _, row := range rows {
		if row.FatalPercent > maxPct {
			maxPct = row.FatalPercent
		}
		if row.FatalPercent < minPct {
			minPct = row.FatalPercent
		}
	}
	for axisMax < maxPct {
		axisMax += 10
	}
	if axisMax > 100 {
		axisMax = 100
	}

	plotWidth := float64(chartWidth - marginLeft - marginRight)
	height := marginTop + len(rows)*rowHeight + marginBottom
	axisY := float64(marginTop + len(rows)*rowHeight)

	chart := Chart{
		Width:      chartWidth,
		Height:     height,
		PlotTop:    marginTop,
		AxisY:      axisY,
		TickBottom: axisY + 6,
		Caption:    caption,
	}

	for i, row := range rows {
		chart.Points = append(chart.Points, ChartPoint{
			Category: row.Category,
			Percent:  row.FatalPercent,
			Label:    fmt.Sprintf("%.1f%%", row.FatalPercent),
			X:        marginLeft + row.FatalPercent/axisMax*plotWidth,
			Y:        float64(marginTop + i*rowHeight + rowHeight/2),
			BaseX:    marginLeft,
			Color:    gradientColor(row.FatalPercent, minPct, maxPct),
		})
	}

	ticks := 5
	for i := 0; i <= ticks; i++ {
		value := axisMax * float64(i) / float64(ticks)
		chart.Ticks = append(chart.Ticks, AxisTick{
			Value: value,
			Label: fmt.Sprintf("%.0f%%", value),
			X:     marginLeft + value/axisMax*plotWidth,
		})
	}

	return chart
}

// gradientColor interpolates between the two hues over the chart's own
// percentage range. A single-category chart gets the high hue.
func gradientColor(value, min, max float64) string {
	t := 1.0
	if max > min {
		t = (value - min) / (max - min)
	}
	r := int(float64(gradientLow[0]) + t*float64(gradientHigh[0]-gradientLow[0]))
	g := int(float64(gradientLow[1]) + t*float64(gradientHigh[1]-gradientLow[1]))
	b := int(float64(gradientLow[2]) + t*float64(gradientHigh[2]-gradientLow[2]))
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
