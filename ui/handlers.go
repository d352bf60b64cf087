package ui

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fatalview/domain/traffic"
	"fatalview/internal/aggregate"
	"fatalview/internal/profiling"
)

// aggregateQuery is the parsed, bounds-checked form of the dashboard's
// control state: dimension, display mode and the mode-specific
// parameter. Bounds-checking happens here so that a stale count or a
// category from a previous dimension degrades instead of erroring.
type aggregateQuery struct {
	dim    traffic.Dimension
	mode   aggregate.Mode
	params aggregate.Params
}

// parseAggregateQuery reads the control state from the query string.
// Dependency order mirrors the dashboard's update contract: resolve the
// dimension first, re-derive the valid category list from it, then bound
// the mode-specific control against that list.
func (s *Server) parseAggregateQuery(c *gin.Context) (aggregateQuery, []string, error) {
	q := aggregateQuery{}

	dim, err := traffic.ParseDimension(c.DefaultQuery("dimension", "weather"))
	if err != nil {
		return q, nil, err
	}
	q.dim = dim

	valid := s.categories(dim)

	switch c.DefaultQuery("mode", "topn") {
	case "specific":
		q.mode = aggregate.ModeSpecific
		validSet := make(map[string]bool, len(valid))
		for _, category := range valid {
			validSet[category] = true
		}
		// Selections that no longer exist under the new dimension are
		// dropped silently; an empty selection stays empty and renders
		// as a placeholder downstream.
		picked := append(c.QueryArray("category"), splitCategories(c.Query("categories"))...)
		for _, category := range picked {
			if validSet[category] {
				q.params.Selected = append(q.params.Selected, category)
			}
		}
	default:
		q.mode = aggregate.ModeTopN
		count, err := strconv.Atoi(c.DefaultQuery("count", "5"))
		if err != nil || count < 1 {
			count = 1
		}
		if count > len(valid) && len(valid) > 0 {
			count = len(valid)
		}
		q.params.Count = count
	}

	return q, valid, nil
}

// handleDashboard renders the main dashboard page with the default
// control state (weather dimension, top 5 categories).
func (s *Server) handleDashboard(c *gin.Context) {
	q, valid, err := s.parseAggregateQuery(c)
	if err != nil {
		c.String(http.StatusBadRequest, "unknown dimension")
		return
	}

	result := aggregate.Aggregate(s.table, q.dim, q.mode, q.params)
	chart := BuildChart(result, q.dim)

	s.renderTemplate(c, "dashboard.html", gin.H{
		"Dimensions":      dimensionOptions(),
		"Dimension":       q.dim.Key(),
		"DimensionLabel":  q.dim.Label(),
		"Mode":            modeKey(q.mode),
		"Count":           q.params.Count,
		"Selected":        q.params.Selected,
		"ValidCategories": valid,
		"Chart":           chart,
		"MinSupport":      aggregate.MinSupport,
		"MergedRows":      s.table.Len(),
	})
}

// handleDimensions lists the eight supported dimensions.
func (s *Server) handleDimensions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dimensions": dimensionOptions()})
}

// handleCategories returns the valid category list for one dimension.
func (s *Server) handleCategories(c *gin.Context) {
	dim, err := traffic.ParseDimension(c.Query("dimension"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	categories := s.categories(dim)
	c.JSON(http.StatusOK, gin.H{
		"dimension":  dim.Key(),
		"categories": categories,
		"max_count":  len(categories),
	})
}

// handleAggregate returns the aggregation result as JSON.
func (s *Server) handleAggregate(c *gin.Context) {
	q, _, err := s.parseAggregateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result := aggregate.Aggregate(s.table, q.dim, q.mode, q.params)
	c.JSON(http.StatusOK, result)
}

// handleChartFragment renders the lollipop chart SVG fragment for the
// current control state. An empty result renders the neutral
// placeholder, never an error page.
func (s *Server) handleChartFragment(c *gin.Context) {
	q, _, err := s.parseAggregateQuery(c)
	if err != nil {
		c.String(http.StatusBadRequest, "unknown dimension")
		return
	}
	result := aggregate.Aggregate(s.table, q.dim, q.mode, q.params)
	s.renderTemplate(c, "chart.html", BuildChart(result, q.dim))
}

// handleControlsFragment re-renders the mode-specific controls after a
// dimension change: the count slider re-bounded to the new category
// count and the multi-select rebuilt from the new valid list.
func (s *Server) handleControlsFragment(c *gin.Context) {
	q, valid, err := s.parseAggregateQuery(c)
	if err != nil {
		c.String(http.StatusBadRequest, "unknown dimension")
		return
	}
	s.renderTemplate(c, "controls.html", gin.H{
		"Dimension":       q.dim.Key(),
		"Mode":            modeKey(q.mode),
		"Count":           q.params.Count,
		"Selected":        q.params.Selected,
		"ValidCategories": valid,
	})
}

// handleDatasetInfo reports the startup load summary.
func (s *Server) handleDatasetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"merged_rows": s.table.Len(),
		"load":        s.loadStats,
	})
}

// handleSpeedProfile returns the numeric speed distribution profile.
func (s *Server) handleSpeedProfile(c *gin.Context) {
	profile, err := profiling.ProfileSpeeds(s.table)
	if err != nil {
		logger.Error("speed profile failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "speed profile failed"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func dimensionOptions() []gin.H {
	options := make([]gin.H, 0, len(traffic.AllDimensions()))
	for _, d := range traffic.AllDimensions() {
		options = append(options, gin.H{"key": d.Key(), "label": d.Label()})
	}
	return options
}

func modeKey(mode aggregate.Mode) string {
	if mode == aggregate.ModeSpecific {
		return "specific"
	}
	return "topn"
}

// splitCategories supports comma-separated category lists in addition
// to repeated query parameters.
func splitCategories(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
