package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fatalview/domain/traffic"
	"fatalview/internal"
	"fatalview/internal/aggregate"
	"fatalview/internal/dataset"
)

//go:embed templates/* static/* docs/*
var embeddedFiles embed.FS

var logger = internal.NewLogger("Server")

// Server is the dashboard web server. It holds the read-only Traffic
// table built at startup; every handler derives its transient
// aggregation from it without any shared mutable state.
type Server struct {
	router    *gin.Engine
	table     *traffic.Table
	loadStats *dataset.LoadStats
	templates *template.Template
}

// NewServer creates the dashboard server over an already-loaded Traffic
// table.
func NewServer(table *traffic.Table, loadStats *dataset.LoadStats) (*Server, error) {
	funcMap := template.FuncMap{
		"pct":   func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"add":   func(a, b int) int { return a + b },
		"mul":   func(a, b float64) float64 { return a * b },
		"lower": strings.ToLower,
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:    router,
		table:     table,
		loadStats: loadStats,
		templates: templates,
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(RequestID())
	s.router.Use(AccessLog())
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleDashboard)
	s.router.GET("/about", s.handleAbout)

	// JSON API
	s.router.GET("/api/dimensions", s.handleDimensions)
	s.router.GET("/api/categories", s.handleCategories)
	s.router.GET("/api/aggregate", s.handleAggregate)
	s.router.GET("/api/aggregate/export", s.handleExport)
	s.router.GET("/api/dataset/info", s.handleDatasetInfo)
	s.router.GET("/api/speed/profile", s.handleSpeedProfile)

	// Fragment endpoints for in-place dashboard updates
	s.router.GET("/api/fragments/chart", s.handleChartFragment)
	s.router.GET("/api/fragments/controls", s.handleControlsFragment)

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err == nil {
		s.router.StaticFS("/static", http.FS(staticFS))
	}
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	logger.Info("dashboard listening on http://%s", addr)
	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		logger.Error("template %s: %v", templateName, err)
		c.String(http.StatusInternalServerError, "Template error")
	}
}

// categories returns the currently-valid category list for a dimension:
// support-filtered, Pedestrian excluded, most frequent first.
func (s *Server) categories(dim traffic.Dimension) []string {
	return aggregate.Categories(s.table, dim)
}
