package ui

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// handleAbout renders the methodology notes. The notes document the
// known modeling approximations (the "Pedestrian" null-substitution
// labeling, the 100-case support floor) that would otherwise surprise a
// careful reader of the charts.
func (s *Server) handleAbout(c *gin.Context) {
	source, err := embeddedFiles.ReadFile("docs/methodology.md")
	if err != nil {
		logger.Error("methodology notes missing: %v", err)
		c.String(http.StatusInternalServerError, "methodology notes unavailable")
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	rendered := markdown.ToHTML(source, p, renderer)

	s.renderTemplate(c, "about.html", gin.H{
		"Content": template.HTML(rendered),
	})
}
