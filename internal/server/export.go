package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/instacotiza/cotiza/internal/document"
	"github.com/instacotiza/cotiza/internal/pricing"
	quotationdomain "github.com/instacotiza/cotiza/internal/quotation/domain"
)

// ExportArtifact renders a quotation into its PDF artifact. A quotation
// without line items is rejected before any build starts; a failed build
// never delivers partial bytes.
func (s *Server) ExportArtifact(c *gin.Context) {
	var q quotationdomain.Quotation
	if err := c.ShouldBindJSON(&q); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if len(q.LineItems) == 0 {
		AbortWithError(c, quotationdomain.ErrNoLineItems)
		return
	}

	totals := pricing.ComputeTotals(q.LineItems)
	doc := document.Build(q, totals)

	artifact, err := s.exporter.Export(c.Request.Context(), doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.SuggestedFileName))
	c.Data(http.StatusOK, "application/pdf", artifact.Bytes)
}
