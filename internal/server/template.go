package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	quotationdomain "github.com/instacotiza/cotiza/internal/quotation/domain"
	"github.com/instacotiza/cotiza/internal/template"
	"go.uber.org/zap"
)

type exportTemplateRequest struct {
	TemplateName string                    `json:"templateName"`
	Quotation    quotationdomain.Quotation `json:"quotation"`
}

// ExportTemplate serializes a quotation into a downloadable JSON template.
func (s *Server) ExportTemplate(c *gin.Context) {
	var req exportTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	tpl := template.Encode(req.Quotation, req.TemplateName)
	payload, err := template.Marshal(tpl)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	fileName := template.TemplateFileName(tpl.Data)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/json", payload)
}

// ImportTemplate parses and validates an uploaded template file. The
// decoded quotation is returned to the caller, which owns the decision to
// replace in-progress form state with it.
func (s *Server) ImportTemplate(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	q, err := template.Decode(raw)
	if err != nil {
		s.log.Warn("template import rejected", zap.Error(err))
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": q})
}
