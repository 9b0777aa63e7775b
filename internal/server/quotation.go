package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	quotationdomain "github.com/instacotiza/cotiza/internal/quotation/domain"
)

func (s *Server) SaveQuotation(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("user_id"))

	var q quotationdomain.Quotation
	if err := c.ShouldBindJSON(&q); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.quotationSvc.Save(c.Request.Context(), userID, q)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListQuotations(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("user_id"))

	resp, err := s.quotationSvc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteQuotation(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("user_id"))

	index, err := strconv.Atoi(strings.TrimSpace(c.Param("index")))
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.quotationSvc.Delete(c.Request.Context(), userID, index); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": index}})
}

func (s *Server) UpdateQuotation(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("user_id"))
	quoteNumber := strings.TrimSpace(c.Param("quote_number"))

	var q quotationdomain.Quotation
	if err := c.ShouldBindJSON(&q); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	q.QuoteNumber = quoteNumber

	resp, err := s.quotationSvc.UpdateByNumber(c.Request.Context(), userID, q)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
