package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/instacotiza/cotiza/internal/document"
	quotationdomain "github.com/instacotiza/cotiza/internal/quotation/domain"
	"github.com/instacotiza/cotiza/internal/template"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware turns errors attached to the context into a
// single JSON error response. Handlers report errors via AbortWithError and
// never write failure bodies themselves.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	var parseErr *template.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadRequest, errorPayload{
			Type:    "parse_error",
			Message: "the file is not valid JSON",
		}
	}

	var schemaErr *template.SchemaError
	if errors.As(err, &schemaErr) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "the template does not have the required structure",
			Field:   schemaErr.Field,
		}
	}

	var buildErr *document.BuildError
	if errors.As(err, &buildErr) {
		return http.StatusUnprocessableEntity, errorPayload{
			Type:    "build_error",
			Message: "the document could not be generated",
		}
	}

	switch {
	case errors.Is(err, quotationdomain.ErrNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "quotation not found",
		}
	case errors.Is(err, quotationdomain.ErrInvalidUser),
		errors.Is(err, quotationdomain.ErrInvalidQuoteNumber),
		errors.Is(err, quotationdomain.ErrNoLineItems),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_request",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "the operation failed, please try again",
		}
	}
}
