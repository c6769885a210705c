// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// All failure payloads share the `{"error": "..."}` shape. Underlying
// error detail is logged server-side; only the generic message crosses
// the wire.
type ErrorPayload struct {
	Error string `json:"error"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorPayload{Error: message})
}

func NotFoundResponse(c *gin.Context, entity string) {
	ErrorResponse(c, http.StatusNotFound, entity+" not found")
}

func InternalErrorResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, message)
}
