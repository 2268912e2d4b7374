// Package response writes the uniform response envelope. Domain errors are
// translated into it exactly once, at the handler boundary.
package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// Error writes the error envelope. code is a short machine-readable label
// ("Not Found", "Conflict", ...), message the human-readable detail.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"timestamp": time.Now().Format(time.RFC3339),
		"status":    statusCode,
		"error":     code,
		"message":   message,
	})
}

// ValidationError adds per-field details to the envelope.
func ValidationError(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"timestamp": time.Now().Format(time.RFC3339),
		"status":    http.StatusBadRequest,
		"error":     "Bad Request",
		"message":   message,
		"fields":    fields,
	})
}

// AbortError is Error plus request abortion, for middleware use.
func AbortError(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}
