package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response. Field-level problems are
// attached under "fields" when present.
func JSONError(c *gin.Context, status int, err error, message string, fields ...map[string]string) {
	body := gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	}
	if len(fields) > 0 && len(fields[0]) > 0 {
		body["fields"] = fields[0]
	}
	c.JSON(status, body)
}
