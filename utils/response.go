package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes the uniform error body used across the API
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
