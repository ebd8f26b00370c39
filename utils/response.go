package utils

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope every API error and simple success uses.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SendSuccess sends a {success:true, message} response.
func SendSuccess(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
	})
}

// SendError sends a {success:false, message} response.
func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}
