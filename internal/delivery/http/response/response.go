package response

import (
	"github.com/gin-gonic/gin"
)

// Message is the body of every non-2xx response and of simple
// acknowledgements: {"message": "..."}.
type Message struct {
	Message string `json:"message"`
}

// JSON writes data as-is. Entity and list endpoints return the raw
// shape, no envelope.
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// OK acknowledges a mutation with a plain message body.
func OK(c *gin.Context, code int, message string) {
	c.JSON(code, Message{Message: message})
}

// Error writes the error body for a failed request.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Message{Message: message})
}
