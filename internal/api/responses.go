package api

import "github.com/gin-gonic/gin"

// Envelope is the body shape every endpoint responds with.
type Envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func Data(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Status: status, Data: data})
}

func DataWithMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Status: status, Message: message, Data: data})
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Status: status, Message: message})
}

// FieldErrors reports per-field validation failures in the envelope's
// errors map.
func FieldErrors(c *gin.Context, status int, errs map[string]string) {
	c.JSON(status, Envelope{Status: status, Errors: errs})
}
