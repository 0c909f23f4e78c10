package utils

import "github.com/gin-gonic/gin"

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondValidationError returns a field-keyed error map so forms can show
// messages next to the offending inputs.
func RespondValidationError(c *gin.Context, code int, errors map[string]string) {
	c.JSON(code, gin.H{
		"status":  false,
		"message": "The given data was invalid.",
		"errors":  errors,
	})
}
