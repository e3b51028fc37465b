// utils/response.go
package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Response is the body of every public form endpoint.
type Response struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	MissingFields []string `json:"missingFields,omitempty"`
}

func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{Success: false, Message: message})
}

func RespondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

// RespondMissingFields lists every missing field in one 400 response.
func RespondMissingFields(c *gin.Context, err *ValidationError) {
	message := "Missing required field: " + err.Fields[0] + "."
	if len(err.Fields) > 1 {
		message = "Please fill in all required fields. Missing: " + strings.Join(err.Fields, ", ") + "."
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Success:       false,
		Message:       message,
		MissingFields: err.Fields,
	})
}
