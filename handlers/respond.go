// respond.go - Shared request parsing and error translation for handlers

package handlers

import (
	"errors"   // For classifying persistence errors
	"net/http" // HTTP status codes

	"go-course-backend/models" // ValidationError

	"github.com/gin-gonic/gin" // Gin web framework
)

const msgInvalidJSON = "Request body must be valid JSON."

// bindJSON decodes the request body into dst, answering 400 when it is not JSON.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{msgInvalidJSON}})
		return false
	}
	return true
}

// handleError answers 400 for validation failures and hands everything else
// to the error middleware. Lookups answer their own 404 before getting here.
func handleError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr): // Declarative rule or constraint violated
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Messages})
	default: // Unexpected: 500 from middleware.ErrorHandler
		_ = c.Error(err)
	}
}
