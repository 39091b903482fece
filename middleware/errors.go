// errors.go - The single fault boundary for the API
// Handlers translate the errors they understand; everything else lands here as a 500.

package middleware

import (
	"net/http"

	"go-course-backend/logger"

	"github.com/gin-gonic/gin"
)

var internalError = gin.H{"message": "Internal Server Error"}

// ErrorHandler logs errors attached with c.Error and answers 500 if the
// handler did not write a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			logger.Errorf("%s %s [%s]: %v", c.Request.Method, c.Request.URL.Path, c.GetString(requestIDKey), e.Err)
		}
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, internalError)
		}
	}
}

// Recovery turns panics into the same 500 response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Errorf("panic serving %s %s [%s]: %v", c.Request.Method, c.Request.URL.Path, c.GetString(requestIDKey), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, internalError)
	})
}
