// misc.go - Root and fallback routes

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Welcome - Friendly greeting on GET /
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the course catalog REST API!"})
}

// NoRoute - 404 for anything the router does not know
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Route Not Found"})
}
