// routes.go - Builds the Gin engine with middleware and every API route

package routes

import (
	"go-course-backend/handlers"   // HTTP handlers for API endpoints
	"go-course-backend/middleware" // Auth gate, logging and the error boundary

	"github.com/gin-contrib/gzip" // Response compression
	"github.com/gin-gonic/gin"    // Gin web framework
)

// New returns an engine serving the user and course API.
func New() *gin.Engine {
	r := gin.New() // Create a bare Gin router; middleware is added explicitly below

	r.Use(
		middleware.Recovery(),              // Panics become 500s
		middleware.RequestID(),             // X-Request-ID on every response
		middleware.RequestLogger(),         // One access log line per request
		gzip.Gzip(gzip.DefaultCompression), // Compress JSON for clients that ask
		middleware.ErrorHandler(),          // Unhandled errors become 500s
	)

	auth := middleware.AuthMiddleware() // Credentials required from here on, per route

	r.GET("/", handlers.Welcome)

	// User routes
	r.GET("/users", auth, handlers.GetCurrentUser)
	r.POST("/users", handlers.Register)
	r.POST("/users/token", auth, handlers.IssueToken)

	// Course routes: reads are public, writes need an owner
	courses := r.Group("/courses")
	{
		courses.GET("", handlers.ListCourses)
		courses.GET("/:id", handlers.GetCourse)
		courses.POST("", auth, handlers.CreateCourse)
		courses.PUT("/:id", auth, handlers.UpdateCourse)
		courses.DELETE("/:id", auth, handlers.DeleteCourse)
	}

	r.NoRoute(handlers.NoRoute)
	return r
}
