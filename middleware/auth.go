// auth.go - Authentication middleware
// This file implements the gate in front of every identity-requiring route
//
// Authentication Flow:
// 1. Read credentials from the Authorization header (Basic or Bearer)
// 2. Resolve them to a stored user
// 3. Verify the password against the stored bcrypt hash (Basic only)
// 4. Store the user in the request's gin context for handlers
// 5. Reject with 401 and a Basic challenge on any failure

package middleware // Declares the package name

import ( // Import required packages
	"errors"   // For classifying lookup failures
	"net/http" // HTTP status codes (401, etc.)
	"strings"  // For header parsing
	"sync"     // For the lazily built dummy hash

	"go-course-backend/config"   // Project config (for JWT secret)
	"go-course-backend/database" // User lookups
	"go-course-backend/logger"   // Leveled logging
	"go-course-backend/models"   // User model and password helpers

	"github.com/gin-gonic/gin" // Gin web framework (for middleware)
)

const currentUserKey = "currentUser" // Gin context key holding *models.User

var errUnauthenticated = errors.New("unauthenticated")

// dummyHash is compared against when the email is unknown so that a missing
// account costs the same bcrypt work as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	hash, err := models.HashPassword("not-a-real-password")
	if err != nil {
		panic(err)
	}
	return hash
})

// AuthMiddleware - Returns a Gin middleware function that authenticates the caller
// On success the user is available to handlers through CurrentUser.
func AuthMiddleware() gin.HandlerFunc { // Returns a Gin middleware function
	return func(c *gin.Context) { // Middleware handler (runs before each gated request)
		user, err := authenticate(c)
		switch {
		case errors.Is(err, errUnauthenticated): // Bad or missing credentials
			deny(c)
			return
		case err != nil: // Database fault; the error handler turns it into a 500
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(currentUserKey, user) // Request scoped: lives only as long as this gin.Context
		c.Next()                    // Continue to next handler (authentication successful)
	}
}

// CurrentUser returns the user resolved by AuthMiddleware. It panics when the
// route is not behind AuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(currentUserKey).(*models.User)
}

func authenticate(c *gin.Context) (*models.User, error) {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return authenticateToken(c, strings.TrimPrefix(header, "Bearer "))
	}

	email, password, ok := c.Request.BasicAuth() // Decodes "Basic base64(email:password)"
	if !ok {
		return nil, errUnauthenticated
	}

	user, err := database.FindUserByEmail(c.Request.Context(), email)
	if errors.Is(err, database.ErrNotFound) {
		_ = models.ComparePassword(dummyHash(), password)
		logger.Debugf("authentication failed: no user %q", email)
		return nil, errUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	if err := models.ComparePassword(user.Password, password); err != nil { // Constant time compare
		logger.Debugf("authentication failed: wrong password for %q", email)
		return nil, errUnauthenticated
	}
	return user, nil
}

func authenticateToken(c *gin.Context, raw string) (*models.User, error) {
	userID, err := ParseToken(raw, config.Load().JWTSecret)
	if err != nil {
		logger.Debugf("authentication failed: %v", err)
		return nil, errUnauthenticated
	}

	user, err := database.FindUserByID(c.Request.Context(), userID)
	if errors.Is(err, database.ErrNotFound) { // Token outlived its user
		return nil, errUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// deny aborts with 401 and a generic challenge
func deny(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="courses"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
}
