// user.go - Handles user registration, profile lookup and token issuing

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // For spotting over-long passwords
	"net/http" // HTTP status codes

	"go-course-backend/config"     // Project config
	"go-course-backend/database"   // Database access
	"go-course-backend/middleware" // Current user and tokens
	"go-course-backend/models"     // User model

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing errors
)

const msgPasswordTooLong = "Please provide a password of 72 bytes or fewer."

type RegisterInput struct { // Struct for registration input
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

type userResponse struct { // Public view of a user: never the email or password
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register - Handler for user registration (POST /users)
func Register(c *gin.Context) {
	var input RegisterInput // Declare input variable
	if !bindJSON(c, &input) { // Parse JSON input
		return
	}

	user := models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		EmailAddress: input.EmailAddress,
		Password:     input.Password,
	}
	if err := user.Validate(); err != nil { // Check the rules against the plaintext before hashing
		handleError(c, err)
		return
	}

	hash, err := models.HashPassword(input.Password) // Hash password with a fresh salt
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		handleError(c, models.NewValidationError(msgPasswordTooLong))
		return
	}
	if err != nil {
		handleError(c, err)
		return
	}
	user.Password = hash // Only the hash is ever persisted

	if err := database.CreateUser(c.Request.Context(), &user); err != nil { // Save user to DB
		handleError(c, err) // Duplicate email comes back as a validation error
		return
	}

	c.Header("Location", "/")
	c.Status(http.StatusCreated) // No body: nothing about the account is echoed back
}

// GetCurrentUser - Returns the authenticated user's name (GET /users)
func GetCurrentUser(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, userResponse{FirstName: user.FirstName, LastName: user.LastName})
}

// IssueToken - Returns a bearer token for the authenticated user (POST /users/token)
func IssueToken(c *gin.Context) {
	user := middleware.CurrentUser(c)
	cfg := config.Load() // Load config for JWT secret and lifetime

	token, expiresAt, err := middleware.NewToken(user.ID, cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresAt": expiresAt})
}
