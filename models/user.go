// user.go - Defines the User model for the database

package models // Declares the package name

import (
	"errors" // For the plaintext password guard
	"time"   // For bookkeeping timestamps

	"gorm.io/gorm" // GORM hooks
)

// ErrPlaintextPassword is returned when a User is saved without hashing its password first.
var ErrPlaintextPassword = errors.New("user password must be stored as a bcrypt hash")

// MsgEmailTaken is reported when the email address is already registered.
const MsgEmailTaken = "The email address you entered already exists."

var userMessages = map[string]string{
	"FirstName.required":    "A first name is required.",
	"LastName.required":     "A last name is required.",
	"EmailAddress.required": "An email address is required.",
	"EmailAddress.email":    "Please provide a valid email address.",
	"Password.required":     "A password is required.",
}

type User struct { // User struct represents a user in the database
	ID           uint      `gorm:"primaryKey"`                                                      // Unique user ID (primary key)
	FirstName    string    `gorm:"not null" validate:"required"`                                    // Given name
	LastName     string    `gorm:"not null" validate:"required"`                                    // Family name
	EmailAddress string    `gorm:"uniqueIndex;not null" validate:"required,email"`                  // Login identifier (must be unique)
	Password     string    `gorm:"not null" validate:"required"`                                    // Hashed password, never plaintext once stored
	Courses      []Course  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"` // Courses owned by this user
	CreatedAt    time.Time // Set by GORM
	UpdatedAt    time.Time // Set by GORM
}

// Validate checks the declarative field rules and returns a *ValidationError
// listing every violated rule.
func (u *User) Validate() error {
	return check(u, userMessages)
}

// BeforeSave runs on every create and update.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if !IsHashed(u.Password) { // The hash invariant holds from the first insert onward
		return ErrPlaintextPassword
	}
	return nil
}
