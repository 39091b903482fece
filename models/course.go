// course.go - Defines the Course model for the database

package models // Declares the package name

import ( // Import required packages
	"time" // For bookkeeping timestamps

	"gorm.io/gorm" // GORM hooks
)

// MsgCourseOwner is reported when a course has no owner or the owner does not exist.
const MsgCourseOwner = "A course must belong to an existing user."

var courseMessages = map[string]string{ // Messages for courses, keyed by "Field.tag"
	"Title.required":  "A title is required.", // Title missing or empty
	"UserID.required": MsgCourseOwner,         // No owner bound
}

type Course struct { // Course struct represents a teachable unit owned by one user
	ID              uint   `gorm:"primaryKey"`                         // Unique ID
	Title           string `gorm:"not null" validate:"required"`       // Course title
	Description     string `gorm:"type:text"`                          // Free form description
	EstimatedTime   string // e.g. "12 hours"
	MaterialsNeeded string // e.g. "* Hammer\n* Nails"
	UserID          uint   `gorm:"not null;index" validate:"required"` // Foreign key to users table
	Owner           User   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" validate:"-"` // Owning user (preloaded on reads)

	CreatedAt time.Time `gorm:"index"` // Used for newest-first listing
	UpdatedAt time.Time // Set by GORM
}

// Validate checks the declarative field rules and returns a *ValidationError
// listing every violated rule.
func (c *Course) Validate() error {
	return check(c, courseMessages) // Run the tag rules through the course messages
}

// BeforeSave runs on every create and update.
func (c *Course) BeforeSave(tx *gorm.DB) error { // GORM hook (create and update)
	return c.Validate() // Abort the write on any violated rule
}
