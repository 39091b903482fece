// courses.go - Course persistence

package database // Declares the package name

import ( // Import required packages
	"context" // Request scoped cancellation

	"go-course-backend/models" // Course model

	"gorm.io/gorm/clause" // For skipping association writes
)

// ListCourses returns every course with its owner loaded, newest first.
// The id tiebreak keeps the order stable for rows created within the same clock tick.
func ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course // Destination slice
	err := DB.WithContext(ctx).
		Preload("Owner").         // Load the owning user for display names
		Order("created_at DESC"). // Newest first
		Order("id DESC").         // Tiebreak on insert order
		Find(&courses).Error
	if err != nil { // Unexpected fault
		return nil, translate(err, "")
	}
	return courses, nil
}

// FindCourse returns the course with the given id and its owner.
func FindCourse(ctx context.Context, id uint) (*models.Course, error) {
	var c models.Course                                                               // Destination record
	if err := DB.WithContext(ctx).Preload("Owner").First(&c, id).Error; err != nil { // Look up by primary key
		return nil, translate(err, "") // Missing rows become ErrNotFound
	}
	return &c, nil
}

// CreateCourse inserts c. The owner row is never written through the association.
func CreateCourse(ctx context.Context, c *models.Course) error {
	err := DB.WithContext(ctx).Omit(clause.Associations).Create(c).Error // Insert the course row only
	return translate(err, "")                                            // Unknown owner becomes a validation error
}

// SaveCourse writes every column of c back to its row.
func SaveCourse(ctx context.Context, c *models.Course) error {
	err := DB.WithContext(ctx).Omit(clause.Associations).Save(c).Error // Update the course row only
	return translate(err, "")                                          // Hook failures pass through as validation errors
}

// DeleteCourse removes c.
func DeleteCourse(ctx context.Context, c *models.Course) error {
	err := DB.WithContext(ctx).Delete(&models.Course{}, c.ID).Error // Hard delete by primary key
	return translate(err, "")
}
