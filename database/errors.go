// errors.go - Persistence errors exposed to handlers
//
// Every function in this package returns one of:
//   - *models.ValidationError: a declarative rule or constraint was violated (client error)
//   - ErrNotFound: no record matched
//   - anything else: an unexpected fault

package database

import (
	"errors"

	"go-course-backend/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// translate maps GORM errors onto the package error kinds. uniqueMsg is the
// message reported for a unique constraint violation on the record being written.
func translate(err error, uniqueMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.NewValidationError(uniqueMsg)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return models.NewValidationError(models.MsgCourseOwner)
	default:
		return err // Validation errors from hooks and unexpected faults pass through untouched
	}
}
