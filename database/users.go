// users.go - User persistence

package database

import (
	"context"

	"go-course-backend/models"
)

// CreateUser inserts u. u.Password must already be hashed.
func CreateUser(ctx context.Context, u *models.User) error {
	err := DB.WithContext(ctx).Omit("Courses").Create(u).Error
	return translate(err, models.MsgEmailTaken)
}

// FindUserByEmail returns the user registered under email.
func FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := DB.WithContext(ctx).Where("email_address = ?", email).First(&u).Error; err != nil {
		return nil, translate(err, "")
	}
	return &u, nil
}

// FindUserByID returns the user with the given primary key.
func FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err, "")
	}
	return &u, nil
}
