// database_test.go - Tests for persistence and error translation

package database

import (
	"context"       // For passing request contexts
	"path/filepath" // For building the test DB path
	"testing"       // Go's testing package

	"go-course-backend/logger" // Leveled logging
	"go-course-backend/models" // User and Course models

	"github.com/op/go-logging"       // Log levels
	gormlogger "gorm.io/gorm/logger" // GORM query logging

	"github.com/stretchr/testify/assert"  // For assertions
	"github.com/stretchr/testify/require" // For fatal assertions
)

// setupTestDB connects to a fresh database file that is removed after the test
func setupTestDB(t *testing.T) {
	t.Helper()
	t.Setenv("SEED_EMAIL", "") // Keep seeding out of unrelated tests
	require.NoError(t, Connect(filepath.Join(t.TempDir(), "test.db")))
	t.Cleanup(func() { _ = Close() })
}

func newUser(t *testing.T, email string) *models.User {
	t.Helper()
	hash, err := models.HashPassword("password")
	require.NoError(t, err)
	u := &models.User{FirstName: "Joe", LastName: "Smith", EmailAddress: email, Password: hash}
	require.NoError(t, CreateUser(context.Background(), u))
	return u
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	newUser(t, "joe@smith.com")

	hash, err := models.HashPassword("other")
	require.NoError(t, err)
	dup := &models.User{FirstName: "Joe", LastName: "Again", EmailAddress: "joe@smith.com", Password: hash}
	err = CreateUser(context.Background(), dup)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{models.MsgEmailTaken}, verr.Messages)

	var count int64
	require.NoError(t, DB.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateUserValidation(t *testing.T) {
	setupTestDB(t)

	err := CreateUser(context.Background(), &models.User{EmailAddress: "bad"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "Please provide a valid email address.")
}

func TestCreateUserRejectsPlaintextPassword(t *testing.T) {
	setupTestDB(t)

	u := &models.User{FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com", Password: "plain"}
	assert.ErrorIs(t, CreateUser(context.Background(), u), models.ErrPlaintextPassword)
}

func TestFindUser(t *testing.T) {
	setupTestDB(t)
	u := newUser(t, "joe@smith.com")

	found, err := FindUserByEmail(context.Background(), "joe@smith.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	found, err = FindUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "joe@smith.com", found.EmailAddress)

	_, err = FindUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = FindUserByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCoursesNewestFirst(t *testing.T) {
	setupTestDB(t)
	owner := newUser(t, "joe@smith.com")
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		require.NoError(t, CreateCourse(ctx, &models.Course{Title: title, UserID: owner.ID}))
	}

	courses, err := ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, "C", courses[0].Title)
	assert.Equal(t, "B", courses[1].Title)
	assert.Equal(t, "A", courses[2].Title)
	assert.Equal(t, "Joe", courses[0].Owner.FirstName) // Owner is preloaded
}

func TestCreateCourseUnknownOwner(t *testing.T) {
	setupTestDB(t)

	err := CreateCourse(context.Background(), &models.Course{Title: "Orphan", UserID: 999})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{models.MsgCourseOwner}, verr.Messages)
}

func TestSaveAndDeleteCourse(t *testing.T) {
	setupTestDB(t)
	owner := newUser(t, "joe@smith.com")
	ctx := context.Background()

	course := &models.Course{Title: "Bookcase", UserID: owner.ID}
	require.NoError(t, CreateCourse(ctx, course))

	loaded, err := FindCourse(ctx, course.ID)
	require.NoError(t, err)
	loaded.Title = "Better Bookcase"
	require.NoError(t, SaveCourse(ctx, loaded))

	loaded.Title = ""
	var verr *models.ValidationError
	require.ErrorAs(t, SaveCourse(ctx, loaded), &verr)

	reloaded, err := FindCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Better Bookcase", reloaded.Title)

	require.NoError(t, DeleteCourse(ctx, reloaded))
	_, err = FindCourse(ctx, course.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeedUser(t *testing.T) {
	t.Setenv("SEED_EMAIL", "seed@example.com")
	t.Setenv("SEED_PASSWORD", "seedpass")
	path := filepath.Join(t.TempDir(), "seed.db")

	require.NoError(t, Connect(path))
	require.NoError(t, Close())
	require.NoError(t, Connect(path)) // Second start does not duplicate the seed
	t.Cleanup(func() { _ = Close() })

	u, err := FindUserByEmail(context.Background(), "seed@example.com")
	require.NoError(t, err)
	assert.NoError(t, models.ComparePassword(u.Password, "seedpass"))

	var count int64
	require.NoError(t, DB.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestConnectSilencesGormBelowDebug(t *testing.T) {
	t.Cleanup(func() { logger.InitLogger(logging.INFO) })

	logger.InitLogger(logging.ERROR) // SQL and "record not found" stay out of the logs
	setupTestDB(t)
	assert.Equal(t, gormlogger.Discard, DB.Config.Logger)

	logger.InitLogger(logging.DEBUG)
	setupTestDB(t)
	assert.Equal(t, gormlogger.Default, DB.Config.Logger)
}
