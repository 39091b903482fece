// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"go-course-backend/config" // Project config
	"go-course-backend/logger" // Leveled logging
	"go-course-backend/models" // User and Course models

	"gorm.io/driver/sqlite"          // SQLite driver for GORM
	"gorm.io/gorm"                   // GORM ORM
	gormlogger "gorm.io/gorm/logger" // GORM query logging
)

var DB *gorm.DB // Global variable to hold the database connection (pointer to gorm.DB)

func Connect(dbPath string) error { // Connect opens the database and runs migrations
	gormLog := gormlogger.Discard // Keep SQL out of the logs unless debugging
	if logger.IsDebug() {
		gormLog = gormlogger.Default
	}

	dsn := dbPath + "?_foreign_keys=on&_busy_timeout=5000" // Enforce Course.UserID on every connection
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormLog,
		TranslateError: true, // Map SQLite constraint codes to gorm.ErrDuplicatedKey and friends
	})
	if err != nil { // If error, return it
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1) // SQLite allows one writer; serialize instead of failing with SQLITE_BUSY

	// Auto-migrate the models (create tables if needed)
	if err := db.AutoMigrate(&models.User{}, &models.Course{}); err != nil {
		return err
	}

	DB = db
	return createSeedUser()
}

// Close releases the underlying connection pool.
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// createSeedUser - Creates a seed user if configured and the address is not taken
// This uses environment variables instead of hardcoded credentials
func createSeedUser() error {
	cfg := config.Load() // Load configuration

	// Only seed when explicitly configured
	if cfg.SeedEmail == "" || cfg.SeedPassword == "" {
		return nil
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("email_address = ?", cfg.SeedEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := models.HashPassword(cfg.SeedPassword)
	if err != nil {
		return err
	}
	seed := models.User{
		FirstName:    cfg.SeedFirstName,
		LastName:     cfg.SeedLastName,
		EmailAddress: cfg.SeedEmail,
		Password:     hash,
	}
	if err := DB.Create(&seed).Error; err != nil {
		return err
	}
	logger.Infof("created seed user %s", seed.EmailAddress)
	return nil
}
