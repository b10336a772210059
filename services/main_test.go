package services

import (
	"fmt"
	"strings"
	"testing"
	"venuefinder-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory SQLite database migrated with the
// full schema. Each test gets its own named database so state never
// leaks between tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Venue{},
		&models.VenueImage{},
		&models.Amenity{},
		&models.VenueAmenity{},
		&models.SearchHistory{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
