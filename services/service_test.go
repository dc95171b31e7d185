package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recipehub-api/models"
)

// newTestDB opens a fresh in-memory database for one test. The shared-cache
// DSN keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
		&models.Rating{},
		&models.AverageRating{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     models.RoleBasic,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return &user
}

func reloadUser(t *testing.T, db *gorm.DB, id string) *models.User {
	t.Helper()

	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload user %s: %v", id, err)
	}
	return &user
}

func reloadCategory(t *testing.T, db *gorm.DB, id int) *models.Category {
	t.Helper()

	var category models.Category
	if err := db.First(&category, "category_id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload category %d: %v", id, err)
	}
	return &category
}

func reloadPost(t *testing.T, db *gorm.DB, id int) *models.Post {
	t.Helper()

	var post models.Post
	if err := db.First(&post, "post_id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload post %d: %v", id, err)
	}
	return &post
}
