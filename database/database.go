package database

import (
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recipehub-api/models"

	"github.com/google/uuid"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
		&models.Rating{},
		&models.AverageRating{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// Prevent duplicate ratings for the same recipe by the same user.
	// The model also declares the index; this covers tables migrated by
	// older versions that predate it.
	if err := db.Exec("ALTER TABLE ratings ADD CONSTRAINT uk_ratings_recipe_user UNIQUE (recipe_id, user_id)").Error; err != nil {
		// Ignore error if constraint already exists
		slog.Warn("could not add unique constraint for ratings", "error", err)
	}

	return nil
}

// SeedData creates an initial admin account when the users table is empty.
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		slog.Info("database already has data, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:       uuid.New().String(),
		Username: "admin",
		Email:    "admin@recipehub.com",
		Password: string(hash),
		Role:     models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	slog.Info("database seeded with initial admin user")
	return nil
}
