package db

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sefinote/sefinote/internal/models"
	"github.com/sefinote/sefinote/internal/rbac"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateDefaultAdmin creates a default admin user if ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no users exist in the database. The admin
// role is what allows template management.
func CreateDefaultAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")

	if email == "" || password == "" {
		slog.Info("No ADMIN_EMAIL or ADMIN_PASSWORD set, skipping default admin creation")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		slog.Info("Users already exist, skipping default admin creation")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	if err := rbac.MakeAdmin(user.ID); err != nil {
		return fmt.Errorf("failed to grant admin role: %w", err)
	}

	slog.Info("Default admin user created", "email", email)
	return nil
}
