package auth

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-system/internal/models"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminEmail    = "admin@appointment-system.com"
)

// SeedDefaultAdmin creates the bootstrap admin account on first startup
// and is a no-op on every run after that. It exists for initial access
// only; the password is expected to be rotated immediately.
func SeedDefaultAdmin(db *gorm.DB, bcryptCost int) error {
	var existing models.User
	err := db.Where("username = ?", DefaultAdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := HashPassword(DefaultAdminPassword, bcryptCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     DefaultAdminUsername,
		Email:        DefaultAdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
