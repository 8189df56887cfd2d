package database

import (
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dimasfirmansyah/product-catalog/internal/config"
	"github.com/dimasfirmansyah/product-catalog/internal/database/models"
)

// Seed ensures the built-in roles exist and creates the initial admin account
// when it is missing. Safe to run on every startup.
func Seed(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	for _, name := range []string{models.RoleAdmin, models.RoleUser} {
		var role models.Role
		err := db.Where("name = ?", name).First(&role).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&models.Role{Name: name}).Error; err != nil {
				return err
			}
			logger.Info("✅ [Seed] Created role", "role", name)
		} else if err != nil {
			return err
		}
	}

	adminEmail := strings.ToLower(cfg.SeedAdminEmail)

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var adminRole models.Role
	if err := db.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	admin := &models.User{
		Email:          adminEmail,
		FullName:       cfg.SeedAdminFullName,
		PasswordHash:   string(hash),
		EmailConfirmed: true,
		Roles:          []models.Role{adminRole},
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("✅ [Seed] Created default admin user", "email", adminEmail)
	return nil
}
