package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/wnjuguna/portfolio/internal/errs"
	"github.com/wnjuguna/portfolio/models"
)

func (s *Store) AdminByID(ctx context.Context, id uint) (models.AdminUser, error) {
	var admin models.AdminUser
	if err := s.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return models.AdminUser{}, translate(err)
	}
	return admin, nil
}

func (s *Store) AdminByUsername(ctx context.Context, username string) (models.AdminUser, error) {
	var admin models.AdminUser
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return models.AdminUser{}, translate(err)
	}
	return admin, nil
}

func (s *Store) AdminUpdate(ctx context.Context, admin *models.AdminUser) error {
	if err := s.db.WithContext(ctx).Save(admin).Error; err != nil {
		return errs.Wrap(err, "update admin user")
	}
	return nil
}

// EnsureAdmin creates the seed admin account if no account exists yet.
// Existing accounts are left untouched so credential changes survive
// restarts.
func (s *Store) EnsureAdmin(ctx context.Context, username, passwordHash string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return errs.Wrap(err, "count admin users")
	}
	if count > 0 {
		return nil
	}

	admin := models.AdminUser{
		Username:     username,
		PasswordHash: passwordHash,
		IsStaff:      true,
	}
	err := s.db.WithContext(ctx).Create(&admin).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		// Raced with another instance seeding the same account.
		return nil
	}
	return errs.Wrap(err, "create admin user")
}
