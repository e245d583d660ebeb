package database

import (
	"gorm.io/gorm"

	"github.com/overtone-studio/site-backend/models"
)

type AdminUserRepo struct {
	db *gorm.DB
}

func NewAdminUserRepo(db *gorm.DB) *AdminUserRepo {
	return &AdminUserRepo{db}
}

// FindByEmail returns the admin account with the given email.
func (r *AdminUserRepo) FindByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
