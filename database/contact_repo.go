package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/overtone-studio/site-backend/models"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// FindAll returns all contact inquiries, newest first.
func (r *ContactRepo) FindAll() ([]models.ContactInquiry, error) {
	var inquiries []models.ContactInquiry
	err := r.db.Order("created_at DESC").Find(&inquiries).Error
	return inquiries, err
}

// Add inserts a new inquiry. Identity and creation timestamp are assigned
// by the store. Inquiries are never updated or deleted afterward.
func (r *ContactRepo) Add(inquiry *models.ContactInquiry) error {
	inquiry.ID = uuid.Nil
	inquiry.CreatedAt = time.Time{}
	return r.db.Create(inquiry).Error
}
