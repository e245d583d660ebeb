package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactInquiry is a one-way record of a visitor message. Created by the
// public contact form, read by the admin inquiry list, never mutated.
type ContactInquiry struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Subject   *string   `json:"subject,omitempty" db:"subject" gorm:"type:text"`
	Budget    *string   `json:"budget,omitempty" db:"budget" gorm:"type:text"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
