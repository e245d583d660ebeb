package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents one portfolio work item with its media and classification
type Project struct {
	ID           uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title        string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Client       string                      `json:"client" db:"client" gorm:"type:text;not null"`
	Description  *string                     `json:"description,omitempty" db:"description" gorm:"type:text"`
	VimeoID      *string                     `json:"vimeo_id,omitempty" db:"vimeo_id" gorm:"type:text"`
	VideoURL     *string                     `json:"video_url,omitempty" db:"video_url" gorm:"type:text"`
	ThumbnailURL string                      `json:"thumbnail_url" db:"thumbnail_url" gorm:"type:text"`
	Images       datatypes.JSONSlice[string] `json:"images" db:"images"`
	IndustryTags datatypes.JSONSlice[string] `json:"industry_tags" db:"industry_tags"`
	TypeTags     datatypes.JSONSlice[string] `json:"type_tags" db:"type_tags"`
	IsFeatured   bool                        `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
	IsVisible    bool                        `json:"is_visible" db:"is_visible" gorm:"not null;default:true"`
	WorkDate     time.Time                   `json:"work_date" db:"work_date" gorm:"type:date;not null"`
	CreatedAt    time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// TagsForCategory returns the project's tag set for the given category.
func (p *Project) TagsForCategory(category TagCategory) []string {
	if category == CategoryIndustry {
		return p.IndustryTags
	}
	return p.TypeTags
}

// SetTagsForCategory replaces the project's tag set for the given category.
func (p *Project) SetTagsForCategory(category TagCategory, tags []string) {
	if category == CategoryIndustry {
		p.IndustryTags = tags
		return
	}
	p.TypeTags = tags
}
