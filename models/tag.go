package models

import "github.com/google/uuid"

// TagCategory scopes a tag name. Names are unique within a category, not
// globally, so "Drama" may exist as both an industry and a work type.
type TagCategory string

const (
	CategoryIndustry TagCategory = "industry"
	CategoryType     TagCategory = "type"
)

// Valid reports whether the category is one of the two known values.
func (c TagCategory) Valid() bool {
	return c == CategoryIndustry || c == CategoryType
}

// Tag represents one label usable for classifying projects. Projects store
// tag names directly in their tag sets rather than referencing tags by ID,
// so renaming or deleting a tag cascades through database.TagRepo.
type Tag struct {
	ID       uuid.UUID   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name     string      `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_tag_name_category"`
	Category TagCategory `json:"category" db:"category" gorm:"type:text;not null;uniqueIndex:idx_tag_name_category"`
}
