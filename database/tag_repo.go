package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/overtone-studio/site-backend/catalog"
	"github.com/overtone-studio/site-backend/models"
)

// TagRepo manages the tag registry. Projects reference tags by name, not
// by key, so Rename and Delete cascade over every referencing project.
// Both run inside a single transaction: callers never observe the
// registry changed without the projects, or the reverse.
type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns every registered tag.
func (r *TagRepo) FindAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

// FindByCategory returns the registered tags for one category.
func (r *TagRepo) FindByCategory(category models.TagCategory) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("category = ?", category).Order("name ASC").Find(&tags).Error
	return tags, err
}

// Add registers a new tag.
func (r *TagRepo) Add(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// Rename changes a tag's name within its category and rewrites the
// matching entry in every project's tag set for that category, preserving
// each set's order and other entries.
func (r *TagRepo) Rename(category models.TagCategory, oldName, newName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Tag{}).
			Where("name = ? AND category = ?", oldName, category).
			Update("name", newName)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return rewriteProjectTags(tx, category, oldName, func(tags []string) []string {
			return catalog.RenameTagInSet(tags, oldName, newName)
		})
	})
}

// Delete removes a tag from the registry and strips it from every
// project's tag set for that category. Projects themselves are untouched.
func (r *TagRepo) Delete(category models.TagCategory, name string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("name = ? AND category = ?", name, category).
			Delete(&models.Tag{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return rewriteProjectTags(tx, category, name, func(tags []string) []string {
			return catalog.RemoveTagFromSet(tags, name)
		})
	})
}

// rewriteProjectTags applies rewrite to the tag set of every project that
// references name in the given category. The catalog is small enough to
// rewrite client-side, which keeps the cascade portable across backends
// that cannot update inside JSON columns.
func rewriteProjectTags(tx *gorm.DB, category models.TagCategory, name string, rewrite func([]string) []string) error {
	var projects []models.Project
	if err := tx.Find(&projects).Error; err != nil {
		return err
	}

	column := "industry_tags"
	if category == models.CategoryType {
		column = "type_tags"
	}

	for i := range projects {
		tags := projects[i].TagsForCategory(category)
		if !catalog.ContainsTag(tags, name) {
			continue
		}
		rewritten := datatypes.NewJSONSlice(rewrite(tags))
		projects[i].SetTagsForCategory(category, rewritten)
		if err := tx.Model(&projects[i]).Update(column, rewritten).Error; err != nil {
			return err
		}
	}
	return nil
}
