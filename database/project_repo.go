package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/overtone-studio/site-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects sorted by work date, newest first. Tie
// order beyond the primary sort column is whatever the store yields.
func (r *ProjectRepo) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("work_date DESC").Find(&projects).Error
	return projects, err
}

// FindVisible returns only the projects flagged visible, sorted by work
// date descending. Every public-facing consumer goes through this.
func (r *ProjectRepo) FindVisible() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("is_visible = ?", true).Order("work_date DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project. Identity and creation timestamp are assigned
// by the store; any caller-supplied values are dropped before submission.
func (r *ProjectRepo) Add(project *models.Project) error {
	project.ID = uuid.Nil
	project.CreatedAt = time.Time{}
	return r.db.Create(project).Error
}

// Update replaces an existing project. The identity must be set and is
// never changed by an update.
func (r *ProjectRepo) Update(project *models.Project) error {
	if project.ID == uuid.Nil {
		return gorm.ErrMissingWhereClause
	}
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id. Irreversible; hiding
// a project is a visibility update, not a delete.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, id).Error
}
