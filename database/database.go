package database

import (
	"gorm.io/gorm"
)

type Database struct {
	projectRepo   *ProjectRepo
	tagRepo       *TagRepo
	contactRepo   *ContactRepo
	adminUserRepo *AdminUserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:   NewProjectRepo(db),
		tagRepo:       NewTagRepo(db),
		contactRepo:   NewContactRepo(db),
		adminUserRepo: NewAdminUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) AdminUserRepo() *AdminUserRepo {
	return d.adminUserRepo
}
