package api

import (
	"github.com/overtone-studio/site-backend/database"
	"github.com/overtone-studio/site-backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, uploader *storage.Uploader, sessions sessionManager, config map[string]string) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(database.ProjectRepo()),
		tagHandler:     newTagHandler(database.TagRepo()),
		contactHandler: newContactHandler(database.ContactRepo(), config),
		uploadHandler:  newUploadHandler(uploader),
		authHandler:    newAuthHandler(database.AdminUserRepo(), sessions),
	}
}
