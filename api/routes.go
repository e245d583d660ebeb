package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public surface and the session-gated admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.listPublicProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/tags", handlers.tagHandler.getAllTags())
		r.Post("/contact", handlers.contactHandler.submitContact())
		r.Post("/auth/login", handlers.authHandler.login())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/auth/session", handlers.authHandler.session())
		r.Post("/auth/logout", handlers.authHandler.logout())

		r.Get("/admin/projects", handlers.projectHandler.listAdminProjects())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/tag", handlers.tagHandler.createTag())
		r.Put("/tag", handlers.tagHandler.renameTag())
		r.Delete("/tag", handlers.tagHandler.deleteTag())

		r.Get("/contacts", handlers.contactHandler.getAllContacts())
		r.Post("/uploads", handlers.uploadHandler.uploadImages())
	})
}
