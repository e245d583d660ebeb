package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/overtone-studio/site-backend/catalog"
	"github.com/overtone-studio/site-backend/database"
	"github.com/overtone-studio/site-backend/errs"
	"github.com/overtone-studio/site-backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// ProjectCollection is the gallery listing: the filtered projects plus the
// facet values the filter UI offers.
type ProjectCollection struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total"`
	Facets   catalog.FacetSet `json:"facets"`
}

// ProjectDetail decorates one project with its resolved media references.
type ProjectDetail struct {
	models.Project
	Thumbnail string            `json:"thumbnail"`
	Video     *catalog.VideoRef `json:"video,omitempty"`
}

func newProjectDetail(p models.Project) ProjectDetail {
	detail := ProjectDetail{
		Project:   p,
		Thumbnail: catalog.EffectiveThumbnail(p),
	}
	if ref, ok := catalog.PrimaryVideo(p); ok {
		detail.Video = &ref
	}
	return detail
}

// listPublicProjects retrieves visible projects filtered by the caller's
// search/tag state. Facets are derived from the full visible set, not the
// filtered one, so deselected options stay on offer.
// @Summary List public projects
// @Tags Projects
// @Param search query string false "Case-insensitive substring over title or client"
// @Param industry query []string false "Selected industry tags (OR within category)"
// @Param type query []string false "Selected work-type tags (OR within category)"
// @Success 200 {object} ProjectCollection
// @Router /projects [get]
func (h projectHandler) listPublicProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindVisible()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		query := r.URL.Query()
		state := catalog.FilterState{
			Search:     query.Get("search"),
			Industries: query["industry"],
			Types:      query["type"],
		}

		filtered := catalog.Filter(projects, state)

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: filtered,
			Total:    len(filtered),
			Facets:   catalog.Facets(projects),
		})
	}
}

// listAdminProjects retrieves all projects, hidden ones included.
// @Summary List all projects (admin)
// @Tags Projects
// @Success 200 {object} ProjectCollection
// @Router /admin/projects [get]
func (h projectHandler) listAdminProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
			Facets:   catalog.Facets(projects),
		})
	}
}

// getProject retrieves a specific visible project by ID. Hidden projects
// are indistinguishable from missing ones on the public surface.
// @Summary Get project
// @Tags Projects
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} ProjectDetail
// @Failure 404 {object} ErrorResponse
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if !project.IsVisible {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, newProjectDetail(*project))
	}
}

// createProject creates a new project. Identity and creation timestamp are
// store-assigned; whatever the caller sent for them is dropped.
// @Summary Create project
// @Tags Projects
// @Param project body models.Project true "Project data"
// @Success 201 {object} ProjectDetail
// @Failure 400 {object} ErrorResponse
// @Router /project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validateProject(&project); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		normalizeProject(&project)

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, newProjectDetail(project))
	}
}

// updateProject updates an existing project in place. The path identity
// wins over anything in the body; the creation timestamp is preserved.
// @Summary Update project
// @Tags Projects
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body models.Project true "Updated project data"
// @Success 200 {object} ProjectDetail
// @Failure 404 {object} ErrorResponse
// @Router /project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validateProject(&project); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		normalizeProject(&project)

		project.ID = projectID
		project.CreatedAt = existing.CreatedAt

		if err := h.projectRepo.Update(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, newProjectDetail(project))
	}
}

// deleteProject deletes a project by ID. Irreversible; hiding a project is
// a visibility update through updateProject instead.
// @Summary Delete project
// @Tags Projects
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /project/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		if _, err := h.projectRepo.FindByID(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

func validateProject(p *models.Project) error {
	if p.Title == "" {
		return errs.NewValidationError("title", "title is required")
	}
	if p.Client == "" {
		return errs.NewValidationError("client", "client is required")
	}
	return nil
}

// normalizeProject applies the save-time adjustments the admin editor
// relies on: the thumbnail falls back to the first gallery image, and the
// work period is pinned to the first day of its month (year+month
// granularity). A missing work date defaults to the current month.
func normalizeProject(p *models.Project) {
	if p.ThumbnailURL == "" && len(p.Images) > 0 {
		p.ThumbnailURL = p.Images[0]
	}

	workDate := p.WorkDate
	if workDate.IsZero() {
		workDate = time.Now()
	}
	p.WorkDate = time.Date(workDate.Year(), workDate.Month(), 1, 0, 0, 0, 0, time.UTC)
}
