package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/overtone-studio/site-backend/database"
	"github.com/overtone-studio/site-backend/errs"
	"github.com/overtone-studio/site-backend/models"
)

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tagRepo   *database.TagRepo
}

func newTagHandler(tagRepo *database.TagRepo) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tagRepo:   tagRepo,
	}
}

// TagRegistry is the tag vocabulary grouped by category, the shape both
// the filter UI and the admin editor consume.
type TagRegistry struct {
	Industry []string `json:"industry"`
	Type     []string `json:"type"`
}

type createTagRequest struct {
	Name     string             `json:"name"`
	Category models.TagCategory `json:"category"`
}

type renameTagRequest struct {
	Category models.TagCategory `json:"category"`
	OldName  string             `json:"old_name"`
	NewName  string             `json:"new_name"`
}

// getAllTags returns the registered tags grouped by category.
// @Summary List tags
// @Tags Tags
// @Success 200 {object} TagRegistry
// @Router /tags [get]
func (h tagHandler) getAllTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tagRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tags", "tags", err))
			return
		}

		registry := TagRegistry{Industry: []string{}, Type: []string{}}
		for _, tag := range tags {
			switch tag.Category {
			case models.CategoryIndustry:
				registry.Industry = append(registry.Industry, tag.Name)
			case models.CategoryType:
				registry.Type = append(registry.Type, tag.Name)
			}
		}

		h.responder.WriteJSON(w, registry)
	}
}

// createTag registers a new tag in one category.
// @Summary Create tag
// @Tags Tags
// @Param tag body createTagRequest true "Tag name and category"
// @Success 201 {object} models.Tag
// @Failure 400 {object} ErrorResponse
// @Router /tag [post]
func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewValidationError("name", "name is required"))
			return
		}
		if !req.Category.Valid() {
			h.responder.WriteError(w, errs.NewValidationError("category", "category must be industry or type"))
			return
		}

		tag := models.Tag{Name: req.Name, Category: req.Category}
		if err := h.tagRepo.Add(&tag); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create tag", "tag", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, tag)
	}
}

// renameTag renames a tag within its category and rewrites the matching
// entry in every project's tag set. The registry update and the project
// rewrites are one logical operation; callers never see one without the
// other.
// @Summary Rename tag
// @Tags Tags
// @Param rename body renameTagRequest true "Category, old name, new name"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tag [put]
func (h tagHandler) renameTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req renameTagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if !req.Category.Valid() {
			h.responder.WriteError(w, errs.NewValidationError("category", "category must be industry or type"))
			return
		}
		if req.OldName == "" || req.NewName == "" {
			h.responder.WriteError(w, errs.NewValidationError("name", "old_name and new_name are required"))
			return
		}
		if req.OldName == req.NewName {
			h.responder.WriteError(w, errs.NewValidationError("new_name", "new name must differ from old name"))
			return
		}

		if err := h.tagRepo.Rename(req.Category, req.OldName, req.NewName); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("rename tag", "tag", err))
			return
		}

		h.logger.Info().
			Str("category", string(req.Category)).
			Str("oldName", req.OldName).
			Str("newName", req.NewName).
			Msg("renamed tag across projects")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "tag renamed successfully",
		})
	}
}

// deleteTag removes a tag from the registry and strips it from every
// project referencing it. Projects themselves are never deleted or hidden
// by this operation.
// @Summary Delete tag
// @Tags Tags
// @Param category query string true "Tag category"
// @Param name query string true "Tag name"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tag [delete]
func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := models.TagCategory(r.URL.Query().Get("category"))
		name := r.URL.Query().Get("name")

		if !category.Valid() {
			h.responder.WriteError(w, errs.NewValidationError("category", "category must be industry or type"))
			return
		}
		if name == "" {
			h.responder.WriteError(w, errs.NewValidationError("name", "name is required"))
			return
		}

		if err := h.tagRepo.Delete(category, name); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete tag", "tag", err))
			return
		}

		h.logger.Info().
			Str("category", string(category)).
			Str("name", name).
			Msg("deleted tag across projects")

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "tag deleted successfully",
		})
	}
}
