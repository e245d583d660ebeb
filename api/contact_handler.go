package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/overtone-studio/site-backend/database"
	"github.com/overtone-studio/site-backend/errs"
	"github.com/overtone-studio/site-backend/models"
	"github.com/overtone-studio/site-backend/services"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	config      map[string]string
}

func newContactHandler(contactRepo *database.ContactRepo, config map[string]string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		config:      config,
	}
}

// submitContact persists one visitor inquiry. No authentication; required
// fields are checked before any store call. A stored inquiry additionally
// triggers a notification email, whose failure is logged but never
// surfaced to the visitor.
// @Summary Submit contact inquiry
// @Tags Contacts
// @Param inquiry body models.ContactInquiry true "Inquiry fields"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /contact [post]
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var inquiry models.ContactInquiry
		if err := json.NewDecoder(r.Body).Decode(&inquiry); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if inquiry.Name == "" {
			h.responder.WriteError(w, errs.NewValidationError("name", "name is required"))
			return
		}
		if inquiry.Email == "" {
			h.responder.WriteError(w, errs.NewValidationError("email", "email is required"))
			return
		}
		if inquiry.Message == "" {
			h.responder.WriteError(w, errs.NewValidationError("message", "message is required"))
			return
		}

		if err := h.contactRepo.Add(&inquiry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create inquiry", "inquiry", err))
			return
		}

		go func(stored models.ContactInquiry) {
			if err := services.NotifyNewInquiry(h.config, stored); err != nil {
				h.logger.Error().Err(err).Str("inquiryID", stored.ID.String()).Msg("failed to send inquiry notification")
			}
		}(inquiry)

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "inquiry submitted successfully",
		})
	}
}

// getAllContacts retrieves all inquiries for the admin list, newest first.
// @Summary List contact inquiries (admin)
// @Tags Contacts
// @Success 200 {array} models.ContactInquiry
// @Router /contacts [get]
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiries, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find inquiries", "inquiries", err))
			return
		}

		h.responder.WriteJSON(w, inquiries)
	}
}
