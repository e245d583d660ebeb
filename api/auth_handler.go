package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/overtone-studio/site-backend/database"
	"github.com/overtone-studio/site-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.AdminUserRepo
	sessions  sessionManager
}

func newAuthHandler(userRepo *database.AdminUserRepo, sessions sessionManager) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		sessions:  sessions,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse describes an active admin session.
type SessionResponse struct {
	Token     string    `json:"token,omitempty"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// login verifies email+password and issues a session token. Unknown
// emails and wrong passwords produce the same response.
// @Summary Admin sign-in
// @Tags Auth
// @Param credentials body loginRequest true "Email and password"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Email == "" || req.Password == "" {
			h.responder.WriteError(w, errs.NewValidationError("credentials", "email and password are required"))
			return
		}

		user, err := h.userRepo.FindByEmail(req.Email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewInvalidCredentialsError())
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find admin user", "admin user", err))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		token, expiresAt, err := h.sessions.Issue(user.Email, time.Now())
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to sign session token")
			h.responder.WriteError(w, errs.NewInternalError("failed to create session"))
			return
		}

		h.logger.Info().Str("email", user.Email).Msg("admin signed in")
		h.responder.WriteJSON(w, SessionResponse{
			Token:     token,
			Email:     user.Email,
			ExpiresAt: expiresAt,
		})
	}
}

// session reports the current session state. Runs behind the auth
// middleware, so reaching it at all means the token is valid.
// @Summary Observe session
// @Tags Auth
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/session [get]
func (h authHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, err := ctxGetSessionEmail(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		h.responder.WriteJSON(w, SessionResponse{Email: email})
	}
}

// logout acknowledges sign-out. Session tokens are stateless, so
// invalidation is the client discarding its token; expiry bounds the
// window either way.
// @Summary Admin sign-out
// @Tags Auth
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if email, err := ctxGetSessionEmail(r.Context()); err == nil {
			h.logger.Info().Str("email", email).Msg("admin signed out")
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "signed out",
		})
	}
}
