package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/club-studio/internal/app/profiles"
	"github.com/preston-bernstein/club-studio/internal/auth"
	domainprofiles "github.com/preston-bernstein/club-studio/internal/domain/profiles"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/store"
)

// Authenticator is the part of auth.LocalProvider the API needs.
type Authenticator interface {
	SignInWithEmail(ctx context.Context, email string) error
	VerifyOneTimeToken(ctx context.Context, token string) (*auth.Session, error)
	Authenticate(ctx context.Context, accessToken string) (auth.Session, error)
}

// ProfileService loads and edits profiles.
type ProfileService interface {
	Load(ctx context.Context, userID string) (domainprofiles.Profile, error)
	Update(ctx context.Context, userID string, upd domainprofiles.Update) (domainprofiles.Profile, error)
}

// AccountHandler serves magic-link sign in and the signed-in user's profile.
type AccountHandler struct {
	auth     Authenticator
	profiles ProfileService
	logger   *slog.Logger
}

// NewAccountHandler constructs an AccountHandler.
func NewAccountHandler(a Authenticator, p ProfileService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{auth: a, profiles: p, logger: logger}
}

type magicLinkRequest struct {
	Email string `json:"email"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

// MagicLink sends a one-time sign-in link, creating the user on first use.
func (h *AccountHandler) MagicLink(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var body magicLinkRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}
	if err := h.auth.SignInWithEmail(r.Context(), body.Email); err != nil {
		if errors.Is(err, profiles.ErrInvalidEmail) {
			writeError(w, r, http.StatusBadRequest, "invalid email address", logger)
			return
		}
		logging.Error(logger, "magic link failed", err)
		writeError(w, r, http.StatusInternalServerError, "could not send sign-in link", logger)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "sent"}, logger)
}

// Verify exchanges a magic-link token for a session.
func (h *AccountHandler) Verify(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var body verifyRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}
	if strings.TrimSpace(body.Token) == "" {
		writeError(w, r, http.StatusBadRequest, "token is required", logger)
		return
	}
	sess, err := h.auth.VerifyOneTimeToken(r.Context(), body.Token)
	if err != nil {
		h.authError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, sess, logger)
}

// Profile returns the signed-in user's profile.
func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}
	p, err := h.profiles.Load(r.Context(), sess.UserID)
	if err != nil {
		h.profileError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, p, logger)
}

// UpdateProfile applies the editable fields to the signed-in user's profile.
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}
	var upd domainprofiles.Update
	if err := decodeBody(r, &upd); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}
	p, err := h.profiles.Update(r.Context(), sess.UserID, upd)
	if err != nil {
		h.profileError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, p, logger)
}

func (h *AccountHandler) session(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (auth.Session, bool) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "missing bearer token", logger)
		return auth.Session{}, false
	}
	sess, err := h.auth.Authenticate(r.Context(), token)
	if err != nil {
		h.authError(w, r, err, logger)
		return auth.Session{}, false
	}
	return sess, true
}

func (h *AccountHandler) authError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		writeError(w, r, http.StatusUnauthorized, "token expired", logger)
	case errors.Is(err, auth.ErrInvalidToken):
		writeError(w, r, http.StatusUnauthorized, "invalid token", logger)
	default:
		logging.Error(logger, "token check failed", err)
		writeError(w, r, http.StatusInternalServerError, "token check failed", logger)
	}
}

func (h *AccountHandler) profileError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "profile not found", logger)
	case errors.Is(err, profiles.ErrNoUser):
		writeError(w, r, http.StatusUnauthorized, "not signed in", logger)
	default:
		logging.Error(logger, "profile request failed", err)
		writeError(w, r, http.StatusInternalServerError, "profile unavailable", logger)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	raw := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(raw, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
