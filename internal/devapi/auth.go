package devapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/stream-console/internal/app"
	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/internal/utils"
	"github.com/MKhiriev/stream-console/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidData)
		return
	}
	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		writeError(w, r, ErrInvalidData)
		return
	}

	user, err := h.repo.authenticate(strings.TrimSpace(creds.Email), creds.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tokens, err := h.tokens.issue(user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully logged in")
	utils.WriteEnvelope(w, http.StatusOK, "login successful", models.LoginResult{
		User:   profileOf(user),
		Tokens: tokens,
	})
}

// logout revokes the refresh token from the body and the bearer token, if
// any. It succeeds for unknown tokens too.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidData)
		return
	}

	if !h.tokens.revokeRefresh(req.RefreshToken) {
		log.Debug().Msg("logout with unknown refresh token")
	}
	if bearer, err := utils.ParseBearerToken(r.Header.Get("Authorization")); err == nil {
		h.tokens.revoke(bearer)
	}

	utils.WriteEnvelope(w, http.StatusOK, "logged out", nil)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	subject, ok := utils.GetSubjectFromContext(r.Context())
	if !ok {
		utils.WriteEnvelope(w, http.StatusUnauthorized, app.MsgPleaseAuthenticate, nil)
		return
	}

	user, err := h.repo.getUser(subject)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "", profileOf(user))
}

func profileOf(u models.User) models.UserProfile {
	return models.UserProfile{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}
