package devapi

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/stream-console/internal/app"
	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/internal/utils"
)

// auth rejects requests without a valid, unrevoked bearer token with 401 and
// puts the token subject into the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteEnvelope(w, http.StatusUnauthorized, app.MsgPleaseAuthenticate, nil)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(errors.Join(ErrInvalidAuthorizationHeader, err)).Send()
			utils.WriteEnvelope(w, http.StatusUnauthorized, app.MsgPleaseAuthenticate, nil)
			return
		}

		subject, err := h.tokens.verify(token)
		if err != nil {
			log.Err(err).Msg("bearer token rejected")
			utils.WriteEnvelope(w, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid, nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSubject(r.Context(), subject)))
	})
}
