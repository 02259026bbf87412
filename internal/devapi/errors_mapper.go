package devapi

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/stream-console/internal/app"
	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponses = map[error]errorResponse{
	ErrInvalidData:        {http.StatusBadRequest, app.MsgInvalidDataProvided},
	ErrNothingToUpdate:    {http.StatusBadRequest, app.MsgNothingToUpdate},
	ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgInvalidCredentials},
	ErrUserNotFound:       {http.StatusNotFound, app.MsgUserNotFound},
	ErrStreamNotFound:     {http.StatusNotFound, app.MsgStreamNotFound},
	ErrEmailTaken:         {http.StatusConflict, app.MsgEmailAlreadyTaken},
}

// writeError answers with the envelope registered for err, or 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	for target, resp := range errorResponses {
		if errors.Is(err, target) {
			log.Err(err).Int("status", resp.status).Send()
			utils.WriteEnvelope(w, resp.status, resp.message, nil)
			return
		}
	}

	log.Err(err).Msg("unexpected error")
	utils.WriteEnvelope(w, http.StatusInternalServerError, app.MsgInternalServerError, nil)
}
