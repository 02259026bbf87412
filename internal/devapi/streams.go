package devapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/stream-console/internal/logger"
	"github.com/MKhiriev/stream-console/internal/utils"
	"github.com/MKhiriev/stream-console/models"
)

func (h *Handler) listStreams(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePaging(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "", h.repo.listStreams(page, limit))
}

func (h *Handler) getStream(w http.ResponseWriter, r *http.Request) {
	stream, err := h.repo.getStream(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "", stream)
}

func (h *Handler) createStream(w http.ResponseWriter, r *http.Request) {
	var in models.StreamInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidData)
		return
	}

	stream, err := h.repo.createStream(in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusCreated, "stream created", stream)
}

func (h *Handler) updateStream(w http.ResponseWriter, r *http.Request) {
	var patch models.StreamPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidData)
		return
	}

	stream, err := h.repo.updateStream(chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "stream updated", stream)
}

func (h *Handler) deleteStream(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.deleteStream(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "stream deleted", nil)
}
