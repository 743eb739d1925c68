package http

import (
	"net/http"

	"github.com/MKhiriev/memfill/internal/logger"
	"github.com/MKhiriev/memfill/internal/utils"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status, err := h.source.Status(r.Context())
	if err != nil {
		log.Err(err).Msg("error collecting status")
		http.Error(w, "status unavailable", http.StatusServiceUnavailable)
		return
	}

	if _, err = utils.WriteJSON(w, status, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing status")
	}
}

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
