package handlers

import (
	"net/http"
)

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	backend := "file"
	if h.Cfg.DatabaseURL != "" {
		backend = "postgres"
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"history":  backend,
		"renderer": h.Cfg.PDFRenderer,
	})
}
