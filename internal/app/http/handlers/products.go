package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"willowpack/estimator/internal/domain/product"
)

func (h *Handlers) ProductKinds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, product.Kinds())
}

func (h *Handlers) ProductDefaults(w http.ResponseWriter, r *http.Request) {
	cfg, err := product.Defaults(product.Kind(chi.URLParam(r, "kind")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, product.Envelope{Config: cfg})
}
