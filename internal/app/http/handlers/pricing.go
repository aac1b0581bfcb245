package handlers

import (
	"net/http"

	"willowpack/estimator/internal/domain/pricing"
)

func (h *Handlers) PriceTable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Table)
}

func (h *Handlers) ShippingOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pricing.ShippingOptions())
}

type markupRequest struct {
	Quantity      numeric `json:"quantity"`
	Cost          numeric `json:"cost"`
	Price         numeric `json:"price"`
	MarkupPercent numeric `json:"markup_percent"`
	Currency      string  `json:"currency"`
	Versions      int     `json:"versions"`
}

// Markup resolves the pricing panel. A markup percent derives the price from
// the cost; without one the entered price is kept and the percent reported.
func (h *Handlers) Markup(w http.ResponseWriter, r *http.Request) {
	var req markupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}
	m, err := h.markup(req)
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m.Resolve())
}

func (h *Handlers) markup(req markupRequest) (pricing.Markup, error) {
	m := pricing.Markup{Currency: req.Currency, Versions: req.Versions}
	if m.Currency == "" {
		m.Currency = h.Cfg.DefaultCurrency
	}
	var err error
	if m.Quantity, err = pricing.ParseQuantity("quantity", string(req.Quantity)); err != nil {
		return m, err
	}
	if m.Cost, err = pricing.ParseAmount("cost", string(req.Cost)); err != nil {
		return m, err
	}
	if req.MarkupPercent.set() {
		pct, err := pricing.ParsePercent("markup_percent", string(req.MarkupPercent))
		if err != nil {
			return m, err
		}
		m.Percent = &pct
		return m, nil
	}
	if m.Price, err = pricing.ParseAmount("price", string(req.Price)); err != nil {
		return m, err
	}
	return m, nil
}
