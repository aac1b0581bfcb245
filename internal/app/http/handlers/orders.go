package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"willowpack/estimator/internal/domain/order"
	"willowpack/estimator/internal/domain/pricing"
	"willowpack/estimator/internal/domain/quote"
)

type orderResponse struct {
	ID       string            `json:"id"`
	Currency string            `json:"currency"`
	Sets     bool              `json:"sets"`
	Versions int               `json:"versions"`
	Items    []quote.OrderItem `json:"items"`
	Totals   order.Totals      `json:"totals"`
	Display  order.Display     `json:"display"`
}

func newOrderResponse(s *order.Summary) orderResponse {
	t := s.Totals()
	return orderResponse{
		ID:       s.ID,
		Currency: s.Currency,
		Sets:     s.Sets,
		Versions: s.Versions,
		Items:    s.Items(),
		Totals:   t,
		Display:  t.Display(),
	}
}

type createOrderRequest struct {
	Currency string `json:"currency"`
	Sets     bool   `json:"sets"`
	Versions int    `json:"versions"`
}

func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			fail(w, r, err)
			return
		}
	}
	if req.Currency == "" {
		req.Currency = h.Cfg.DefaultCurrency
	}
	s := h.Orders.Create(req.Currency)
	var resp orderResponse
	h.Orders.Update(s.ID, func(s *order.Summary) error {
		s.SetSets(req.Sets, req.Versions)
		resp = newOrderResponse(s)
		return nil
	})
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	var resp orderResponse
	err := h.Orders.View(chi.URLParam(r, "orderID"), func(s *order.Summary) error {
		resp = newOrderResponse(s)
		return nil
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	h.Orders.Delete(chi.URLParam(r, "orderID"))
	w.WriteHeader(http.StatusNoContent)
}

type addItemRequest struct {
	TableQuantity  int     `json:"table_quantity"`
	Quantity       numeric `json:"quantity"`
	TotalCost      numeric `json:"total_cost"`
	TotalPrice     numeric `json:"total_price"`
	MarkupPercent  numeric `json:"markup_percent"`
	Currency       string  `json:"currency"`
	Versions       int     `json:"versions"`
	Specifications string  `json:"specifications"`
}

// item builds the line item. A table quantity copies that row of the price
// table; otherwise quantity and cost are required and the price is either
// given or derived from the markup.
func (h *Handlers) item(req addItemRequest) (quote.OrderItem, error) {
	if req.TableQuantity > 0 {
		row, err := h.Table.Lookup(req.TableQuantity)
		if err != nil {
			return quote.OrderItem{}, err
		}
		it := order.FromRow(row)
		it.Versions = req.Versions
		it.Specifications = req.Specifications
		return it, nil
	}
	m, err := h.markup(markupRequest{
		Quantity:      req.Quantity,
		Cost:          req.TotalCost,
		Price:         req.TotalPrice,
		MarkupPercent: req.MarkupPercent,
		Currency:      req.Currency,
	})
	if err != nil {
		return quote.OrderItem{}, err
	}
	q := m.Resolve()
	return quote.OrderItem{
		Quantity:       q.Quantity,
		TotalCost:      q.Cost,
		TotalPrice:     q.Price,
		Currency:       req.Currency,
		Versions:       req.Versions,
		Specifications: req.Specifications,
	}, nil
}

func (h *Handlers) AddOrderItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}
	it, err := h.item(req)
	if err != nil {
		fail(w, r, err)
		return
	}
	h.addItem(w, r, it)
}

func (h *Handlers) addItem(w http.ResponseWriter, r *http.Request, it quote.OrderItem) {
	var resp orderResponse
	err := h.Orders.Update(chi.URLParam(r, "orderID"), func(s *order.Summary) error {
		if _, err := s.Add(it); err != nil {
			return err
		}
		resp = newOrderResponse(s)
		return nil
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handlers) RemoveOrderItem(w http.ResponseWriter, r *http.Request) {
	var resp orderResponse
	err := h.Orders.Update(chi.URLParam(r, "orderID"), func(s *order.Summary) error {
		if err := s.Remove(chi.URLParam(r, "itemID")); err != nil {
			return err
		}
		resp = newOrderResponse(s)
		return nil
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type setsRequest struct {
	Sets     bool `json:"sets"`
	Versions int  `json:"versions"`
}

func (h *Handlers) SetOrderSets(w http.ResponseWriter, r *http.Request) {
	var req setsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}
	var resp orderResponse
	err := h.Orders.Update(chi.URLParam(r, "orderID"), func(s *order.Summary) error {
		s.SetSets(req.Sets, req.Versions)
		resp = newOrderResponse(s)
		return nil
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddShipping appends the chosen shipping option as a single-unit line item.
func (h *Handlers) AddShipping(w http.ResponseWriter, r *http.Request) {
	var req pricing.ShippingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}
	charge, err := pricing.QuoteShipping(req)
	if err != nil {
		fail(w, r, err)
		return
	}
	h.addItem(w, r, quote.OrderItem{
		Quantity:       1,
		TotalCost:      charge.Option.Price,
		TotalPrice:     charge.Option.Price,
		Specifications: charge.Specifications,
	})
}
