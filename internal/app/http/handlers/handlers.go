package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"willowpack/estimator/internal/app/config"
	"willowpack/estimator/internal/domain/order"
	"willowpack/estimator/internal/domain/pricing"
	"willowpack/estimator/internal/domain/product"
	"willowpack/estimator/internal/domain/quote"
	"willowpack/estimator/internal/domain/quote/export"
	"willowpack/estimator/internal/infra/store/memory"
)

type Handlers struct {
	Cfg    config.Config
	Quotes *quote.Service
	Orders *memory.OrderStore
	Table  *pricing.Table
}

func New(cfg config.Config, quotes *quote.Service, orders *memory.OrderStore, table *pricing.Table) *Handlers {
	return &Handlers{
		Cfg:    cfg,
		Quotes: quotes,
		Orders: orders,
		Table:  table,
	}
}

var errBadRequest = errors.New("bad request")

const maxBody = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("http: encode response failed err=%v", err)
	}
}

func writeFile(w http.ResponseWriter, contentType, name string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func statusFor(err error) int {
	var fe *pricing.FieldError
	switch {
	case errors.As(err, &fe),
		errors.Is(err, errBadRequest),
		errors.Is(err, quote.ErrCustomerNameRequired),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, product.ErrUnknownKind),
		errors.Is(err, pricing.ErrUnknownShipping),
		errors.Is(err, pricing.ErrPostalCodeRequired),
		errors.Is(err, export.ErrNoProduct):
		return http.StatusBadRequest
	case errors.Is(err, quote.ErrNotFound),
		errors.Is(err, memory.ErrOrderNotFound),
		errors.Is(err, order.ErrItemNotFound),
		errors.Is(err, pricing.ErrRowNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// fail maps domain errors to a status. Internal errors are logged and not
// echoed to the client.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("http: %s %s failed err=%v", r.Method, r.URL.Path, err)
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

// numeric accepts a JSON number or string so form values can be passed
// through untouched and validated by the pricing parsers.
type numeric string

func (n *numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*n = numeric(v)
		return nil
	}
	*n = numeric(s)
	return nil
}

func (n numeric) set() bool { return strings.TrimSpace(string(n)) != "" }
