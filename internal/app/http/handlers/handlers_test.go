package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"willowpack/estimator/internal/domain/order"
	"willowpack/estimator/internal/domain/pricing"
	"willowpack/estimator/internal/domain/quote"
	"willowpack/estimator/internal/infra/store/memory"
)

func TestNumericAcceptsNumbersAndStrings(t *testing.T) {
	var v struct {
		A numeric `json:"a"`
		B numeric `json:"b"`
		C numeric `json:"c"`
		D numeric `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"a": 169.90, "b": "1,500", "c": null}`), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v.A != "169.90" || v.B != "1,500" || v.C != "" || v.D != "" {
		t.Errorf("got %+v", v)
	}
	if v.C.set() || !v.A.set() {
		t.Errorf("set() wrong")
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&pricing.FieldError{Field: "quantity", Err: pricing.ErrInvalidNumber}, http.StatusBadRequest},
		{quote.ErrCustomerNameRequired, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", order.ErrInvalidQuantity), http.StatusBadRequest},
		{quote.ErrNotFound, http.StatusNotFound},
		{memory.ErrOrderNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: x", order.ErrItemNotFound), http.StatusNotFound},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
