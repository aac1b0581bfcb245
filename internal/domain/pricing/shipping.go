package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownShipping    = errors.New("unknown shipping option")
	ErrPostalCodeRequired = errors.New("from and to postal codes are required")
)

type ShippingOption struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	EstimatedDays string          `json:"estimated_days"`
}

func ShippingOptions() []ShippingOption {
	return []ShippingOption{
		{ID: "standard", Name: "Standard Ground", Description: "Most economical option", Price: decimal.RequireFromString("15.99"), EstimatedDays: "5-7 business days"},
		{ID: "express", Name: "Express Shipping", Description: "Faster delivery", Price: decimal.RequireFromString("29.99"), EstimatedDays: "2-3 business days"},
		{ID: "overnight", Name: "Overnight Express", Description: "Next business day delivery", Price: decimal.RequireFromString("49.99"), EstimatedDays: "1 business day"},
	}
}

type ShippingRequest struct {
	OptionID string `json:"option_id"`
	FromZip  string `json:"from_zip"`
	ToZip    string `json:"to_zip"`
}

type ShippingCharge struct {
	Option         ShippingOption
	Specifications string
}

func QuoteShipping(req ShippingRequest) (ShippingCharge, error) {
	if strings.TrimSpace(req.FromZip) == "" || strings.TrimSpace(req.ToZip) == "" {
		return ShippingCharge{}, ErrPostalCodeRequired
	}
	for _, o := range ShippingOptions() {
		if o.ID != req.OptionID {
			continue
		}
		return ShippingCharge{
			Option: o,
			Specifications: fmt.Sprintf("Shipping: %s - %s (%s to %s)",
				o.Name, o.EstimatedDays, strings.TrimSpace(req.FromZip), strings.TrimSpace(req.ToZip)),
		}, nil
	}
	return ShippingCharge{}, fmt.Errorf("%w: %q", ErrUnknownShipping, req.OptionID)
}
