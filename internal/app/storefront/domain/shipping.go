package domain

import (
	"strings"

	"github.com/pkg/errors"
)

// ShippingOption selects how an order ships.
type ShippingOption string

const (
	ShippingStandard ShippingOption = "standard"
	ShippingExpress  ShippingOption = "express"
)

// ParseShippingOption accepts "standard" or "express" in any case. Blank means standard.
func ParseShippingOption(s string) (ShippingOption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ShippingStandard):
		return ShippingStandard, nil
	case string(ShippingExpress):
		return ShippingExpress, nil
	default:
		return "", errors.Wrapf(ErrUnknownShippingOption, "%q", s)
	}
}
