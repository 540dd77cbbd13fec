package domain

import "github.com/pkg/errors"

// Domain errors as sentinel values
var (
	// Money errors
	ErrInvalidMoney = errors.New("invalid money value")

	// Catalog errors
	ErrProductNotFound   = errors.New("product not found")
	ErrUnresolvedProduct = errors.New("line item references a product missing from the catalog")
	ErrInvalidProduct    = errors.New("invalid product record")

	// Cart errors
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrEmptyProductID        = errors.New("product id cannot be empty")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrUnknownShippingOption = errors.New("unknown shipping option")

	// Coupon errors (configuration time only; unknown codes at checkout are not errors)
	ErrInvalidCoupon = errors.New("coupon code and rate in (0, 1] are required")

	// Loyalty errors
	ErrInvalidAmount     = errors.New("point amount cannot be negative")
	ErrNoTiersConfigured = errors.New("no membership tiers configured")
	ErrInvalidTierTable  = errors.New("membership tiers must start at 0 points and ascend strictly")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptySessionID  = errors.New("session id cannot be empty")
)
