package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_cart_summary"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/add_item"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/apply_coupon"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/checkout"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/create_session"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/remove_item"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/select_shipping"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/set_quantity"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/toggle_wishlist"
)

type createSessionRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,max=128,printascii"`
}

// addItemRequest's quantity defaults to 1 when omitted.
type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int64  `json:"quantity" validate:"gte=0"`
}

type setQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  *int64 `json:"quantity" validate:"required"`
}

type removeItemParams struct {
	ProductID string `query:"product_id" validate:"required"`
	Size      string `query:"size"`
	Color     string `query:"color"`
}

type couponRequest struct {
	Code string `json:"code" validate:"max=64"`
}

type shippingRequest struct {
	Option string `json:"option" validate:"required"`
}

// CreateSession handles POST /api/v1/sessions.
func (h *Handler) CreateSession(c echo.Context) error {
	var req createSessionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	id, err := h.deps.CreateSession.Execute(c.Request().Context(), &create_session.Request{SessionID: req.SessionID})
	if err != nil {
		return h.handleError(c, err)
	}
	return success(c, http.StatusCreated, map[string]string{"session_id": id})
}

// GetCart handles GET /api/v1/sessions/:id/cart.
func (h *Handler) GetCart(c echo.Context) error {
	return h.writeCart(c, http.StatusOK)
}

// AddItem handles POST /api/v1/sessions/:id/cart/items.
func (h *Handler) AddItem(c echo.Context) error {
	var req addItemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	_, err := h.deps.AddItem.Execute(c.Request().Context(), &add_item.Request{
		SessionID: c.Param("id"),
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return h.writeCart(c, http.StatusOK)
}

// SetQuantity handles PUT /api/v1/sessions/:id/cart/items.
// A quantity of zero or less removes the line.
func (h *Handler) SetQuantity(c echo.Context) error {
	var req setQuantityRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	err := h.deps.SetQuantity.Execute(c.Request().Context(), &set_quantity.Request{
		SessionID: c.Param("id"),
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  *req.Quantity,
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return h.writeCart(c, http.StatusOK)
}

// RemoveItem handles DELETE /api/v1/sessions/:id/cart/items.
func (h *Handler) RemoveItem(c echo.Context) error {
	var params removeItemParams
	if ok, err := bindAndValidate(c, &params); !ok {
		return err
	}

	err := h.deps.RemoveItem.Execute(c.Request().Context(), &remove_item.Request{
		SessionID: c.Param("id"),
		ProductID: params.ProductID,
		Size:      params.Size,
		Color:     params.Color,
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return h.writeCart(c, http.StatusOK)
}

// ApplyCoupon handles PUT /api/v1/sessions/:id/coupon. Unknown codes are
// kept and simply do not discount; a blank code clears the coupon.
func (h *Handler) ApplyCoupon(c echo.Context) error {
	var req couponRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if _, err := h.deps.ApplyCoupon.Execute(c.Request().Context(), &apply_coupon.Request{
		SessionID: c.Param("id"),
		Code:      req.Code,
	}); err != nil {
		return h.handleError(c, err)
	}
	return h.writeCart(c, http.StatusOK)
}

// SelectShipping handles PUT /api/v1/sessions/:id/shipping.
func (h *Handler) SelectShipping(c echo.Context) error {
	var req shippingRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.deps.SelectShipping.Execute(c.Request().Context(), &select_shipping.Request{
		SessionID: c.Param("id"),
		Option:    req.Option,
	}); err != nil {
		return h.handleError(c, err)
	}
	return h.writeCart(c, http.StatusOK)
}

// Checkout handles POST /api/v1/sessions/:id/checkout.
func (h *Handler) Checkout(c echo.Context) error {
	order, err := h.deps.Checkout.Execute(c.Request().Context(), &checkout.Request{SessionID: c.Param("id")})
	if err != nil {
		return h.handleError(c, err)
	}
	return success(c, http.StatusCreated, toOrderDTO(order))
}

// ToggleWishlist handles POST /api/v1/sessions/:id/wishlist/:productId.
func (h *Handler) ToggleWishlist(c echo.Context) error {
	added, err := h.deps.ToggleWishlist.Execute(c.Request().Context(), &toggle_wishlist.Request{
		SessionID: c.Param("id"),
		ProductID: c.Param("productId"),
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return success(c, http.StatusOK, map[string]any{
		"product_id":  c.Param("productId"),
		"in_wishlist": added,
	})
}

// writeCart replies with the freshly priced cart.
func (h *Handler) writeCart(c echo.Context, status int) error {
	resp, err := h.deps.CartSummary.Execute(c.Request().Context(), &get_cart_summary.Request{SessionID: c.Param("id")})
	if err != nil {
		return h.handleError(c, err)
	}
	return success(c, status, toCartDTO(resp))
}
