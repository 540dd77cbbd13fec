// Package http exposes the storefront as a JSON API over echo.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_cart_summary"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_loyalty_status"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/list_events"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/list_products"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/list_tiers"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/add_item"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/apply_coupon"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/award_points"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/checkout"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/create_session"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/generate_images"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/remove_item"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/select_shipping"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/set_quantity"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/spin_wheel"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/toggle_wishlist"
)

// Deps lists the use cases and queries the handler delegates to.
type Deps struct {
	// Commands
	CreateSession  *create_session.Interactor
	AddItem        *add_item.Interactor
	RemoveItem     *remove_item.Interactor
	SetQuantity    *set_quantity.Interactor
	ApplyCoupon    *apply_coupon.Interactor
	SelectShipping *select_shipping.Interactor
	Checkout       *checkout.Interactor
	SpinWheel      *spin_wheel.Interactor
	AwardPoints    *award_points.Interactor
	ToggleWishlist *toggle_wishlist.Interactor
	GenerateImages *generate_images.Interactor

	// Queries
	CartSummary   *get_cart_summary.Query
	LoyaltyStatus *get_loyalty_status.Query
	ListTiers     *list_tiers.Query
	ListProducts  *list_products.Query
	GetProduct    *get_product.Query
	ListEvents    *list_events.Query
}

// Handler is a thin coordinator between echo and the use cases.
type Handler struct {
	deps   Deps
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(deps Deps, logger *zap.Logger) *Handler {
	return &Handler{deps: deps, logger: logger}
}

// RegisterRoutes mounts every endpoint on e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	api := e.Group("/api/v1")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/loyalty/tiers", h.ListTiers)
		api.GET("/events", h.ListEvents)
		api.POST("/sessions", h.CreateSession)
	}

	session := api.Group("/sessions/:id")
	{
		session.GET("/cart", h.GetCart)
		session.POST("/cart/items", h.AddItem)
		session.PUT("/cart/items", h.SetQuantity)
		session.DELETE("/cart/items", h.RemoveItem)
		session.PUT("/coupon", h.ApplyCoupon)
		session.PUT("/shipping", h.SelectShipping)
		session.POST("/checkout", h.Checkout)

		session.GET("/loyalty", h.GetLoyalty)
		session.POST("/loyalty/spin", h.Spin)
		session.POST("/loyalty/points", h.AwardPoints)

		session.POST("/wishlist/:productId", h.ToggleWishlist)

		session.POST("/ai/generations", h.StartGeneration)
		session.GET("/ai/generations/:taskId", h.GetGeneration)
		session.DELETE("/ai/generations/:taskId", h.CancelGeneration)
	}
}

// Health reports liveness.
func (h *Handler) Health(c echo.Context) error {
	return success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and validates it.
// On failure the 400 reply is already written and ok is false.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, badRequest(c, "INVALID_INPUT", "malformed request")
	}
	if err := c.Validate(req); err != nil {
		return false, badRequest(c, "VALIDATION_ERROR", err.Error())
	}
	return true, nil
}
