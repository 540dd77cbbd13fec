package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_loyalty_status"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/award_points"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/spin_wheel"
)

type awardPointsRequest struct {
	Amount int64  `json:"amount" validate:"gte=0"`
	Reason string `json:"reason" validate:"max=128"`
}

// ListTiers handles GET /api/v1/loyalty/tiers.
func (h *Handler) ListTiers(c echo.Context) error {
	tiers, err := h.deps.ListTiers.Execute(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	out := make([]tierDTO, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, toTierDTO(t))
	}
	return success(c, http.StatusOK, out)
}

// GetLoyalty handles GET /api/v1/sessions/:id/loyalty.
func (h *Handler) GetLoyalty(c echo.Context) error {
	resp, err := h.deps.LoyaltyStatus.Execute(c.Request().Context(), &get_loyalty_status.Request{SessionID: c.Param("id")})
	if err != nil {
		return h.handleError(c, err)
	}
	return success(c, http.StatusOK, toLoyaltyDTO(resp))
}

// Spin handles POST /api/v1/sessions/:id/loyalty/spin.
func (h *Handler) Spin(c echo.Context) error {
	resp, err := h.deps.SpinWheel.Execute(c.Request().Context(), &spin_wheel.Request{SessionID: c.Param("id")})
	if err != nil {
		return h.handleError(c, err)
	}
	return success(c, http.StatusOK, toSpinDTO(resp))
}

// AwardPoints handles POST /api/v1/sessions/:id/loyalty/points.
func (h *Handler) AwardPoints(c echo.Context) error {
	var req awardPointsRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	resp, err := h.deps.AwardPoints.Execute(c.Request().Context(), &award_points.Request{
		SessionID: c.Param("id"),
		Amount:    req.Amount,
		Reason:    req.Reason,
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return success(c, http.StatusOK, map[string]any{
		"balance":      resp.Balance,
		"tier":         toTierDTO(resp.Tier),
		"tier_changed": resp.TierChanged,
	})
}
