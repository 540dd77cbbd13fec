package storefront

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_cart_summary"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_loyalty_status"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/list_tiers"
)

// Handler implements StorefrontServer.
// It's a thin coordinator that delegates to queries.
type Handler struct {
	cartSummary   *get_cart_summary.Query
	loyaltyStatus *get_loyalty_status.Query
	listTiers     *list_tiers.Query
}

var _ StorefrontServer = (*Handler)(nil)

// NewHandler creates a new gRPC storefront handler.
func NewHandler(
	cartSummary *get_cart_summary.Query,
	loyaltyStatus *get_loyalty_status.Query,
	listTiers *list_tiers.Query,
) *Handler {
	return &Handler{
		cartSummary:   cartSummary,
		loyaltyStatus: loyaltyStatus,
		listTiers:     listTiers,
	}
}

// QuoteCart prices the session's cart.
func (h *Handler) QuoteCart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := validateSessionRequest(req)
	if err != nil {
		return nil, err
	}

	resp, err := h.cartSummary.Execute(ctx, &get_cart_summary.Request{SessionID: sessionID})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	out, err := quoteToStruct(resp)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return out, nil
}

// GetLoyaltyStatus returns points and tier progress.
func (h *Handler) GetLoyaltyStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := validateSessionRequest(req)
	if err != nil {
		return nil, err
	}

	resp, err := h.loyaltyStatus.Execute(ctx, &get_loyalty_status.Request{SessionID: sessionID})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	out, err := loyaltyToStruct(resp)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return out, nil
}

// ListTiers returns the configured membership tiers.
func (h *Handler) ListTiers(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	tiers, err := h.listTiers.Execute(ctx)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	out, err := tiersToStruct(tiers)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}
	return out, nil
}
