package storefront

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_cart_summary"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_loyalty_status"
)

// Money crosses the wire as a two-decimal string.

func quoteToStruct(resp *get_cart_summary.Response) (*structpb.Struct, error) {
	p := resp.Pricing

	lines := make([]any, 0, len(p.Lines))
	for _, lt := range p.Lines {
		lines = append(lines, map[string]any{
			"product_id": lt.Item.ProductID,
			"size":       lt.Item.Size,
			"color":      lt.Item.Color,
			"quantity":   lt.Item.Quantity,
			"unit_price": lt.UnitPrice.String(),
			"line_total": lt.Total.String(),
		})
	}

	return newStruct(map[string]any{
		"session_id":              resp.SessionID,
		"items":                   lines,
		"subtotal":                p.Subtotal.String(),
		"discount":                p.Discount.String(),
		"shipping_cost":           p.ShippingCost.String(),
		"tax":                     p.Tax.String(),
		"total":                   p.Total.String(),
		"loyalty_points_earned":   p.LoyaltyPointsEarned,
		"applied_coupon":          p.AppliedCoupon,
		"coupon_code":             resp.CouponCode,
		"shipping":                string(resp.Shipping),
		"amount_to_free_shipping": p.AmountToFreeShipping.String(),
		"item_count":              p.ItemCount,
		"unresolved_product_ids":  stringsToList(p.UnresolvedProductIDs),
	})
}

func loyaltyToStruct(resp *get_loyalty_status.Response) (*structpb.Struct, error) {
	fields := map[string]any{
		"session_id":                    resp.SessionID,
		"points":                        resp.Points,
		"tier":                          tierToMap(resp.Progress.Current),
		"points_into_current_tier":      resp.Progress.PointsIntoCurrentTier,
		"points_required_for_next_tier": resp.Progress.PointsRequiredForNextTier,
		"points_to_next_tier":           resp.Progress.PointsToNextTier,
		"percentage":                    resp.Progress.Percentage,
		"orders_placed":                 resp.OrdersPlaced,
	}
	if resp.Progress.Next != nil {
		fields["next_tier"] = tierToMap(*resp.Progress.Next)
	}
	return newStruct(fields)
}

func tiersToStruct(tiers []domain.MembershipTier) (*structpb.Struct, error) {
	list := make([]any, 0, len(tiers))
	for _, t := range tiers {
		list = append(list, tierToMap(t))
	}
	return newStruct(map[string]any{"tiers": list})
}

func tierToMap(t domain.MembershipTier) map[string]any {
	return map[string]any{
		"name":       t.Name,
		"min_points": t.MinPoints,
		"perks":      stringsToList(t.Perks),
	}
}

// stringsToList converts to the []any form structpb accepts.
func stringsToList(ss []string) []any {
	out := make([]any, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	return out
}

func newStruct(fields map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return s, nil
}
