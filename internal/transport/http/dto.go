package http

import (
	"encoding/json"
	"time"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_cart_summary"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_loyalty_status"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/spin_wheel"
	"github.com/light-bringer/storefront-service/internal/imagegen"
)

// Money is always rendered as a string with two decimals.

type productDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	SKU           string   `json:"sku,omitempty"`
	Category      string   `json:"category"`
	Description   string   `json:"description,omitempty"`
	Price         string   `json:"price"`
	OriginalPrice *string  `json:"original_price,omitempty"`
	OnSale        bool     `json:"on_sale"`
	Stock         int64    `json:"stock"`
	InStock       bool     `json:"in_stock"`
	IsAIGenerated bool     `json:"is_ai_generated"`
	IsLimited     bool     `json:"is_limited"`
	Rating        float64  `json:"rating"`
	Reviews       int64    `json:"reviews"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

func toProductDTO(p *domain.Product) productDTO {
	dto := productDTO{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		SKU:           p.SKU,
		Category:      p.Category,
		Description:   p.Description,
		Price:         p.Price.String(),
		OnSale:        p.IsOnSale(),
		Stock:         p.Stock,
		InStock:       p.InStock(),
		IsAIGenerated: p.IsAIGenerated,
		IsLimited:     p.IsLimited,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Sizes:         p.Sizes,
		Colors:        p.Colors,
		Tags:          p.Tags,
	}
	if p.OriginalPrice != nil {
		orig := p.OriginalPrice.String()
		dto.OriginalPrice = &orig
	}
	return dto
}

type pricingDTO struct {
	Subtotal             string   `json:"subtotal"`
	Discount             string   `json:"discount"`
	ShippingCost         string   `json:"shipping_cost"`
	Tax                  string   `json:"tax"`
	Total                string   `json:"total"`
	LoyaltyPointsEarned  int64    `json:"loyalty_points_earned"`
	AppliedCoupon        string   `json:"applied_coupon,omitempty"`
	AmountToFreeShipping string   `json:"amount_to_free_shipping"`
	ItemCount            int64    `json:"item_count"`
	UnresolvedProductIDs []string `json:"unresolved_product_ids,omitempty"`
}

func toPricingDTO(r *domain.PricingResult) pricingDTO {
	return pricingDTO{
		Subtotal:             r.Subtotal.String(),
		Discount:             r.Discount.String(),
		ShippingCost:         r.ShippingCost.String(),
		Tax:                  r.Tax.String(),
		Total:                r.Total.String(),
		LoyaltyPointsEarned:  r.LoyaltyPointsEarned,
		AppliedCoupon:        r.AppliedCoupon,
		AmountToFreeShipping: r.AmountToFreeShipping.String(),
		ItemCount:            r.ItemCount,
		UnresolvedProductIDs: r.UnresolvedProductIDs,
	}
}

type cartLineDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name,omitempty"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price,omitempty"`
	LineTotal string `json:"line_total,omitempty"`
	Resolved  bool   `json:"resolved"`
}

type cartDTO struct {
	SessionID        string        `json:"session_id"`
	Items            []cartLineDTO `json:"items"`
	Pricing          pricingDTO    `json:"pricing"`
	CouponCode       string        `json:"coupon_code,omitempty"`
	CouponRecognized bool          `json:"coupon_recognized"`
	Shipping         string        `json:"shipping"`
	Wishlist         []string      `json:"wishlist"`
}

func lineTotals(r *domain.PricingResult) map[domain.LineKey]domain.LineTotal {
	totals := make(map[domain.LineKey]domain.LineTotal, len(r.Lines))
	for _, lt := range r.Lines {
		totals[lt.Item.Key()] = lt
	}
	return totals
}

func toCartLineDTO(item domain.CartLineItem, product *domain.Product, totals map[domain.LineKey]domain.LineTotal) cartLineDTO {
	dto := cartLineDTO{
		ProductID: item.ProductID,
		Size:      item.Size,
		Color:     item.Color,
		Quantity:  item.Quantity,
	}
	if product != nil {
		dto.Name = product.Name
	}
	if lt, ok := totals[item.Key()]; ok {
		dto.UnitPrice = lt.UnitPrice.String()
		dto.LineTotal = lt.Total.String()
		dto.Resolved = true
	}
	return dto
}

func toCartDTO(resp *get_cart_summary.Response) cartDTO {
	totals := lineTotals(resp.Pricing)
	items := make([]cartLineDTO, 0, len(resp.Lines))
	for _, line := range resp.Lines {
		items = append(items, toCartLineDTO(line.Item, line.Product, totals))
	}

	wishlist := resp.Wishlist
	if wishlist == nil {
		wishlist = []string{}
	}

	return cartDTO{
		SessionID:        resp.SessionID,
		Items:            items,
		Pricing:          toPricingDTO(resp.Pricing),
		CouponCode:       resp.CouponCode,
		CouponRecognized: resp.CouponRecognized,
		Shipping:         string(resp.Shipping),
		Wishlist:         wishlist,
	}
}

type orderDTO struct {
	OrderID  string        `json:"order_id"`
	Items    []cartLineDTO `json:"items"`
	Pricing  pricingDTO    `json:"pricing"`
	Coupon   string        `json:"coupon,omitempty"`
	Shipping string        `json:"shipping"`
	PlacedAt time.Time     `json:"placed_at"`
}

func toOrderDTO(o *domain.Order) orderDTO {
	totals := lineTotals(o.Pricing)
	items := make([]cartLineDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, toCartLineDTO(item, nil, totals))
	}
	return orderDTO{
		OrderID:  o.ID,
		Items:    items,
		Pricing:  toPricingDTO(o.Pricing),
		Coupon:   o.Coupon,
		Shipping: string(o.Shipping),
		PlacedAt: o.PlacedAt,
	}
}

type tierDTO struct {
	Name      string   `json:"name"`
	MinPoints int64    `json:"min_points"`
	Perks     []string `json:"perks"`
}

func toTierDTO(t domain.MembershipTier) tierDTO {
	perks := t.Perks
	if perks == nil {
		perks = []string{}
	}
	return tierDTO{Name: t.Name, MinPoints: t.MinPoints, Perks: perks}
}

type loyaltyDTO struct {
	SessionID                 string   `json:"session_id"`
	Points                    int64    `json:"points"`
	Tier                      tierDTO  `json:"tier"`
	NextTier                  *tierDTO `json:"next_tier,omitempty"`
	PointsIntoCurrentTier     int64    `json:"points_into_current_tier"`
	PointsRequiredForNextTier int64    `json:"points_required_for_next_tier"`
	PointsToNextTier          int64    `json:"points_to_next_tier"`
	Percentage                float64  `json:"percentage"`
	OrdersPlaced              int      `json:"orders_placed"`
}

func toLoyaltyDTO(resp *get_loyalty_status.Response) loyaltyDTO {
	dto := loyaltyDTO{
		SessionID:                 resp.SessionID,
		Points:                    resp.Points,
		Tier:                      toTierDTO(resp.Progress.Current),
		PointsIntoCurrentTier:     resp.Progress.PointsIntoCurrentTier,
		PointsRequiredForNextTier: resp.Progress.PointsRequiredForNextTier,
		PointsToNextTier:          resp.Progress.PointsToNextTier,
		Percentage:                resp.Progress.Percentage,
		OrdersPlaced:              resp.OrdersPlaced,
	}
	if resp.Progress.Next != nil {
		next := toTierDTO(*resp.Progress.Next)
		dto.NextTier = &next
	}
	return dto
}

type segmentDTO struct {
	Label string `json:"label"`
	Kind  string `json:"kind"`
	Value int64  `json:"value"`
	Color string `json:"color,omitempty"`
}

type spinDTO struct {
	Index         int        `json:"index"`
	Segment       segmentDTO `json:"segment"`
	PointsAwarded int64      `json:"points_awarded"`
	Balance       int64      `json:"balance"`
}

func toSpinDTO(resp *spin_wheel.Response) spinDTO {
	return spinDTO{
		Index: resp.Index,
		Segment: segmentDTO{
			Label: resp.Segment.Label,
			Kind:  string(resp.Segment.Kind),
			Value: resp.Segment.Value,
			Color: resp.Segment.Color,
		},
		PointsAwarded: resp.PointsAwarded,
		Balance:       resp.Balance,
	}
}

type generationDTO struct {
	TaskID     string     `json:"task_id"`
	Status     string     `json:"status"`
	Prompt     string     `json:"prompt"`
	Style      string     `json:"style"`
	URLs       []string   `json:"urls"`
	Error      string     `json:"error,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

func toGenerationDTO(s imagegen.Snapshot) generationDTO {
	dto := generationDTO{
		TaskID:    s.ID,
		Status:    string(s.Status),
		Prompt:    s.Prompt,
		Style:     s.Style,
		URLs:      s.URLs,
		CreatedAt: s.CreatedAt,
	}
	if dto.URLs == nil {
		dto.URLs = []string{}
	}
	if s.Err != nil {
		dto.Error = s.Err.Error()
	}
	if !s.FinishedAt.IsZero() {
		finished := s.FinishedAt
		dto.FinishedAt = &finished
	}
	return dto
}

// Event represents a domain event in the HTTP response.
type Event struct {
	EventID     string          `json:"event_id"`
	EventType   string          `json:"event_type"`
	AggregateID string          `json:"aggregate_id"`
	Payload     json.RawMessage `json:"payload"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// ListEventsResponse represents the HTTP response for listing events.
type ListEventsResponse struct {
	Events     []Event `json:"events"`
	TotalCount int64   `json:"total_count"`
}

func toEvent(rec *contracts.EventRecord) Event {
	payload := json.RawMessage(rec.Payload)
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	return Event{
		EventID:     rec.EventID,
		EventType:   rec.EventType,
		AggregateID: rec.AggregateID,
		Payload:     payload,
		OccurredAt:  rec.OccurredAt,
	}
}
