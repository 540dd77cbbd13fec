package m_product

// Column names for the products table.
const (
	TableName = "products"

	ProductID                = "product_id"
	Seq                      = "seq"
	Name                     = "name"
	Brand                    = "brand"
	SKU                      = "sku"
	Category                 = "category"
	Description              = "description"
	PriceNumerator           = "price_numerator"
	PriceDenominator         = "price_denominator"
	OriginalPriceNumerator   = "original_price_numerator"
	OriginalPriceDenominator = "original_price_denominator"
	Stock                    = "stock"
	IsAIGenerated            = "is_ai_generated"
	IsLimited                = "is_limited"
	Rating                   = "rating"
	Reviews                  = "reviews"
	Sizes                    = "sizes"
	Colors                   = "colors"
	Tags                     = "tags"
	CreatedAt                = "created_at"
)

// Columns lists every column in Data field order, for reads and inserts.
var Columns = []string{
	ProductID,
	Seq,
	Name,
	Brand,
	SKU,
	Category,
	Description,
	PriceNumerator,
	PriceDenominator,
	OriginalPriceNumerator,
	OriginalPriceDenominator,
	Stock,
	IsAIGenerated,
	IsLimited,
	Rating,
	Reviews,
	Sizes,
	Colors,
	Tags,
	CreatedAt,
}
