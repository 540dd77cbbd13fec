package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data is the row shape of the products table.
type Data struct {
	ProductID                string            `spanner:"product_id"`
	Seq                      int64             `spanner:"seq"`
	Name                     string            `spanner:"name"`
	Brand                    string            `spanner:"brand"`
	SKU                      string            `spanner:"sku"`
	Category                 string            `spanner:"category"`
	Description              string            `spanner:"description"`
	PriceNumerator           int64             `spanner:"price_numerator"`
	PriceDenominator         int64             `spanner:"price_denominator"`
	OriginalPriceNumerator   spanner.NullInt64 `spanner:"original_price_numerator"`
	OriginalPriceDenominator spanner.NullInt64 `spanner:"original_price_denominator"`
	Stock                    int64             `spanner:"stock"`
	IsAIGenerated            bool              `spanner:"is_ai_generated"`
	IsLimited                bool              `spanner:"is_limited"`
	Rating                   float64           `spanner:"rating"`
	Reviews                  int64             `spanner:"reviews"`
	Sizes                    []string          `spanner:"sizes"`
	Colors                   []string          `spanner:"colors"`
	Tags                     []string          `spanner:"tags"`
	CreatedAt                time.Time         `spanner:"created_at"`
}
