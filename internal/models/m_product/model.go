package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
// The catalog is read-only to the service; mutations come from seeding.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates an upsert mutation for one product row.
// created_at is always the commit timestamp.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName, Columns, []interface{}{
		data.ProductID,
		data.Seq,
		data.Name,
		data.Brand,
		data.SKU,
		data.Category,
		data.Description,
		data.PriceNumerator,
		data.PriceDenominator,
		data.OriginalPriceNumerator,
		data.OriginalPriceDenominator,
		data.Stock,
		data.IsAIGenerated,
		data.IsLimited,
		data.Rating,
		data.Reviews,
		data.Sizes,
		data.Colors,
		data.Tags,
		spanner.CommitTimestamp,
	})
}

// DeleteAllMut removes every product row, used before reseeding.
func (m *Model) DeleteAllMut() *spanner.Mutation {
	return spanner.Delete(TableName, spanner.AllKeys())
}
