package repo

import (
	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
)

// ProductToData converts a catalog product to its row form. seq fixes the
// listing order. Prices must fit the int64 numerator/denominator columns.
func ProductToData(p *domain.Product, seq int64) (*m_product.Data, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !p.Price.IsSafeForStorage() {
		return nil, errors.Wrapf(domain.ErrInvalidMoney, "product %s: price exceeds storage range", p.ID)
	}

	data := &m_product.Data{
		ProductID:        p.ID,
		Seq:              seq,
		Name:             p.Name,
		Brand:            p.Brand,
		SKU:              p.SKU,
		Category:         p.Category,
		Description:      p.Description,
		PriceNumerator:   p.Price.Numerator(),
		PriceDenominator: p.Price.Denominator(),
		Stock:            p.Stock,
		IsAIGenerated:    p.IsAIGenerated,
		IsLimited:        p.IsLimited,
		Rating:           p.Rating,
		Reviews:          p.Reviews,
		Sizes:            p.Sizes,
		Colors:           p.Colors,
		Tags:             p.Tags,
	}

	if p.OriginalPrice != nil {
		if !p.OriginalPrice.IsSafeForStorage() {
			return nil, errors.Wrapf(domain.ErrInvalidMoney, "product %s: original price exceeds storage range", p.ID)
		}
		data.OriginalPriceNumerator = spanner.NullInt64{Int64: p.OriginalPrice.Numerator(), Valid: true}
		data.OriginalPriceDenominator = spanner.NullInt64{Int64: p.OriginalPrice.Denominator(), Valid: true}
	}

	return data, nil
}

// DataToProduct converts a products row to a catalog product.
func DataToProduct(data *m_product.Data) (*domain.Product, error) {
	price, err := domain.NewMoney(data.PriceNumerator, data.PriceDenominator)
	if err != nil {
		return nil, errors.Wrapf(err, "product %s: invalid price", data.ProductID)
	}

	p := &domain.Product{
		ID:            data.ProductID,
		Name:          data.Name,
		Brand:         data.Brand,
		SKU:           data.SKU,
		Category:      data.Category,
		Description:   data.Description,
		Price:         price,
		Stock:         data.Stock,
		IsAIGenerated: data.IsAIGenerated,
		IsLimited:     data.IsLimited,
		Rating:        data.Rating,
		Reviews:       data.Reviews,
		Sizes:         data.Sizes,
		Colors:        data.Colors,
		Tags:          data.Tags,
	}

	if data.OriginalPriceNumerator.Valid && data.OriginalPriceDenominator.Valid {
		original, err := domain.NewMoney(data.OriginalPriceNumerator.Int64, data.OriginalPriceDenominator.Int64)
		if err != nil {
			return nil, errors.Wrapf(err, "product %s: invalid original price", data.ProductID)
		}
		p.OriginalPrice = original
	}

	return p, nil
}
