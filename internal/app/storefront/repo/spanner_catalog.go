package repo

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// SpannerCatalog reads the products table. It never writes.
type SpannerCatalog struct {
	client *spanner.Client
}

// NewSpannerCatalog creates a catalog over an open Spanner client.
func NewSpannerCatalog(client *spanner.Client) *SpannerCatalog {
	return &SpannerCatalog{client: client}
}

// ListStatement builds the listing query for filter.
func ListStatement(filter contracts.ProductFilter) spanner.Statement {
	return query.From(m_product.TableName).
		Select(m_product.Columns...).
		WhereIf(filter.Category != "", query.Eq(m_product.Category, filter.Category)).
		WhereIf(filter.InStockOnly, query.Gt(m_product.Stock, int64(0))).
		OrderBy(m_product.Seq, query.Asc).
		Limit(int64(filter.NormalizedLimit())).
		Build()
}

// ListProducts implements contracts.Catalog.
func (c *SpannerCatalog) ListProducts(ctx context.Context, filter contracts.ProductFilter) ([]*domain.Product, error) {
	iter := c.client.Single().Query(ctx, ListStatement(filter))
	return collectProducts(iter, filter.NormalizedLimit())
}

// GetProduct implements contracts.Catalog.
func (c *SpannerCatalog) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	row, err := c.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{id}, m_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, errors.Wrapf(domain.ErrProductNotFound, "id %s", id)
		}
		return nil, errors.Wrap(err, "failed to read product")
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, errors.Wrap(err, "failed to parse product")
	}
	return DataToProduct(&data)
}

// GetProducts implements contracts.Catalog.
func (c *SpannerCatalog) GetProducts(ctx context.Context, ids []string) (domain.ProductMap, error) {
	if len(ids) == 0 {
		return domain.ProductMap{}, nil
	}

	keys := make([]spanner.KeySet, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, spanner.Key{id})
	}

	iter := c.client.Single().Read(ctx, m_product.TableName, spanner.KeySets(keys...), m_product.Columns)
	products, err := collectProducts(iter, len(ids))
	if err != nil {
		return nil, err
	}

	out := make(domain.ProductMap, len(products))
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

func collectProducts(iter *spanner.RowIterator, capacity int) ([]*domain.Product, error) {
	defer iter.Stop()

	products := make([]*domain.Product, 0, capacity)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate products")
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, errors.Wrap(err, "failed to parse product")
		}

		p, err := DataToProduct(&data)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
