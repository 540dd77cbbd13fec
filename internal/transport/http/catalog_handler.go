package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/list_products"
)

type listProductsParams struct {
	Category    string `query:"category"`
	InStockOnly bool   `query:"in_stock"`
	Limit       int    `query:"limit" validate:"gte=0"`
}

// ListProducts handles GET /api/v1/products.
func (h *Handler) ListProducts(c echo.Context) error {
	var params listProductsParams
	if ok, err := bindAndValidate(c, &params); !ok {
		return err
	}

	products, err := h.deps.ListProducts.Execute(c.Request().Context(), &list_products.Request{
		Category:    params.Category,
		InStockOnly: params.InStockOnly,
		Limit:       params.Limit,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	out := make([]productDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return success(c, http.StatusOK, out)
}

// GetProduct handles GET /api/v1/products/:id.
func (h *Handler) GetProduct(c echo.Context) error {
	product, err := h.deps.GetProduct.Execute(c.Request().Context(), &get_product.Request{
		ProductID: c.Param("id"),
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return success(c, http.StatusOK, toProductDTO(product))
}
