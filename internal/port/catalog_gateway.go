package port

import (
	"context"

	"github.com/minhvu/storefront-cart/internal/core/domain"
)

type CatalogGateway interface {
	// GetStock fetches the current available stock for a product.
	// Fails on unreachable service, unknown id, or malformed response.
	GetStock(ctx context.Context, productID int64) (domain.StockSnapshot, error)

	// GetProduct fetches full product metadata. Same failure modes as GetStock.
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)
}
