package port

import (
	"context"

	"github.com/minhvu/storefront-cart/internal/core/domain"
)

type CartRepository interface {
	// Load retrieves the previously stored cart. A missing slot or contents
	// that fail to parse yield an empty cart, not an error; only transport
	// failures are returned.
	Load(ctx context.Context) (domain.Cart, error)

	// Save serializes and writes the full cart, overwriting any previous value.
	Save(ctx context.Context, cart domain.Cart) error
}
