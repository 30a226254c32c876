package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/minhvu/storefront-cart/internal/core/domain"
)

// HTTPGateway queries the remote catalog/stock service over JSON HTTP.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type stockResponse struct {
	Amount int `json:"amount"`
}

func (g *HTTPGateway) GetStock(ctx context.Context, productID int64) (domain.StockSnapshot, error) {
	var resp stockResponse
	if err := g.getJSON(ctx, fmt.Sprintf("%s/stock/%d", g.baseURL, productID), &resp); err != nil {
		return domain.StockSnapshot{}, err
	}
	return domain.StockSnapshot{ProductID: productID, Available: resp.Amount}, nil
}

func (g *HTTPGateway) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	var p domain.Product
	if err := g.getJSON(ctx, fmt.Sprintf("%s/products/%d", g.baseURL, productID), &p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (g *HTTPGateway) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog request: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
