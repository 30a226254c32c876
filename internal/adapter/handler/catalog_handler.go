package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/minhvu/storefront-cart/internal/adapter/storage"
)

// CatalogHandler serves the two JSON endpoints the cart gateway consumes.
type CatalogHandler struct {
	store  *storage.MySQLAdapter
	logger *slog.Logger
}

type StockResponse struct {
	Amount int `json:"amount"`
}

func NewCatalogHandler(store *storage.MySQLAdapter, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{store: store, logger: logger}
}

// GetProduct handles GET /products/{id}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productID(w, r, "/products/")
	if !ok {
		return
	}

	product, err := h.store.GetProduct(r.Context(), productID)
	if err != nil {
		h.logger.Error("product lookup failed", "product_id", productID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetStock handles GET /stock/{id}.
func (h *CatalogHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.productID(w, r, "/stock/")
	if !ok {
		return
	}

	stock, err := h.store.GetStock(r.Context(), productID)
	if err != nil {
		h.logger.Error("stock lookup failed", "product_id", productID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if stock == nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, StockResponse{Amount: stock.Available})
}

func (h *CatalogHandler) productID(w http.ResponseWriter, r *http.Request, prefix string) (int64, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, prefix), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
