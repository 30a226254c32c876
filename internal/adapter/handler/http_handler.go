package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/minhvu/storefront-cart/internal/adapter/notify"
	"github.com/minhvu/storefront-cart/internal/core/service"
)

type HTTPHandler struct {
	cart     *service.CartService
	notifier *notify.ChannelNotifier
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type UpdateItemRequest struct {
	Amount int `json:"amount"`
}

type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewHTTPHandler(cart *service.CartService, notifier *notify.ChannelNotifier) *HTTPHandler {
	return &HTTPHandler{cart: cart, notifier: notifier}
}

// GetCart returns the ordered cart snapshot.
func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.cart.Items())
}

// AddItem handles POST /api/cart/items.
func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MutationResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}
	if req.ProductID <= 0 {
		writeJSON(w, http.StatusBadRequest, MutationResponse{
			Success: false,
			Message: "missing product_id",
		})
		return
	}

	h.respond(w, h.cart.AddProduct(r.Context(), req.ProductID), "product added")
}

// CartItem handles PUT and DELETE on /api/cart/items/{id}.
func (h *HTTPHandler) CartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/cart/items/"), 10, 64)
	if err != nil || productID <= 0 {
		writeJSON(w, http.StatusBadRequest, MutationResponse{
			Success: false,
			Message: "invalid product id",
		})
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req UpdateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, MutationResponse{
				Success: false,
				Message: "invalid request body",
			})
			return
		}
		h.respond(w, h.cart.UpdateProductAmount(r.Context(), productID, req.Amount), "amount updated")
	case http.MethodDelete:
		h.respond(w, h.cart.RemoveProduct(r.Context(), productID), "product removed")
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// Notifications drains pending user-facing notices.
func (h *HTTPHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.notifier.Drain())
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respond maps operation outcomes to HTTP statuses. The user-facing message
// travels over the notification feed; callers only get a generic outcome.
func (h *HTTPHandler) respond(w http.ResponseWriter, err error, okMessage string) {
	if err == nil {
		writeJSON(w, http.StatusOK, MutationResponse{Success: true, Message: okMessage})
		return
	}

	status := http.StatusInternalServerError
	message := "internal error"

	if errors.Is(err, service.ErrOutOfStock) {
		status = http.StatusConflict
		message = "out of stock"
	} else if errors.Is(err, service.ErrNotFound) {
		status = http.StatusNotFound
		message = "not in cart"
	} else if errors.Is(err, service.ErrServiceUnavailable) {
		status = http.StatusBadGateway
		message = "catalog unavailable"
	}

	writeJSON(w, status, MutationResponse{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
