package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/minhvu/storefront-cart/internal/core/domain"
	"github.com/minhvu/storefront-cart/internal/port"
)

var (
	ErrOutOfStock         = errors.New("requested amount exceeds available stock")
	ErrNotFound           = errors.New("product not in cart")
	ErrServiceUnavailable = errors.New("catalog service unavailable")
)

// CartService owns the authoritative cart. Mutations are serialized behind a
// single lock: each operation, including its persistence write, completes
// before the next one starts.
type CartService struct {
	mu       sync.Mutex
	cart     domain.Cart
	catalog  port.CatalogGateway
	repo     port.CartRepository
	notifier port.Notifier
	logger   *slog.Logger
}

func NewCartService(catalog port.CatalogGateway, repo port.CartRepository, notifier port.Notifier, logger *slog.Logger) *CartService {
	return &CartService{
		catalog:  catalog,
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Restore populates the cart from persistence. It never writes back, so a
// restart alone does not touch the stored slot. A transport failure starts
// the session with an empty cart.
func (s *CartService) Restore(ctx context.Context) {
	cart, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("cart restore failed, starting empty", "error", err)
		cart = domain.Cart{}
	}
	s.mu.Lock()
	s.cart = cart
	s.mu.Unlock()
}

// Items returns a read-only snapshot of the cart in display order.
func (s *CartService) Items() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(domain.Cart, len(s.cart))
	copy(snapshot, s.cart)
	return snapshot
}

// AddProduct puts one more unit of the product into the cart: a new entry
// with amount 1 when absent, otherwise an increment validated against the
// current stock level.
func (s *CartService) AddProduct(ctx context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stock, err := s.catalog.GetStock(ctx, productID)
	if err != nil {
		s.notify(domain.NoticeAddFailed, "Failed to add product to cart")
		return fmt.Errorf("%w: stock query: %v", ErrServiceUnavailable, err)
	}

	current := s.cart.Amount(productID)
	if current == 0 {
		product, err := s.catalog.GetProduct(ctx, productID)
		if err != nil {
			s.notify(domain.NoticeAddFailed, "Failed to add product to cart")
			return fmt.Errorf("%w: product query: %v", ErrServiceUnavailable, err)
		}
		s.cart = s.cart.WithEntry(domain.CartEntry{Product: product, Amount: 1})
		s.persist(ctx)
		return nil
	}

	if current+1 > stock.Available {
		s.notify(domain.NoticeStockExceeded, "Requested amount is out of stock")
		return ErrOutOfStock
	}

	s.cart = s.cart.WithAmount(productID, current+1)
	s.persist(ctx)
	return nil
}

// RemoveProduct deletes the entry for productID, preserving the relative
// order of the remaining entries.
func (s *CartService) RemoveProduct(ctx context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Find(productID) < 0 {
		s.notify(domain.NoticeRemoveFailed, "Failed to remove product from cart")
		return ErrNotFound
	}

	s.cart = s.cart.Without(productID)
	s.persist(ctx)
	return nil
}

// UpdateProductAmount sets the amount of an existing entry after validating
// it against current stock. A non-positive amount is silently ignored; that
// is a policy decision, not an error path.
func (s *CartService) UpdateProductAmount(ctx context.Context, productID int64, amount int) error {
	if amount <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stock, err := s.catalog.GetStock(ctx, productID)
	if err != nil {
		s.notify(domain.NoticeUpdateFailed, "Failed to update product amount")
		return fmt.Errorf("%w: stock query: %v", ErrServiceUnavailable, err)
	}

	if amount > stock.Available {
		s.notify(domain.NoticeStockExceeded, "Requested amount is out of stock")
		return ErrOutOfStock
	}

	if s.cart.Find(productID) < 0 {
		s.notify(domain.NoticeUpdateFailed, "Failed to update product amount")
		return ErrNotFound
	}

	s.cart = s.cart.WithAmount(productID, amount)
	s.persist(ctx)
	return nil
}

// persist writes the full cart. Durability is best-effort: a write failure
// is logged and never rolls back the in-memory state.
func (s *CartService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.cart); err != nil {
		s.logger.Warn("cart persistence failed", "error", err)
	}
}

func (s *CartService) notify(kind domain.NoticeKind, message string) {
	s.notifier.Notify(domain.Notification{
		ID:      uuid.New().String(),
		Kind:    kind,
		Message: message,
	})
}
