package port

import "github.com/minhvu/storefront-cart/internal/core/domain"

type Notifier interface {
	// Notify emits a user-facing notice. Fire-and-forget: it never blocks
	// and never reports failure to the caller.
	Notify(n domain.Notification)
}
