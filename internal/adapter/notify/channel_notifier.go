package notify

import (
	"log/slog"

	"github.com/minhvu/storefront-cart/internal/core/domain"
)

// ChannelNotifier buffers user-facing notices until the presentation layer
// drains them. When the buffer is full the notice is dropped; notices are
// fire-and-forget and must never block a cart operation.
type ChannelNotifier struct {
	queue  chan domain.Notification
	logger *slog.Logger
}

func NewChannelNotifier(bufferSize int, logger *slog.Logger) *ChannelNotifier {
	return &ChannelNotifier{
		queue:  make(chan domain.Notification, bufferSize),
		logger: logger,
	}
}

func (n *ChannelNotifier) Notify(notice domain.Notification) {
	select {
	case n.queue <- notice:
	default:
		n.logger.Warn("notification buffer full, dropping notice", "kind", notice.Kind)
	}
}

// Drain returns all pending notices in emission order.
func (n *ChannelNotifier) Drain() []domain.Notification {
	notices := make([]domain.Notification, 0, len(n.queue))
	for {
		select {
		case notice := <-n.queue:
			notices = append(notices, notice)
		default:
			return notices
		}
	}
}
