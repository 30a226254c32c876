package notify

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/minhvu/storefront-cart/internal/core/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifyAndDrain_PreservesOrder(t *testing.T) {
	n := NewChannelNotifier(8, testLogger())

	n.Notify(domain.Notification{ID: "a", Kind: domain.NoticeAddFailed, Message: "x"})
	n.Notify(domain.Notification{ID: "b", Kind: domain.NoticeStockExceeded, Message: "y"})

	notices := n.Drain()
	if len(notices) != 2 || notices[0].ID != "a" || notices[1].ID != "b" {
		t.Errorf("expected [a b] in order, got %v", notices)
	}

	if got := n.Drain(); len(got) != 0 {
		t.Errorf("expected empty after drain, got %v", got)
	}
}

func TestNotify_FullBufferDropsWithoutBlocking(t *testing.T) {
	n := NewChannelNotifier(2, testLogger())

	for i := 0; i < 5; i++ {
		n.Notify(domain.Notification{ID: fmt.Sprintf("n-%d", i), Kind: domain.NoticeAddFailed})
	}

	notices := n.Drain()
	if len(notices) != 2 {
		t.Fatalf("expected buffer capacity of 2 retained, got %d", len(notices))
	}
	if notices[0].ID != "n-0" || notices[1].ID != "n-1" {
		t.Errorf("expected oldest notices retained, got %v", notices)
	}
}
