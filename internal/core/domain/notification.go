package domain

// NoticeKind classifies a user-facing failure notice.
type NoticeKind string

const (
	NoticeStockExceeded NoticeKind = "stock_exceeded"
	NoticeAddFailed     NoticeKind = "add_failed"
	NoticeRemoveFailed  NoticeKind = "remove_failed"
	NoticeUpdateFailed  NoticeKind = "update_failed"
)

// Notification is a fire-and-forget, human-readable notice for the
// presentation layer. It carries no structured payload beyond the message;
// the ID only lets clients de-duplicate.
type Notification struct {
	ID      string     `json:"id"`
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}
