package domain

// Product is a catalog entity. It is immutable once fetched; the catalog
// service owns it.
type Product struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// StockSnapshot is the available stock for a product at the moment of a
// validation decision. It is transient and never cached.
type StockSnapshot struct {
	ProductID int64
	Available int
}
