package domain

// CartEntry is a product plus the quantity of it currently selected.
// A committed entry always has Amount >= 1.
type CartEntry struct {
	Product
	Amount int `json:"amount"`
}

// Cart is the ordered sequence of selected products. Insertion order is
// display order. At most one entry exists per product id.
type Cart []CartEntry

// Find returns the index of the entry for productID, or -1.
func (c Cart) Find(productID int64) int {
	for i := range c {
		if c[i].ID == productID {
			return i
		}
	}
	return -1
}

// Amount returns the committed amount for productID, 0 when absent.
func (c Cart) Amount(productID int64) int {
	if i := c.Find(productID); i >= 0 {
		return c[i].Amount
	}
	return 0
}

// WithEntry returns a new cart with entry appended.
func (c Cart) WithEntry(entry CartEntry) Cart {
	next := make(Cart, 0, len(c)+1)
	next = append(next, c...)
	return append(next, entry)
}

// WithAmount returns a new cart with the entry for productID set to amount.
// The cart is returned unchanged if no entry matches.
func (c Cart) WithAmount(productID int64, amount int) Cart {
	next := make(Cart, len(c))
	copy(next, c)
	if i := next.Find(productID); i >= 0 {
		next[i].Amount = amount
	}
	return next
}

// Without returns a new cart with the entry for productID removed, keeping
// the remaining entries in their original relative order.
func (c Cart) Without(productID int64) Cart {
	next := make(Cart, 0, len(c))
	for _, entry := range c {
		if entry.ID != productID {
			next = append(next, entry)
		}
	}
	return next
}
