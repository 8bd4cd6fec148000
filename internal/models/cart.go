package models

// CartItem is a dish plus the selected quantity. Quantity is always >= 1 while
// the item is in the cart; an item driven to 0 is removed, never kept.
type CartItem struct {
	Dish
	Quantity int `json:"quantity"`
}

// Cart holds the items for one browsing session, in insertion order, keyed by
// dish id (at most one item per id). IsOpen mirrors the cart panel state the
// presentation layer consumes; adding a dish marks it open.
type Cart struct {
	Items  []CartItem `json:"items"`
	IsOpen bool       `json:"is_open"`
}

// Find returns a pointer to the item with the given dish id, or nil.
func (c *Cart) Find(id string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// Count is the total number of units across all items.
func (c *Cart) Count() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// PricingSummary is a pure function of the cart contents. Subtotal and the
// delivery fee are whole-naira amounts; VAT and the total carry the fractional
// 7.5% component.
type PricingSummary struct {
	Subtotal    int     `json:"subtotal"`
	DeliveryFee int     `json:"delivery_fee"`
	VAT         float64 `json:"vat"`
	Total       float64 `json:"total"`
	Progress    float64 `json:"progress_to_free_delivery"`
}

// CartView is the full cart payload returned to the frontend: the cart itself,
// its derived pricing, and up to three upsell suggestions.
type CartView struct {
	Cart        Cart           `json:"cart"`
	Pricing     PricingSummary `json:"pricing"`
	Suggestions []Dish         `json:"suggestions"`
}
