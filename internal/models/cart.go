package models

// CartItem is one line of the cart: a weak product reference plus a quantity.
// At most one line exists per product, and quantity is always positive.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartProduct is a CartItem joined against the catalog at read time. It is
// derived on every read and never persisted, so a catalog price change shows
// up in the cart immediately.
type CartProduct struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	OriginalPrice int    `json:"originalPrice,omitempty"`
	Image         string `json:"image"`
	Quantity      int    `json:"quantity"`
}
