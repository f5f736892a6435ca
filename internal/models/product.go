package models

// Product represents one catalog entry. The catalog is read-only for the
// lifetime of the process; carts, wishlists and orders reference products by
// ID only, and those references may dangle without error.
type Product struct {
	ID            string  `json:"id" validate:"required"`
	Name          string  `json:"name" validate:"required,min=3,max=200"`
	Image         string  `json:"image" validate:"omitempty,url"`
	Price         int     `json:"price" validate:"gte=0"`
	OriginalPrice int     `json:"originalPrice,omitempty"`
	Rating        float64 `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount   int     `json:"reviewCount" validate:"gte=0"`
	Discount      int     `json:"discount,omitempty" validate:"gte=0,lte=100"`
	Condition     string  `json:"condition" validate:"omitempty,oneof=New Used"`
	Stock         int     `json:"stock" validate:"gte=0"`
	Category      string  `json:"category"`
	IsNewArrival  bool    `json:"isNewArrival"`
	IsDeal        bool    `json:"isDeal"`
	IsSecondHand  bool    `json:"isSecondHand"`
}
