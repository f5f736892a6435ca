package models

import (
	"strings"
	"time"
)

// OrderStatus is the delivery lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// validNext encodes the delivery lifecycle: forward jumps are allowed,
// cancellation is possible only before shipping, and delivered/cancelled are
// terminal.
var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderPending:    {OrderProcessing: true, OrderShipped: true, OrderDelivered: true, OrderCancelled: true},
	OrderProcessing: {OrderShipped: true, OrderDelivered: true, OrderCancelled: true},
	OrderShipped:    {OrderDelivered: true},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

// Valid reports whether s is one of the five known statuses.
func (s OrderStatus) Valid() bool {
	_, ok := validNext[s]
	return ok
}

// CanTransition reports whether an order may move from s to the given status.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	return validNext[s][to]
}

// Label returns the capitalized form used in tracking events, e.g. "Shipped".
func (s OrderStatus) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[0])) + string(s[1:])
}

// OrderItem is a snapshot of a product at order-creation time. Later catalog
// changes never touch it.
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
}

// TrackingEvent is one milestone in an order's delivery timeline.
type TrackingEvent struct {
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

// Order is a customer order. Items and the shipping address are embedded
// copies captured at creation, so address-book edits and catalog changes do
// not rewrite history. TrackingEvents is append-only and chronological; the
// first event is always "Order Placed".
type Order struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	Status          OrderStatus     `json:"status"`
	Items           []OrderItem     `json:"items"`
	Total           int             `json:"total"`
	PaymentMethod   string          `json:"paymentMethod"`
	ShippingAddress Address         `json:"shippingAddress"`
	TrackingNumber  string          `json:"trackingNumber"`
	TrackingEvents  []TrackingEvent `json:"trackingEvents"`
}
