package repositories

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shopit/internal/models"
)

// Demo account credentials, also used by the test suites.
const (
	DemoUserEmail    = "john@example.com"
	DemoUserPassword = "password123"
)

var demoHomeAddress = models.Address{
	ID:         "addr1",
	Name:       "Home",
	Street:     "123 Main St",
	City:       "Mumbai",
	State:      "Maharashtra",
	PostalCode: "400001",
	Country:    "India",
	IsDefault:  true,
}

// SeedUserDirectory installs the demo account with its address book, order
// history and wishlist. The password is hashed at seed time so the directory
// never holds plaintext.
func SeedUserDirectory(directory UserDirectory) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	credential := &models.Credential{
		User: models.User{
			ID:        "user1",
			Name:      "John Doe",
			Email:     DemoUserEmail,
			Avatar:    "https://images.unsplash.com/photo-1633332755192-727a05c4013d?q=80&w=1780&auto=format&fit=crop",
			Addresses: []models.Address{demoHomeAddress},
			Orders:    demoOrders(),
			Wishlist:  []string{"2", "6"},
		},
		PasswordHash: string(hash),
	}

	if err := directory.Create(credential); err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}
	return nil
}

func demoOrders() []models.Order {
	mumbai := func(day, hour, min int) time.Time {
		return time.Date(2023, time.December, day, hour, min, 0, 0, time.UTC)
	}

	delivered := models.Order{
		ID:     "order1",
		Date:   mumbai(12, 9, 30),
		Status: models.OrderDelivered,
		Items: []models.OrderItem{
			{
				ProductID: "1",
				Name:      "Samsung Crystal 4K Ultra HD Smart TV",
				Price:     44990,
				Quantity:  1,
				Image:     "https://images.unsplash.com/photo-1601944179066-29b8f7e29c3d?q=80&w=2070&auto=format&fit=crop",
			},
		},
		Total:           44990,
		PaymentMethod:   "Credit Card",
		ShippingAddress: demoHomeAddress,
		TrackingNumber:  "IND123456789",
		TrackingEvents: []models.TrackingEvent{
			{Date: mumbai(12, 9, 30), Status: "Order Placed", Location: "Mumbai", Description: "Your order has been placed successfully"},
			{Date: mumbai(12, 14, 45), Status: "Processing", Location: "Mumbai", Description: "Your order is being processed"},
			{Date: mumbai(13, 10, 15), Status: "Shipped", Location: "Mumbai", Description: "Your order has been shipped"},
			{Date: mumbai(15, 11, 30), Status: "Delivered", Location: "Mumbai", Description: "Your order has been delivered"},
		},
	}

	jan := func(day, hour, min int) time.Time {
		return time.Date(2024, time.January, day, hour, min, 0, 0, time.UTC)
	}

	shipped := models.Order{
		ID:     "order2",
		Date:   jan(5, 11, 20),
		Status: models.OrderShipped,
		Items: []models.OrderItem{
			{
				ProductID: "7",
				Name:      "Sony WH-1000XM4 Wireless Headphones",
				Price:     19990,
				Quantity:  1,
				Image:     "https://images.unsplash.com/photo-1546435770-a3e426bf472b?q=80&w=2065&auto=format&fit=crop",
			},
			{
				ProductID: "10",
				Name:      "Nike Air Force 1 '07",
				Price:     7495,
				Quantity:  1,
				Image:     "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?q=80&w=1974&auto=format&fit=crop",
			},
		},
		Total:           27485,
		PaymentMethod:   "UPI",
		ShippingAddress: demoHomeAddress,
		TrackingNumber:  "IND987654321",
		TrackingEvents: []models.TrackingEvent{
			{Date: jan(5, 11, 20), Status: "Order Placed", Location: "Mumbai", Description: "Your order has been placed successfully"},
			{Date: jan(5, 16, 30), Status: "Processing", Location: "Mumbai", Description: "Your order is being processed"},
			{Date: jan(6, 9, 45), Status: "Shipped", Location: "Mumbai", Description: "Your order has been shipped"},
		},
	}

	return []models.Order{delivered, shipped}
}
