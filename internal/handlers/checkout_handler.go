package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shopit/internal/models"
	"shopit/internal/services"
)

// CheckoutHandler coordinates checkout across the cart and session stores.
// Neither store owns the flow: the handler validates the form, snapshots the
// cart into order items, creates the order, then clears the cart.
type CheckoutHandler struct {
	cartService *services.CartService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(cartService *services.CartService, authService *services.AuthService) *CheckoutHandler {
	return &CheckoutHandler{
		cartService: cartService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the checkout route with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)
}

// CheckoutRequest represents the shipping and payment form.
type CheckoutRequest struct {
	ShippingAddress models.Address `json:"shippingAddress" validate:"required"`
	PaymentMethod   string         `json:"paymentMethod" validate:"required,max=50"`
}

// HandleCheckout places an order from the current cart. The order items are
// a snapshot of the cart joined against the catalog at this moment; the cart
// is cleared only after the order is created.
func (h *CheckoutHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	cartProducts := h.cartService.CartProducts()
	if len(cartProducts) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cart is empty",
		})
	}

	items := make([]models.OrderItem, 0, len(cartProducts))
	for _, cp := range cartProducts {
		items = append(items, models.OrderItem{
			ProductID: cp.ID,
			Name:      cp.Name,
			Price:     cp.Price,
			Quantity:  cp.Quantity,
			Image:     cp.Image,
		})
	}

	order, err := h.authService.CreateOrder(services.OrderRequest{
		Items:           items,
		Total:           h.cartService.Subtotal(),
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		log.Printf("Error creating order: %v", err)
		if errors.Is(err, services.ErrNotSignedIn) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Sign in required to place an order",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}

	h.cartService.ClearCart()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"orderId": order.ID,
		"order":   order,
	})
}
