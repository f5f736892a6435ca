package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shopit/internal/services"
)

// CartHandler handles HTTP requests for the cart. Cart routes are public:
// the cart works signed out, like the storefront it backs.
type CartHandler struct {
	cartService *services.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Put("/items/:productId", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// HandleGetCart returns the cart joined against the catalog plus its derived
// totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items":     h.cartService.CartProducts(),
		"itemCount": h.cartService.ItemCount(),
		"subtotal":  h.cartService.Subtotal(),
	})
}

// AddCartItemRequest represents the request body for adding a cart item.
type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gt=0"`
}

// HandleAddItem adds a product to the cart, merging with an existing line.
// Quantity defaults to one when omitted.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add cart item body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}
	h.cartService.AddItem(req.ProductID, req.Quantity)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Item added to cart",
		"itemCount": h.cartService.ItemCount(),
		"subtotal":  h.cartService.Subtotal(),
	})
}

// UpdateQuantityRequest represents the request body for a quantity overwrite.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateQuantity overwrites a line quantity. Zero or below removes the
// line, matching the store semantics.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	productID := c.Params("productId")

	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update quantity body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	h.cartService.UpdateQuantity(productID, req.Quantity)

	return c.JSON(fiber.Map{
		"message":   "Cart updated",
		"itemCount": h.cartService.ItemCount(),
		"subtotal":  h.cartService.Subtotal(),
	})
}

// HandleRemoveItem deletes a line item. Removing an absent product succeeds.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	h.cartService.RemoveItem(c.Params("productId"))
	return c.JSON(fiber.Map{
		"message":   "Item removed from cart",
		"itemCount": h.cartService.ItemCount(),
	})
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	h.cartService.ClearCart()
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
