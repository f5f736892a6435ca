package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"shopit/internal/models"
	"shopit/internal/services"
)

// OrderHandler handles HTTP requests for the order history and tracking.
type OrderHandler struct {
	authService *services.AuthService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(authService *services.AuthService) *OrderHandler {
	return &OrderHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Get("/:id/tracking", h.HandleGetTracking)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleGetOrders returns the active user's order history, oldest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders := h.authService.Orders()
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(orders)
}

// HandleGetOrderByID returns a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, found := h.authService.GetOrderByID(orderID)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Order with ID %s not found", orderID),
		})
	}
	return c.JSON(order)
}

// HandleGetTracking returns an order's tracking number and event timeline.
func (h *OrderHandler) HandleGetTracking(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, found := h.authService.GetOrderByID(orderID)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Order with ID %s not found", orderID),
		})
	}
	return c.JSON(fiber.Map{
		"orderId":        order.ID,
		"status":         order.Status,
		"trackingNumber": order.TrackingNumber,
		"trackingEvents": order.TrackingEvents,
	})
}

// UpdateStatusRequest represents the request body for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateOrderStatus moves an order through its delivery lifecycle.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	err := h.authService.UpdateOrderStatus(orderID, models.OrderStatus(req.Status))
	if err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid order status",
				"error":   err.Error(),
			})
		case errors.Is(err, services.ErrIllegalTransition):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Order cannot move to that status",
				"error":   err.Error(),
			})
		case errors.Is(err, services.ErrNotSignedIn):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Sign in required",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s status updated successfully to %s", orderID, req.Status),
	})
}
