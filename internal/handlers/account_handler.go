package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shopit/internal/models"
	"shopit/internal/services"
)

// AccountHandler handles HTTP requests for profile, address book and
// wishlist. All of its routes sit behind the JWT middleware.
type AccountHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(authService *services.AuthService) *AccountHandler {
	return &AccountHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the account routes with the Fiber app.
func (h *AccountHandler) RegisterRoutes(router fiber.Router) {
	accountRoutes := router.Group("/account")
	accountRoutes.Get("/profile", h.HandleGetProfile)
	accountRoutes.Put("/profile", h.HandleUpdateProfile)
	accountRoutes.Get("/addresses", h.HandleGetAddresses)
	accountRoutes.Post("/addresses", h.HandleAddAddress)
	accountRoutes.Put("/addresses/:id", h.HandleUpdateAddress)
	accountRoutes.Put("/addresses/:id/default", h.HandleSetDefaultAddress)
	accountRoutes.Delete("/addresses/:id", h.HandleDeleteAddress)

	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/:productId", h.HandleAddToWishlist)
	wishlistRoutes.Delete("/:productId", h.HandleRemoveFromWishlist)
}

// HandleGetProfile returns the active user.
func (h *AccountHandler) HandleGetProfile(c *fiber.Ctx) error {
	user := h.authService.CurrentUser()
	if user == nil {
		return notSignedInResponse(c)
	}
	return c.JSON(user)
}

// UpdateProfileRequest represents the request body for a profile update.
type UpdateProfileRequest struct {
	Name   string `json:"name" validate:"omitempty,min=2,max=100"`
	Avatar string `json:"avatar" validate:"omitempty,url"`
}

// HandleUpdateProfile overwrites the display name and avatar.
func (h *AccountHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing profile update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.authService.UpdateProfile(req.Name, req.Avatar); err != nil {
		return accountErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Profile updated",
		"user":    h.authService.CurrentUser(),
	})
}

// HandleGetAddresses returns the active user's address book.
func (h *AccountHandler) HandleGetAddresses(c *fiber.Ctx) error {
	user := h.authService.CurrentUser()
	if user == nil {
		return notSignedInResponse(c)
	}
	return c.JSON(user.Addresses)
}

// HandleAddAddress appends a new address to the book.
func (h *AccountHandler) HandleAddAddress(c *fiber.Ctx) error {
	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		log.Printf("Error parsing address body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	address.ID = ""
	if err := h.validate.Struct(address); err != nil {
		return validationErrorResponse(c, err)
	}

	created, err := h.authService.AddAddress(address)
	if err != nil {
		return accountErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateAddress overwrites an existing address.
func (h *AccountHandler) HandleUpdateAddress(c *fiber.Ctx) error {
	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		log.Printf("Error parsing address body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	address.ID = c.Params("id")
	if err := h.validate.Struct(address); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.authService.UpdateAddress(address); err != nil {
		return accountErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Address updated",
	})
}

// HandleSetDefaultAddress marks one address as the default.
func (h *AccountHandler) HandleSetDefaultAddress(c *fiber.Ctx) error {
	if err := h.authService.SetDefaultAddress(c.Params("id")); err != nil {
		return accountErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Default address updated",
	})
}

// HandleDeleteAddress removes an address from the book.
func (h *AccountHandler) HandleDeleteAddress(c *fiber.Ctx) error {
	if err := h.authService.DeleteAddress(c.Params("id")); err != nil {
		return accountErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Address deleted",
	})
}

// HandleGetWishlist returns the wishlist product ids.
func (h *AccountHandler) HandleGetWishlist(c *fiber.Ctx) error {
	if h.authService.CurrentUser() == nil {
		return notSignedInResponse(c)
	}
	wishlist := h.authService.Wishlist()
	if wishlist == nil {
		wishlist = []string{}
	}
	return c.JSON(fiber.Map{
		"wishlist": wishlist,
	})
}

// HandleAddToWishlist adds a product id to the wishlist.
func (h *AccountHandler) HandleAddToWishlist(c *fiber.Ctx) error {
	if err := h.authService.AddToWishlist(c.Params("productId")); err != nil {
		return accountErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Added to wishlist",
	})
}

// HandleRemoveFromWishlist removes a product id from the wishlist.
func (h *AccountHandler) HandleRemoveFromWishlist(c *fiber.Ctx) error {
	if err := h.authService.RemoveFromWishlist(c.Params("productId")); err != nil {
		return accountErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Removed from wishlist",
	})
}

func notSignedInResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Sign in required",
	})
}

func accountErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotSignedIn):
		return notSignedInResponse(c)
	case errors.Is(err, services.ErrAddressNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Address not found: %v", err),
		})
	}
	log.Printf("Account operation failed: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Account operation failed",
		"error":   err.Error(),
	})
}
