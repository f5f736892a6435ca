package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"shopit/internal/repositories"
)

// ProductHandler handles HTTP requests for the read-only catalog. The catalog
// has no business rules, so the handler reads the repository directly.
type ProductHandler struct {
	catalog repositories.ProductCatalog
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalog repositories.ProductCatalog) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
}

// HandleGetProducts returns the full catalog.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.catalog.GetAll()
	if err != nil {
		log.Printf("Error getting products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID returns a single catalog entry.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.catalog.GetByID(productID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", productID),
		})
	}
	return c.JSON(product)
}
