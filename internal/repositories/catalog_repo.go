package repositories

import "shopit/internal/models"

// ProductCatalog defines the read-only product lookup the cart, wishlist and
// order flows join against.
type ProductCatalog interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
}
