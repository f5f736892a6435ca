package repositories

import (
	"fmt"
	"sync"

	"shopit/internal/models"
)

// MemoryCatalog is an in-memory implementation of ProductCatalog. Entries are
// added once at startup and only read afterwards.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products []models.Product
	index    map[string]int
}

// NewMemoryCatalog creates an empty MemoryCatalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		index: make(map[string]int),
	}
}

// Add inserts or replaces a catalog entry. Used for seeding.
func (c *MemoryCatalog) Add(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[product.ID]; ok {
		c.products[i] = product
		return
	}
	c.index[product.ID] = len(c.products)
	c.products = append(c.products, product)
}

// GetAll returns all products in seed order.
func (c *MemoryCatalog) GetAll() ([]models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

// GetByID returns a product by its ID.
func (c *MemoryCatalog) GetByID(id string) (*models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s not found", id)
	}
	product := c.products[i]
	return &product, nil
}
