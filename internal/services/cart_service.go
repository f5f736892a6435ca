package services

import (
	"encoding/json"
	"log"
	"sync"

	"shopit/internal/models"
	"shopit/internal/repositories"
)

// Placeholder values for cart lines whose product no longer resolves against
// the catalog. Stale cart data degrades, it never fails.
const (
	unknownProductName = "Unknown Product"
	placeholderImage   = "/placeholder.svg"
)

// CartService owns the session's cart line items and their derived totals.
// The in-memory list is authoritative; every mutation persists the full list
// to storage best-effort, a failed write is logged and skipped. Line items
// hold at most one entry per product and quantity is always positive.
type CartService struct {
	mu      sync.RWMutex
	items   []models.CartItem
	catalog repositories.ProductCatalog
	storage repositories.Storage
}

// NewCartService creates a CartService hydrated from storage. Absent or
// malformed persisted state starts the cart empty.
func NewCartService(catalog repositories.ProductCatalog, storage repositories.Storage) *CartService {
	s := &CartService{
		catalog: catalog,
		storage: storage,
	}
	s.hydrate()
	return s
}

func (s *CartService) hydrate() {
	raw, found, err := s.storage.Get(repositories.StorageKeyCart)
	if err != nil {
		log.Printf("Warning: failed to read persisted cart: %v", err)
		return
	}
	if !found {
		return
	}

	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("Warning: ignoring malformed persisted cart: %v", err)
		return
	}

	// Drop entries that violate the line-item invariants.
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ProductID == "" || item.Quantity <= 0 || seen[item.ProductID] {
			continue
		}
		seen[item.ProductID] = true
		s.items = append(s.items, item)
	}
}

// persistLocked writes the full line-item list to storage. Callers must hold
// the write lock.
func (s *CartService) persistLocked() {
	raw, err := json.Marshal(s.items)
	if err == nil {
		err = s.storage.Set(repositories.StorageKeyCart, raw)
	}
	if err != nil {
		log.Printf("Warning: failed to persist cart: %v", err)
	}
}

// AddItem adds quantity of a product to the cart, merging into an existing
// line if one exists. Quantities below one count as one. The product is not
// validated against the catalog and no stock limit is enforced here.
func (s *CartService) AddItem(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity += quantity
			s.persistLocked()
			return
		}
	}
	s.items = append(s.items, models.CartItem{ProductID: productID, Quantity: quantity})
	s.persistLocked()
}

// RemoveItem deletes the line item for a product. Removing an absent product
// is not an error.
func (s *CartService) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persistLocked()
}

// UpdateQuantity overwrites the quantity of an existing line item. A quantity
// of zero or below removes the line instead. Absent products are left alone.
func (s *CartService) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persistLocked()
			return
		}
	}
}

// ClearCart empties the cart unconditionally.
func (s *CartService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked()
}

// Items returns a copy of the current line items.
func (s *CartService) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount returns the sum of quantities across all line items.
func (s *CartService) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Subtotal returns the sum of current catalog price times quantity over all
// line items. Products missing from the catalog contribute zero.
func (s *CartService) Subtotal() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.items {
		if product, err := s.catalog.GetByID(item.ProductID); err == nil {
			total += product.Price * item.Quantity
		}
	}
	return total
}

// CartProducts joins each line item against the catalog. The join is computed
// on every call; a product missing from the catalog yields a placeholder
// entry instead of an error.
func (s *CartService) CartProducts() []models.CartProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartProduct, 0, len(s.items))
	for _, item := range s.items {
		product, err := s.catalog.GetByID(item.ProductID)
		if err != nil {
			out = append(out, models.CartProduct{
				ID:       item.ProductID,
				Name:     unknownProductName,
				Price:    0,
				Image:    placeholderImage,
				Quantity: item.Quantity,
			})
			continue
		}
		out = append(out, models.CartProduct{
			ID:            item.ProductID,
			Name:          product.Name,
			Price:         product.Price,
			OriginalPrice: product.OriginalPrice,
			Image:         product.Image,
			Quantity:      item.Quantity,
		})
	}
	return out
}
