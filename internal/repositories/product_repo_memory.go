package repositories

import (
	"sort"
	"sync"

	"productstore/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository, used in tests and local development.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[uint]models.Product
	nextID   uint
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uint]models.Product),
	}
}

// GetLatest returns at most limit products ordered by id descending.
func (r *MemoryProductRepository) GetLatest(limit int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Create adds a new product under the next free id.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	product.ID = r.nextID
	r.products[product.ID] = *product
	return nil
}

// UpdateByID overwrites the given fields of an existing product.
func (r *MemoryProductRepository) UpdateByID(id uint, fields map[string]any) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return 0, nil
	}
	if name, ok := fields["name"].(string); ok {
		product.Name = name
	}
	if price, ok := fields["price"].(float64); ok {
		product.Price = price
	}
	if availability, ok := fields["availability"].(bool); ok {
		product.Availability = availability
	}
	r.products[id] = product
	return 1, nil
}

// DeleteByID removes a product by its ID.
func (r *MemoryProductRepository) DeleteByID(id uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return 0, nil
	}
	delete(r.products, id)
	return 1, nil
}
