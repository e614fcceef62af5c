package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"zenithmed/internal/models"

	"github.com/google/uuid"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. It backs tests and local development and honours the
// same Search contract as the GORM repository.
type MemoryProductRepository struct {
	products map[string]models.Product
	order    []string // insertion order, used to break creation-time ties
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[string]models.Product),
	}
}

// Search returns the matching page of products, newest-created first.
func (r *MemoryProductRepository) Search(params SearchParams) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Walk insertion order newest-first so the stable sort below preserves
	// it for products created at the same instant.
	matched := make([]models.Product, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		p := r.products[r.order[i]]
		if matchesSearch(&p, params.Term, params.Category) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	return pageSlice(matched, params.Page, params.PageSize), total, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, models.ErrProductNotFound)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	if _, exists := r.products[product.ID]; !exists {
		r.order = append(r.order, product.ID)
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product %s: %w", product.ID, models.ErrProductNotFound)
	}
	product.CreatedAt = existing.CreatedAt // creation time is immutable
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, models.ErrProductNotFound)
	}
	delete(r.products, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
