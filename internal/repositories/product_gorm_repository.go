package repositories

import (
	"errors"
	"fmt"
	"strings"

	"zenithmed/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Search retrieves the matching page of products from the database,
// newest-created first. The WHERE clause mirrors matchesSearch so the GORM
// and in-memory repositories honour the same contract.
func (r *GORMProductRepository) Search(params SearchParams) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})

	if term := strings.TrimSpace(params.Term); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(composition) LIKE ?", like, like)
	}
	if params.Category != "" && params.Category != models.CategoryAll {
		query = query.Where("category = ?", params.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query = query.Order("created_at DESC, id DESC")
	if params.PageSize > 0 {
		page := params.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(params.PageSize).Offset(params.PageSize * (page - 1))
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}
	return products, total, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, models.ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database. Identity and creation
// time are never written; like the in-memory repository, they are immutable
// at this layer.
func (r *GORMProductRepository) Update(product *models.Product) error {
	// Save falls back to an insert when no row matches, which would
	// resurrect deleted products; issue an explicit UPDATE instead.
	res := r.db.Model(&models.Product{}).Where("id = ?", product.ID).
		Select("*").Omit("id", "created_at", "deleted_at").
		Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", product.ID, models.ErrProductNotFound)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", id, models.ErrProductNotFound)
	}
	return nil
}
