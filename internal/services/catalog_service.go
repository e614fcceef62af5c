package services

import (
	"fmt"
	"strings"

	"zenithmed/internal/models"
	"zenithmed/internal/repositories"
	"zenithmed/pkg/cache"
)

// DefaultPageSize matches the storefront's eight-per-page product grid.
const DefaultPageSize = 8

// CatalogPage is the single response envelope for catalog listings: the page
// of products plus the 1-based page number and total page count. The same
// shape is used whether or not the caller paginates.
type CatalogPage struct {
	Products []models.Product `json:"products"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
}

// CatalogService handles catalog queries and product lifecycle. The query
// cache is optional; a nil cache disables caching without any branching
// here.
type CatalogService struct {
	repo  repositories.ProductRepository
	cache *cache.QueryCache
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository, queryCache *cache.QueryCache) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: queryCache,
	}
}

// Query runs a catalog search and wraps the result in the listing envelope.
// An out-of-range page yields an empty product slice, not an error. With
// PageSize <= 0 the full filtered list is returned as a single page.
func (s *CatalogService) Query(params repositories.SearchParams) (*CatalogPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}

	key := fmt.Sprintf("term=%s|category=%s|page=%d|size=%d",
		strings.ToLower(strings.TrimSpace(params.Term)), params.Category, params.Page, params.PageSize)
	var cached CatalogPage
	if s.cache.Get(key, &cached) {
		return &cached, nil
	}

	products, total, err := s.repo.Search(params)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}

	page := &CatalogPage{
		Products: products,
		Page:     params.Page,
		Pages:    totalPages(total, params.PageSize),
	}
	s.cache.Set(key, page)
	return page, nil
}

// totalPages is ceil(total/pageSize); an unpaginated query is one page.
func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product, applying the placeholder image when
// none is supplied.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	if product.Image == "" {
		product.Image = models.DefaultProductImage
	}
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

// UpdateProduct updates an existing product. Identity and creation time are
// immutable; the stored values are carried over regardless of what the
// caller supplies.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	existing, err := s.repo.GetByID(product.ID)
	if err != nil {
		return err
	}
	product.CreatedAt = existing.CreatedAt
	if product.Image == "" {
		product.Image = existing.Image
	}
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

// DeleteProduct deletes a product by its ID.
func (s *CatalogService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}
