package repositories

import (
	"strings"

	"zenithmed/internal/models"
)

// SearchParams narrows and pages a catalog listing.
//
// Term is matched case-insensitively as a substring of the product name or
// composition; surrounding whitespace is ignored and an empty term matches
// everything. Category filters on exact
// match; empty or models.CategoryAll disables the filter. When PageSize is
// zero or negative the full filtered list is returned and Page is ignored.
type SearchParams struct {
	Term     string
	Category string
	Page     int
	PageSize int
}

// ProductRepository defines the interface for product data access. Search
// returns the requested page of matches, newest-created first, along with the
// total match count so callers can compute page counts.
type ProductRepository interface {
	Search(params SearchParams) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}

// matchesSearch implements the catalog matching rule for in-memory stores.
// The GORM repository expresses the same rule in SQL; the two must agree.
func matchesSearch(p *models.Product, term, category string) bool {
	if t := strings.ToLower(strings.TrimSpace(term)); t != "" {
		if !strings.Contains(strings.ToLower(p.Name), t) &&
			!strings.Contains(strings.ToLower(p.Composition), t) {
			return false
		}
	}
	if category != "" && category != models.CategoryAll && p.Category != category {
		return false
	}
	return true
}

// pageSlice returns the slice of items for the requested 1-based page, or an
// empty slice when the page is out of range.
func pageSlice(items []models.Product, page, pageSize int) []models.Product {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := pageSize * (page - 1)
	if start < 0 || start >= len(items) {
		// start < 0 means the offset multiplication overflowed; any such
		// page is far out of range.
		return []models.Product{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
