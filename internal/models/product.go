package models

import "gorm.io/gorm"

// Catalog categories. The storefront partitions the catalog into this fixed
// enumeration; anything else is rejected on create/update.
const (
	CategoryOncology         = "Oncology"
	CategoryCardiology       = "Cardiology"
	CategoryAntibiotics      = "Antibiotics"
	CategoryNephrology       = "Nephrology"
	CategoryGeneral          = "General"
	CategoryGastroenterology = "Gastroenterology"
)

// CategoryAll is the sentinel used by listing queries to disable category
// filtering. It is never a valid product category.
const CategoryAll = "All"

// Categories lists every valid product category.
var Categories = []string{
	CategoryOncology,
	CategoryCardiology,
	CategoryAntibiotics,
	CategoryNephrology,
	CategoryGeneral,
	CategoryGastroenterology,
}

// DefaultProductImage is used when a product is created without an image URL.
const DefaultProductImage = "https://images.unsplash.com/photo-1587854692152-cbe660dbbb88?q=80&w=600"

// ValidCategory reports whether c is one of the allowed product categories.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Product represents one medicine in the catalog. The ID is immutable once
// assigned; Name and Composition are the fields searched by the catalog query.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Category    string  `json:"category" gorm:"index;type:varchar(50)" validate:"required,category"`
	Composition string  `json:"composition" validate:"required,max=500"`
	Packaging   string  `json:"packaging" validate:"required,max=200"`
	Image       string  `json:"image" validate:"omitempty,url"`
	Price       float64 `json:"price" validate:"gte=0"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
