package main

import (
	"log"

	"zenithmed/internal/models"
	"zenithmed/internal/repositories"
)

// sampleCatalog is the starter inventory for a fresh deployment.
var sampleCatalog = []models.Product{
	{Name: "Nexium 40mg", Category: models.CategoryGeneral, Composition: "Esomeprazole Magnesium", Packaging: "10x14 Tablets", Image: "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?q=80&w=600", Price: 214.50},
	{Name: "Taxotere 80mg", Category: models.CategoryOncology, Composition: "Docetaxel Injection", Packaging: "Single Vial", Image: "https://images.unsplash.com/photo-1631549916768-4119b2e5f926?q=80&w=600", Price: 10450.00},
	{Name: "Lipitor 20mg", Category: models.CategoryCardiology, Composition: "Atorvastatin Calcium", Packaging: "3x10 Tablets", Image: "https://images.unsplash.com/photo-1628771065518-0d82f159f8a0?q=80&w=600", Price: 168.00},
	{Name: "Augmentin 625", Category: models.CategoryAntibiotics, Composition: "Amoxycillin & Potassium Clavulanate", Packaging: "1x10 Tablets", Image: "https://images.unsplash.com/photo-1587854692152-cbe660dbbb88?q=80&w=600", Price: 204.00},
	{Name: "Zytiga 250mg", Category: models.CategoryOncology, Composition: "Abiraterone Acetate", Packaging: "120 Tablets", Image: "https://images.unsplash.com/photo-1471864190281-ad599f583b33?q=80&w=600", Price: 39990.00},
	{Name: "Concor 5mg", Category: models.CategoryCardiology, Composition: "Bisoprolol Fumarate", Packaging: "10x10 Tablets", Image: "https://images.unsplash.com/photo-1550572017-ed20015ade0a?q=80&w=600", Price: 112.00},
	{Name: "Azithral 500", Category: models.CategoryAntibiotics, Composition: "Azithromycin IP", Packaging: "1x5 Tablets", Image: "https://images.unsplash.com/photo-1576071804486-b8bc22106dbf?q=80&w=600", Price: 119.50},
	{Name: "Renvela 800", Category: models.CategoryNephrology, Composition: "Sevelamer Carbonate", Packaging: "30 Tablets", Image: "https://images.unsplash.com/photo-1607619056574-7b8d3ee536b2?q=80&w=600", Price: 1650.00},
	{Name: "Herceptin 440", Category: models.CategoryOncology, Composition: "Trastuzumab Injection", Packaging: "Multi-dose Vial", Image: "https://images.unsplash.com/photo-1512069772995-ec65ed45afd6?q=80&w=600", Price: 54600.00},
	{Name: "Dolo 650", Category: models.CategoryGeneral, Composition: "Paracetamol IP", Packaging: "15 Tablets", Image: "https://images.unsplash.com/photo-1626716493137-b67fe9501e76?q=80&w=600", Price: 33.60},
}

// seedCatalog inserts the sample inventory when the catalog is empty.
// Non-empty catalogs are left alone so restarts never duplicate data.
func seedCatalog(repo repositories.ProductRepository) error {
	_, total, err := repo.Search(repositories.SearchParams{Page: 1, PageSize: 1})
	if err != nil {
		return err
	}
	if total > 0 {
		log.Printf("Catalog already has %d products; skipping seed.", total)
		return nil
	}

	for i := range sampleCatalog {
		product := sampleCatalog[i]
		if err := repo.Create(&product); err != nil {
			log.Printf("Error seeding product %s: %v", product.Name, err)
			continue
		}
		log.Printf("Seeded product: %s (ID: %s)", product.Name, product.ID)
	}
	return nil
}
