package handlers

import (
	"errors"
	"log"

	"zenithmed/internal/models"
	"zenithmed/internal/repositories"
	"zenithmed/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog. Listing and
// reads are public; mutations sit behind the admin middleware.
type ProductHandler struct {
	service  *services.CatalogService
	validate *models.Validation
	pageSize int
}

// NewProductHandler creates a new ProductHandler. pageSize controls the
// listing page size; values <= 0 fall back to the default.
func NewProductHandler(service *services.CatalogService, pageSize int) *ProductHandler {
	if pageSize <= 0 {
		pageSize = services.DefaultPageSize
	}
	return &ProductHandler{
		service:  service,
		validate: models.NewValidation(),
		pageSize: pageSize,
	}
}

// RegisterRoutes registers the product routes with the Fiber app. admin
// guards the mutation endpoints.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, admin fiber.Handler) {
	products := router.Group("/products")
	products.Get("/", h.HandleListProducts)
	products.Get("/:id", h.HandleGetProduct)
	products.Post("/", admin, h.HandleCreateProduct)
	products.Put("/:id", admin, h.HandleUpdateProduct)
	products.Delete("/:id", admin, h.HandleDeleteProduct)
}

// HandleListProducts serves the paginated catalog listing. Query parameters:
// search (name/composition substring), category (exact, "All" disables),
// pageNumber (1-based). The response is always the {products, page, pages}
// envelope.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	params := repositories.SearchParams{
		Term:     c.Query("search"),
		Category: c.Query("category"),
		Page:     c.QueryInt("pageNumber", 1),
		PageSize: h.pageSize,
	}

	page, err := h.service.Query(params)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}
	return c.JSON(page)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.GetProductByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
		})
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	product.ID = "" // identity is assigned by the repository

	if fieldErrors := h.validate.Validate(product); fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrors,
		})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product. The ID comes from the
// path; an ID in the body is ignored.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	// Validate the body fields only; whether the path id exists is the
	// service's call.
	product.ID = ""
	if fieldErrors := h.validate.Validate(product); fieldErrors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrors,
		})
	}
	product.ID = c.Params("id")

	if err := h.service.UpdateProduct(&product); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error updating product %s: %v", product.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
		})
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteProduct(id); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error deleting product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
