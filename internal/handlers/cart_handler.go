package handlers

import (
	"errors"
	"log"

	"zenithmed/internal/cart"
	"zenithmed/internal/models"
	"zenithmed/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SessionHeader identifies the caller's cart session.
const SessionHeader = "X-Session-ID"

// CartHandler exposes the session cart over HTTP. Every route requires the
// session header; carts are created lazily on first use.
type CartHandler struct {
	carts   *cart.Manager
	catalog *services.CatalogService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts *cart.Manager, catalog *services.CatalogService) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: catalog,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:productId", h.HandleAdjustQuantity)
	cartRoutes.Delete("/items/:productId", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// session resolves the caller's cart, or nil when the session header is
// missing.
func (h *CartHandler) session(c *fiber.Ctx) *cart.Cart {
	sessionID := c.Get(SessionHeader)
	if sessionID == "" {
		return nil
	}
	return h.carts.Get(sessionID)
}

func missingSession(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": SessionHeader + " header is required",
	})
}

func (h *CartHandler) summarize(c *fiber.Ctx, sessionCart *cart.Cart, status int) error {
	summary, err := sessionCart.Summarize(h.catalog.GetProductByID)
	if err != nil {
		log.Printf("Error summarizing cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
		})
	}
	return c.Status(status).JSON(summary)
}

// HandleGetCart returns the materialised cart: each line joined with its
// current product, line totals and the recomputed cart total. Lines whose
// product has since been deleted are omitted.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	sessionCart := h.session(c)
	if sessionCart == nil {
		return missingSession(c)
	}
	return h.summarize(c, sessionCart, fiber.StatusOK)
}

// HandleAddItem adds one unit of a product to the cart. Adding a product
// already in the cart increments its quantity.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	sessionCart := h.session(c)
	if sessionCart == nil {
		return missingSession(c)
	}

	var body struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&body); err != nil || body.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "productId is required",
		})
	}

	product, err := h.catalog.GetProductByID(body.ProductID)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error resolving product %s: %v", body.ProductID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add item to cart",
		})
	}

	if err := sessionCart.AddItem(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	return h.summarize(c, sessionCart, fiber.StatusCreated)
}

// HandleAdjustQuantity changes a line item's quantity by the signed delta in
// the body. The quantity is clamped at 1; removal requires an explicit
// DELETE.
func (h *CartHandler) HandleAdjustQuantity(c *fiber.Ctx) error {
	sessionCart := h.session(c)
	if sessionCart == nil {
		return missingSession(c)
	}

	var body struct {
		Delta int `json:"delta"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	productID := c.Params("productId")
	if err := sessionCart.AdjustQuantity(productID, body.Delta); err != nil {
		if errors.Is(err, cart.ErrNotInCart) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not in cart",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	return h.summarize(c, sessionCart, fiber.StatusOK)
}

// HandleRemoveItem removes a line item. Removing a product that is not in
// the cart is a no-op and still returns the current cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	sessionCart := h.session(c)
	if sessionCart == nil {
		return missingSession(c)
	}
	sessionCart.RemoveItem(c.Params("productId"))
	return h.summarize(c, sessionCart, fiber.StatusOK)
}

// HandleClearCart empties the session's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	sessionCart := h.session(c)
	if sessionCart == nil {
		return missingSession(c)
	}
	sessionCart.Clear()
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
