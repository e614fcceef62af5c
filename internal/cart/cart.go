// Package cart implements the session shopping cart: an explicit state
// object owned by whoever constructs it, never an ambient singleton. A cart
// holds line items that reference catalog products by id; prices are looked
// up at read time so totals always reflect the current catalog.
package cart

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"zenithmed/internal/models"
)

// Errors returned by cart operations.
var (
	ErrNotInCart      = errors.New("product not in cart")
	ErrEmptyProductID = errors.New("product id must not be empty")
	ErrNegativePrice  = errors.New("product price must not be negative")
)

// CountMode selects what Count reports.
type CountMode int

const (
	// CountLines counts distinct line items. This is the default and what
	// the storefront's cart badge displays.
	CountLines CountMode = iota
	// CountUnits counts total units across all line items.
	CountUnits
)

// LineItem is one entry in the cart. It references a product by id and does
// not own it; if the product is later deleted the line becomes stale and is
// skipped when the cart is summarised.
type LineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ProductLookup resolves a product id to the current catalog entry. It must
// return an error wrapping models.ErrProductNotFound for deleted products.
type ProductLookup func(productID string) (*models.Product, error)

// LineView is a line item joined with its product, as served to the client.
type LineView struct {
	Product   models.Product `json:"product"`
	Quantity  int            `json:"quantity"`
	LineTotal float64        `json:"lineTotal"`
}

// Summary is a materialised view of the cart. Stale lines (products that no
// longer resolve) are excluded from Items and Total and reported in Stale.
type Summary struct {
	Items []LineView `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
	Stale []string   `json:"-"`
}

// Cart is the line-item state for one session. At most one line item exists
// per product id; adding an already-carted product increments its quantity.
// All methods are safe for concurrent use.
type Cart struct {
	mu    sync.RWMutex
	items []LineItem // insertion order, preserved for display
	mode  CountMode
}

// New creates an empty cart using the given count mode.
func New(mode CountMode) *Cart {
	return &Cart{mode: mode}
}

// AddItem adds one unit of the product to the cart. If a line item for the
// product already exists its quantity is incremented; otherwise a new line
// with quantity 1 is appended.
func (c *Cart) AddItem(product *models.Product) error {
	if product == nil || product.ID == "" {
		return ErrEmptyProductID
	}
	if product.Price < 0 {
		return ErrNegativePrice
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity++
			return nil
		}
	}
	c.items = append(c.items, LineItem{ProductID: product.ID, Quantity: 1})
	return nil
}

// RemoveItem deletes the line item for the product id. Removing an id that
// is not in the cart is a no-op, not an error.
func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// AdjustQuantity changes the line item's quantity by delta, clamping the
// result at a minimum of 1. Decrementing never removes the line; callers
// wanting removal must use RemoveItem. Returns ErrNotInCart when no line
// exists for the product id.
func (c *Cart) AdjustQuantity(productID string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			q := c.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			return nil
		}
	}
	return fmt.Errorf("%s: %w", productID, ErrNotInCart)
}

// Count returns the cart size per the configured CountMode.
func (c *Cart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.countLocked()
}

func (c *Cart) countLocked() int {
	if c.mode == CountUnits {
		units := 0
		for _, item := range c.items {
			units += item.Quantity
		}
		return units
	}
	return len(c.items)
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Total recomputes the cart total from current state on every call; there is
// no cached total. Stale lines contribute nothing.
func (c *Cart) Total(lookup ProductLookup) (float64, error) {
	summary, err := c.Summarize(lookup)
	if err != nil {
		return 0, err
	}
	return summary.Total, nil
}

// Summarize joins each line item with its current catalog entry. Lines whose
// product no longer resolves are dropped from the view and listed in Stale;
// any other lookup failure aborts the summary.
func (c *Cart) Summarize(lookup ProductLookup) (*Summary, error) {
	c.mu.RLock()
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	count := c.countLocked()
	c.mu.RUnlock()

	summary := &Summary{Items: []LineView{}, Count: count}
	for _, item := range items {
		product, err := lookup(item.ProductID)
		if err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				summary.Stale = append(summary.Stale, item.ProductID)
				continue
			}
			return nil, fmt.Errorf("failed to resolve cart item %s: %w", item.ProductID, err)
		}
		lineTotal := product.Price * float64(item.Quantity)
		summary.Items = append(summary.Items, LineView{
			Product:   *product,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		summary.Total += lineTotal
	}
	summary.Total = math.Round(summary.Total*100) / 100
	return summary, nil
}
