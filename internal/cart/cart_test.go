package cart_test

import (
	"fmt"
	"testing"

	"zenithmed/internal/cart"
	"zenithmed/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price float64) *models.Product {
	return &models.Product{
		ID:       id,
		Name:     "Product " + id,
		Category: models.CategoryGeneral,
		Price:    price,
	}
}

// lookupFrom builds a ProductLookup over a fixed set of products. Unknown
// ids resolve to models.ErrProductNotFound, like a real repository.
func lookupFrom(products ...*models.Product) cart.ProductLookup {
	byID := make(map[string]*models.Product)
	for _, p := range products {
		byID[p.ID] = p
	}
	return func(id string) (*models.Product, error) {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("product %s: %w", id, models.ErrProductNotFound)
		}
		return p, nil
	}
}

func TestCart_AddSameProductTwice(t *testing.T) {
	c := cart.New(cart.CountLines)
	p := product("p1", 10)

	require.NoError(t, c.AddItem(p))
	require.NoError(t, c.AddItem(p))

	items := c.Items()
	require.Len(t, items, 1, "re-adding a product must not duplicate the line")
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCart_AddItemValidation(t *testing.T) {
	c := cart.New(cart.CountLines)

	assert.ErrorIs(t, c.AddItem(nil), cart.ErrEmptyProductID)
	assert.ErrorIs(t, c.AddItem(&models.Product{}), cart.ErrEmptyProductID)
	assert.ErrorIs(t, c.AddItem(&models.Product{ID: "p1", Price: -1}), cart.ErrNegativePrice)
	assert.Empty(t, c.Items())
}

func TestCart_TotalRecomputesFromCurrentState(t *testing.T) {
	c := cart.New(cart.CountLines)
	p1 := product("p1", 10.50)
	p2 := product("p2", 3.25)
	lookup := lookupFrom(p1, p2)

	require.NoError(t, c.AddItem(p1))
	require.NoError(t, c.AddItem(p1))
	require.NoError(t, c.AddItem(p2))

	total, err := c.Total(lookup)
	require.NoError(t, err)
	assert.Equal(t, 2*10.50+3.25, total)

	// A price change in the catalog is reflected on the next call; nothing
	// is cached.
	p1.Price = 20
	total, err = c.Total(lookup)
	require.NoError(t, err)
	assert.Equal(t, 2*20.0+3.25, total)

	c.RemoveItem("p1")
	total, err = c.Total(lookup)
	require.NoError(t, err)
	assert.Equal(t, 3.25, total)
}

func TestCart_RemoveMissingIsNoOp(t *testing.T) {
	c := cart.New(cart.CountLines)
	require.NoError(t, c.AddItem(product("p1", 5)))

	assert.NotPanics(t, func() { c.RemoveItem("ghost") })
	assert.Len(t, c.Items(), 1)
}

func TestCart_AdjustQuantityClampsAtOne(t *testing.T) {
	c := cart.New(cart.CountLines)
	require.NoError(t, c.AddItem(product("p1", 5)))

	require.NoError(t, c.AdjustQuantity("p1", 4))
	assert.Equal(t, 5, c.Items()[0].Quantity)

	// Decrementing past zero leaves the line at quantity 1 instead of
	// removing it.
	require.NoError(t, c.AdjustQuantity("p1", -100))
	assert.Equal(t, 1, c.Items()[0].Quantity)
	assert.Len(t, c.Items(), 1)

	assert.ErrorIs(t, c.AdjustQuantity("ghost", 1), cart.ErrNotInCart)
}

func TestCart_CountModes(t *testing.T) {
	lines := cart.New(cart.CountLines)
	units := cart.New(cart.CountUnits)

	for _, c := range []*cart.Cart{lines, units} {
		require.NoError(t, c.AddItem(product("p1", 1)))
		require.NoError(t, c.AddItem(product("p1", 1)))
		require.NoError(t, c.AddItem(product("p2", 1)))
	}

	assert.Equal(t, 2, lines.Count(), "CountLines counts distinct line items")
	assert.Equal(t, 3, units.Count(), "CountUnits counts total units")
}

func TestCart_StaleLinesAreSkipped(t *testing.T) {
	c := cart.New(cart.CountLines)
	p1 := product("p1", 10)
	p2 := product("p2", 7)
	require.NoError(t, c.AddItem(p1))
	require.NoError(t, c.AddItem(p2))

	// p2 has been deleted from the catalog since it was carted.
	summary, err := c.Summarize(lookupFrom(p1))
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "p1", summary.Items[0].Product.ID)
	assert.Equal(t, 10.0, summary.Total)
	assert.Equal(t, []string{"p2"}, summary.Stale)
}

func TestCart_SummarizeLineTotals(t *testing.T) {
	c := cart.New(cart.CountLines)
	p := product("p1", 12.40)
	require.NoError(t, c.AddItem(p))
	require.NoError(t, c.AddItem(p))
	require.NoError(t, c.AddItem(p))

	summary, err := c.Summarize(lookupFrom(p))
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 3, summary.Items[0].Quantity)
	assert.InDelta(t, 37.20, summary.Items[0].LineTotal, 0.001)
	assert.Equal(t, 37.20, summary.Total)
}

func TestCart_Clear(t *testing.T) {
	c := cart.New(cart.CountLines)
	require.NoError(t, c.AddItem(product("p1", 5)))
	require.NoError(t, c.AddItem(product("p2", 5)))

	c.Clear()
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.Count())

	total, err := c.Total(lookupFrom())
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestManager_SessionIsolation(t *testing.T) {
	m := cart.NewManager(cart.CountLines)

	a := m.Get("session-a")
	b := m.Get("session-b")
	require.NoError(t, a.AddItem(product("p1", 5)))

	assert.Len(t, a.Items(), 1)
	assert.Empty(t, b.Items())
	assert.Same(t, a, m.Get("session-a"), "same session must get the same cart")

	m.End("session-a")
	assert.Empty(t, m.Get("session-a").Items(), "ended session starts fresh")
}
