package usecase

import (
	"context"
	"sync"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/logging"
	"github.com/giovannicg/INMEDT/internal/pricing"
	"github.com/shopspring/decimal"
)

// Cart mirrors the server cart. Every successful call replaces the whole
// snapshot with the server's answer; nothing is adjusted locally, and a
// failed call leaves the previous snapshot untouched.
type Cart struct {
	mu     sync.RWMutex
	api    CartAPI
	snap   entity.Cart
	loaded bool
}

func NewCart(api CartAPI) *Cart {
	return &Cart{api: api}
}

// Fetch reloads the cart. Failures are logged, not surfaced.
func (c *Cart) Fetch(ctx context.Context) {
	cart, err := c.api.Get(ctx)
	if err != nil {
		logging.FromCtx(ctx).Warn("cart fetch failed", "err", err)
		return
	}
	c.replace(cart)
}

func (c *Cart) AddItem(ctx context.Context, saleUnitID int64, qty int) Result {
	if qty < 1 {
		return rejected("Quantity must be at least 1")
	}
	cart, err := c.api.AddItem(ctx, entity.AddCartItemRequest{SaleUnitID: saleUnitID, Quantity: qty})
	if err != nil {
		return failed(err, "Could not add the product to the cart")
	}
	c.replace(cart)
	return ok("Product added to cart")
}

// UpdateItem ignores quantities below one; removal is explicit.
func (c *Cart) UpdateItem(ctx context.Context, itemID int64, qty int) Result {
	if qty < 1 {
		return Result{}
	}
	cart, err := c.api.UpdateItem(ctx, itemID, entity.UpdateCartItemRequest{Quantity: qty})
	if err != nil {
		return failed(err, "Could not update the quantity")
	}
	c.replace(cart)
	return ok("Cart updated")
}

func (c *Cart) RemoveItem(ctx context.Context, itemID int64) Result {
	cart, err := c.api.RemoveItem(ctx, itemID)
	if err != nil {
		return failed(err, "Could not remove the product")
	}
	c.replace(cart)
	return ok("Product removed from cart")
}

func (c *Cart) Clear(ctx context.Context) Result {
	if _, err := c.api.Clear(ctx); err != nil {
		return failed(err, "Could not empty the cart")
	}
	c.replace(entity.Cart{Total: decimal.Zero})
	return ok("Cart emptied")
}

// Reset drops local state without calling the backend (logout).
func (c *Cart) Reset() {
	c.mu.Lock()
	c.snap = entity.Cart{}
	c.loaded = false
	c.mu.Unlock()
}

func (c *Cart) replace(cart entity.Cart) {
	c.mu.Lock()
	c.snap = cart
	c.loaded = true
	c.mu.Unlock()
}

// Total is the last server total, zero before the first fetch.
func (c *Cart) Total() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap.Total
}

// ItemCount sums quantities. Used for the badge only.
func (c *Cart) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, it := range c.snap.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Items() []entity.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]entity.CartItem(nil), c.snap.Items...)
}

func (c *Cart) Empty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.snap.Items) == 0
}

func (c *Cart) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Estimate prices the cart for display before a destination is known.
func (c *Cart) Estimate() pricing.Breakdown {
	return pricing.Estimate(c.Total())
}
