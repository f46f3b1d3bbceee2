package http

import (
	"github.com/gin-gonic/gin"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

type CartHandler struct{}

func NewCartHandler() *CartHandler { return &CartHandler{} }

type cartView struct {
	Items     any `json:"items"`
	Total     any `json:"total"`
	ItemCount int `json:"cantidadItems"`
	Estimate  any `json:"estimado"`
}

func cartState(cart *usecase.Cart) cartView {
	return cartView{
		Items:     cart.Items(),
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
		Estimate:  cart.Estimate(),
	}
}

// GET /carrito
func (h *CartHandler) Get(c *gin.Context) {
	cart := storefront(c).Cart
	if !cart.Loaded() {
		cart.Fetch(reqCtx(c))
	}
	view(c, cartState(cart), nil)
}

type addItemReq struct {
	SaleUnitID int64 `json:"unidadVentaId" binding:"required"`
	Quantity   int   `json:"cantidad"`
}

// POST /carrito/items
func (h *CartHandler) Add(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "unidadVentaId is required")
		return
	}
	cart := storefront(c).Cart
	res := cart.AddItem(reqCtx(c), req.SaleUnitID, req.Quantity)
	finish(c, res, gin.H{"carrito": cartState(cart)})
}

type updateItemReq struct {
	Quantity int `json:"cantidad"`
}

// PUT /carrito/items/:id
func (h *CartHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON")
		return
	}
	cart := storefront(c).Cart
	res := cart.UpdateItem(reqCtx(c), id, req.Quantity)
	if !res.Success && res.Message == "" {
		// quantity below one is a no-op
		view(c, cartState(cart), nil)
		return
	}
	finish(c, res, gin.H{"carrito": cartState(cart)})
}

// DELETE /carrito/items/:id
func (h *CartHandler) Remove(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	cart := storefront(c).Cart
	finish(c, cart.RemoveItem(reqCtx(c), id), gin.H{"carrito": cartState(cart)})
}

// DELETE /carrito
func (h *CartHandler) Clear(c *gin.Context) {
	cart := storefront(c).Cart
	finish(c, cart.Clear(reqCtx(c)), gin.H{"carrito": cartState(cart)})
}
