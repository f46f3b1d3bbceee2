package http

import (
	"github.com/gin-gonic/gin"
)

type OrderHandler struct{}

func NewOrderHandler() *OrderHandler { return &OrderHandler{} }

// GET /pedidos
func (h *OrderHandler) List(c *gin.Context) {
	list, err := storefront(c).Orders.List(reqCtx(c))
	view(c, list, err)
}

// GET /pedidos/:id
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	o, err := storefront(c).Orders.Get(reqCtx(c), id)
	view(c, o, err)
}
