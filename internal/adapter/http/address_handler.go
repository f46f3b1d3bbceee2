package http

import (
	"github.com/gin-gonic/gin"
	"github.com/giovannicg/INMEDT/internal/entity"
)

type AddressHandler struct{}

func NewAddressHandler() *AddressHandler { return &AddressHandler{} }

// GET /direcciones
func (h *AddressHandler) List(c *gin.Context) {
	book := storefront(c).Addresses
	book.Fetch(reqCtx(c))
	view(c, gin.H{"direcciones": book.Items(), "sectores": entity.QuitoSectors()}, nil)
}

// POST /direcciones
func (h *AddressHandler) Create(c *gin.Context) {
	var a entity.Address
	if err := c.ShouldBindJSON(&a); err != nil {
		badRequest(c, "invalid JSON")
		return
	}
	a.ID = 0
	book := storefront(c).Addresses
	finish(c, book.Save(reqCtx(c), a), gin.H{"direcciones": book.Items()})
}

// PUT /direcciones/:id
func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var a entity.Address
	if err := c.ShouldBindJSON(&a); err != nil {
		badRequest(c, "invalid JSON")
		return
	}
	a.ID = id
	book := storefront(c).Addresses
	finish(c, book.Save(reqCtx(c), a), gin.H{"direcciones": book.Items()})
}

// DELETE /direcciones/:id
func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	book := storefront(c).Addresses
	finish(c, book.Delete(reqCtx(c), id), gin.H{"direcciones": book.Items()})
}

// PUT /direcciones/:id/principal
func (h *AddressHandler) SetDefault(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	book := storefront(c).Addresses
	finish(c, book.SetDefault(reqCtx(c), id), gin.H{"direcciones": book.Items()})
}
