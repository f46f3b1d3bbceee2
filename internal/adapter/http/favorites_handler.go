package http

import (
	"github.com/gin-gonic/gin"
)

type FavoritesHandler struct{}

func NewFavoritesHandler() *FavoritesHandler { return &FavoritesHandler{} }

// GET /favoritos
func (h *FavoritesHandler) List(c *gin.Context) {
	view(c, storefront(c).Favorites.List(), nil)
}

// POST /favoritos/:id/toggle
func (h *FavoritesHandler) Toggle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	fav := storefront(c).Favorites
	res := fav.Toggle(reqCtx(c), id)
	finish(c, res, gin.H{"esFavorito": fav.Contains(id), "total": fav.Count()})
}

// POST /favoritos/:id
func (h *FavoritesHandler) Add(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	fav := storefront(c).Favorites
	finish(c, fav.Add(reqCtx(c), id), gin.H{"total": fav.Count()})
}

// DELETE /favoritos/:id
func (h *FavoritesHandler) Remove(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	fav := storefront(c).Favorites
	finish(c, fav.Remove(reqCtx(c), id), gin.H{"total": fav.Count()})
}
