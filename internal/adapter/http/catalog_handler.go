package http

import (
	"github.com/gin-gonic/gin"
	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

// GET /
func (h *CatalogHandler) Home(c *gin.Context) {
	sf := storefront(c)
	home, err := sf.Catalog.Home(reqCtx(c))
	view(c, gin.H{"home": home, "badges": sf.Badges()}, err)
}

// GET /productos?q=&categoria=&marca=&page=&sortBy=&sortDir=
func (h *CatalogHandler) Browse(c *gin.Context) {
	q := usecase.BrowseQuery{
		Query:      c.Query("q"),
		CategoryID: int64(intQuery(c, "categoria", 0)),
		Brand:      c.Query("marca"),
		Page:       intQuery(c, "page", 0),
		SortBy:     c.Query("sortBy"),
		SortDir:    c.Query("sortDir"),
	}
	page, err := storefront(c).Catalog.Browse(reqCtx(c), q)
	view(c, page, err)
}

type productView struct {
	Product    entity.Product `json:"producto"`
	IsFavorite bool           `json:"esFavorito"`
	// Quantity is the selector value clamped to the chosen unit's stock.
	Quantity int `json:"cantidad,omitempty"`
}

// GET /productos/:id?unidad=&cantidad=
func (h *CatalogHandler) Product(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	sf := storefront(c)
	p, err := sf.Catalog.Product(reqCtx(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	v := productView{Product: p, IsFavorite: sf.Favorites.Contains(id)}
	if unit, found := p.SaleUnit(int64(intQuery(c, "unidad", 0))); found {
		v.Quantity = usecase.ClampQuantity(intQuery(c, "cantidad", 1), unit)
	}
	view(c, v, nil)
}

// GET /categorias
func (h *CatalogHandler) Categories(c *gin.Context) {
	cats, err := storefront(c).Catalog.Categories(reqCtx(c))
	view(c, cats, err)
}

// GET /categorias/:id
func (h *CatalogHandler) Category(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	cat, err := storefront(c).Catalog.Category(reqCtx(c), id)
	view(c, cat, err)
}
