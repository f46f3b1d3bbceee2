package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/giovannicg/INMEDT/internal/entity"
)

const (
	FeaturedCount  = 8
	BrowsePageSize = 12
	defaultSortBy  = "nombre"
	defaultSortDir = "asc"
)

var sortable = map[string]bool{"nombre": true, "marca": true, "createdAt": true, "id": true}

// Catalog serves the read-only storefront views.
type Catalog struct {
	api CatalogAPI
}

func NewCatalog(api CatalogAPI) *Catalog {
	return &Catalog{api: api}
}

type HomeView struct {
	Categories []entity.Category `json:"categorias"`
	Featured   []entity.Product  `json:"destacados"`
}

func (c *Catalog) Home(ctx context.Context) (HomeView, error) {
	cats, err := c.api.Categories(ctx)
	if err != nil {
		return HomeView{}, fmt.Errorf("categories: %w", err)
	}
	page, err := c.api.Products(ctx, entity.PageRequest{Size: FeaturedCount, SortBy: "createdAt", SortDir: "desc"})
	if err != nil {
		return HomeView{}, fmt.Errorf("featured: %w", err)
	}
	active := cats[:0:0]
	for _, cat := range cats {
		if cat.Active {
			active = append(active, cat)
		}
	}
	return HomeView{Categories: active, Featured: page.Content}, nil
}

// BrowseQuery selects one of the listing endpoints: search wins over
// category, category over brand.
type BrowseQuery struct {
	Query      string
	CategoryID int64
	Brand      string
	Page       int
	SortBy     string
	SortDir    string
}

func (q BrowseQuery) pageRequest() entity.PageRequest {
	pr := entity.PageRequest{Page: q.Page, Size: BrowsePageSize, SortBy: defaultSortBy, SortDir: defaultSortDir}
	if pr.Page < 0 {
		pr.Page = 0
	}
	if sortable[q.SortBy] {
		pr.SortBy = q.SortBy
	}
	if strings.EqualFold(q.SortDir, "desc") {
		pr.SortDir = "desc"
	}
	return pr
}

func (c *Catalog) Browse(ctx context.Context, q BrowseQuery) (entity.Page[entity.Product], error) {
	pr := q.pageRequest()
	switch {
	case strings.TrimSpace(q.Query) != "":
		return c.api.Search(ctx, strings.TrimSpace(q.Query), pr)
	case q.CategoryID > 0:
		return c.api.ByCategory(ctx, q.CategoryID, pr)
	case strings.TrimSpace(q.Brand) != "":
		return c.api.ByBrand(ctx, strings.TrimSpace(q.Brand), pr)
	}
	return c.api.Products(ctx, pr)
}

func (c *Catalog) Product(ctx context.Context, id int64) (entity.Product, error) {
	return c.api.Product(ctx, id)
}

func (c *Catalog) Categories(ctx context.Context) ([]entity.Category, error) {
	return c.api.Categories(ctx)
}

func (c *Catalog) Category(ctx context.Context, id int64) (entity.Category, error) {
	return c.api.Category(ctx, id)
}

// ClampQuantity bounds a selector value to [1, stock].
func ClampQuantity(qty int, unit entity.SaleUnit) int {
	if qty > unit.Stock {
		qty = unit.Stock
	}
	if qty < 1 {
		qty = 1
	}
	return qty
}
