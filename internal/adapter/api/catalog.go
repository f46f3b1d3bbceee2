package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

type Catalog struct{ c *Client }

func (a *Catalog) list(ctx context.Context, op, path string, q url.Values) (entity.Page[entity.Product], error) {
	var out entity.Page[entity.Product]
	err := a.c.do(ctx, call{op: op, method: http.MethodGet, path: path, query: q}, &out)
	return out, err
}

func (a *Catalog) Products(ctx context.Context, pr entity.PageRequest) (entity.Page[entity.Product], error) {
	return a.list(ctx, "catalog.products", "/productos", pageQuery(pr))
}

func (a *Catalog) Search(ctx context.Context, term string, pr entity.PageRequest) (entity.Page[entity.Product], error) {
	q := pageQuery(pr)
	q.Set("q", term)
	return a.list(ctx, "catalog.search", "/productos/search", q)
}

func (a *Catalog) ByCategory(ctx context.Context, categoryID int64, pr entity.PageRequest) (entity.Page[entity.Product], error) {
	return a.list(ctx, "catalog.by_category", fmt.Sprintf("/productos/categoria/%d", categoryID), pageQuery(pr))
}

func (a *Catalog) ByBrand(ctx context.Context, brand string, pr entity.PageRequest) (entity.Page[entity.Product], error) {
	return a.list(ctx, "catalog.by_brand", "/productos/marca/"+url.PathEscape(brand), pageQuery(pr))
}

func (a *Catalog) Product(ctx context.Context, id int64) (entity.Product, error) {
	var out entity.Product
	err := a.c.do(ctx, call{op: "catalog.product", method: http.MethodGet, path: fmt.Sprintf("/productos/%d", id)}, &out)
	return out, err
}

func (a *Catalog) Categories(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	err := a.c.do(ctx, call{op: "catalog.categories", method: http.MethodGet, path: "/categorias"}, &out)
	return out, err
}

func (a *Catalog) Category(ctx context.Context, id int64) (entity.Category, error) {
	var out entity.Category
	err := a.c.do(ctx, call{op: "catalog.category", method: http.MethodGet, path: fmt.Sprintf("/categorias/%d", id)}, &out)
	return out, err
}

var _ usecase.CatalogAPI = (*Catalog)(nil)
