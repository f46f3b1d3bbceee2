package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

// send runs cl and decodes the answer into a fresh T.
func send[T any](ctx context.Context, c *Client, cl call) (T, error) {
	var out T
	err := c.do(ctx, cl, &out)
	return out, err
}

func single(k, v string) url.Values {
	return url.Values{k: []string{v}}
}

type AdminCategories struct{ c *Client }

func (a *AdminCategories) List(ctx context.Context, pr entity.PageRequest) (entity.Page[entity.Category], error) {
	return send[entity.Page[entity.Category]](ctx, a.c, call{op: "admin.categories.list", method: http.MethodGet, path: "/admin/categorias", query: pageQuery(pr)})
}

func (a *AdminCategories) Create(ctx context.Context, d entity.CategoryDraft) (entity.Category, error) {
	return send[entity.Category](ctx, a.c, call{op: "admin.categories.create", method: http.MethodPost, path: "/admin/categorias", body: d})
}

func (a *AdminCategories) Update(ctx context.Context, id int64, d entity.CategoryDraft) (entity.Category, error) {
	return send[entity.Category](ctx, a.c, call{op: "admin.categories.update", method: http.MethodPut, path: fmt.Sprintf("/admin/categorias/%d", id), body: d})
}

func (a *AdminCategories) Delete(ctx context.Context, id int64) error {
	return a.c.do(ctx, call{op: "admin.categories.delete", method: http.MethodDelete, path: fmt.Sprintf("/admin/categorias/%d", id)}, nil)
}

func (a *AdminCategories) SetActive(ctx context.Context, id int64, active bool) (entity.Category, error) {
	return send[entity.Category](ctx, a.c, call{
		op:     "admin.categories.status",
		method: http.MethodPut,
		path:   fmt.Sprintf("/admin/categorias/%d/status", id),
		query:  single("activa", strconv.FormatBool(active)),
	})
}

func (a *AdminCategories) Count(ctx context.Context) (int64, error) {
	var out struct {
		Count int64 `json:"count" validate:"gte=0"`
	}
	err := a.c.do(ctx, call{op: "admin.categories.count", method: http.MethodGet, path: "/admin/categorias/count"}, &out)
	return out.Count, err
}

type AdminProducts struct{ c *Client }

func (a *AdminProducts) List(ctx context.Context, pr entity.PageRequest) (entity.Page[entity.Product], error) {
	return send[entity.Page[entity.Product]](ctx, a.c, call{op: "admin.products.list", method: http.MethodGet, path: "/admin/productos", query: pageQuery(pr)})
}

func (a *AdminProducts) Create(ctx context.Context, d entity.ProductDraft) (entity.Product, error) {
	return send[entity.Product](ctx, a.c, call{op: "admin.products.create", method: http.MethodPost, path: "/admin/productos", body: d})
}

func (a *AdminProducts) Update(ctx context.Context, id int64, d entity.ProductDraft) (entity.Product, error) {
	return send[entity.Product](ctx, a.c, call{op: "admin.products.update", method: http.MethodPut, path: fmt.Sprintf("/admin/productos/%d", id), body: d})
}

func (a *AdminProducts) Delete(ctx context.Context, id int64) error {
	return a.c.do(ctx, call{op: "admin.products.delete", method: http.MethodDelete, path: fmt.Sprintf("/admin/productos/%d", id)}, nil)
}

func (a *AdminProducts) Variants(ctx context.Context, productID int64) ([]entity.Variant, error) {
	return send[[]entity.Variant](ctx, a.c, call{op: "admin.variants.list", method: http.MethodGet, path: fmt.Sprintf("/admin/productos/%d/variantes", productID)})
}

func (a *AdminProducts) CreateVariant(ctx context.Context, d entity.VariantDraft) (entity.Variant, error) {
	return send[entity.Variant](ctx, a.c, call{op: "admin.variants.create", method: http.MethodPost, path: "/admin/productos/variantes", body: d})
}

func (a *AdminProducts) UpdateVariant(ctx context.Context, id int64, d entity.VariantDraft) (entity.Variant, error) {
	return send[entity.Variant](ctx, a.c, call{op: "admin.variants.update", method: http.MethodPut, path: fmt.Sprintf("/admin/productos/variantes/%d", id), body: d})
}

func (a *AdminProducts) DeleteVariant(ctx context.Context, id int64) error {
	return a.c.do(ctx, call{op: "admin.variants.delete", method: http.MethodDelete, path: fmt.Sprintf("/admin/productos/variantes/%d", id)}, nil)
}

func (a *AdminProducts) SaleUnits(ctx context.Context, variantID int64) ([]entity.SaleUnit, error) {
	return send[[]entity.SaleUnit](ctx, a.c, call{op: "admin.units.list", method: http.MethodGet, path: fmt.Sprintf("/admin/productos/variantes/%d/unidades", variantID)})
}

func (a *AdminProducts) CreateSaleUnit(ctx context.Context, d entity.SaleUnitDraft) (entity.SaleUnit, error) {
	return send[entity.SaleUnit](ctx, a.c, call{op: "admin.units.create", method: http.MethodPost, path: "/admin/productos/unidades", body: d})
}

func (a *AdminProducts) UpdateSaleUnit(ctx context.Context, id int64, d entity.SaleUnitDraft) (entity.SaleUnit, error) {
	return send[entity.SaleUnit](ctx, a.c, call{op: "admin.units.update", method: http.MethodPut, path: fmt.Sprintf("/admin/productos/unidades/%d", id), body: d})
}

func (a *AdminProducts) DeleteSaleUnit(ctx context.Context, id int64) error {
	return a.c.do(ctx, call{op: "admin.units.delete", method: http.MethodDelete, path: fmt.Sprintf("/admin/productos/unidades/%d", id)}, nil)
}

type AdminUsers struct{ c *Client }

func (a *AdminUsers) List(ctx context.Context, pr entity.PageRequest) (entity.Page[entity.User], error) {
	return send[entity.Page[entity.User]](ctx, a.c, call{op: "admin.users.list", method: http.MethodGet, path: "/admin/usuarios", query: pageQuery(pr)})
}

func (a *AdminUsers) All(ctx context.Context) ([]entity.User, error) {
	return send[[]entity.User](ctx, a.c, call{op: "admin.users.all", method: http.MethodGet, path: "/admin/usuarios/all"})
}

func (a *AdminUsers) SetRole(ctx context.Context, id int64, role entity.Role) (entity.User, error) {
	return send[entity.User](ctx, a.c, call{
		op:     "admin.users.role",
		method: http.MethodPut,
		path:   fmt.Sprintf("/admin/usuarios/%d/role", id),
		query:  single("role", string(role)),
	})
}

func (a *AdminUsers) SetEnabled(ctx context.Context, id int64, enabled bool) (entity.User, error) {
	return send[entity.User](ctx, a.c, call{
		op:     "admin.users.status",
		method: http.MethodPut,
		path:   fmt.Sprintf("/admin/usuarios/%d/status", id),
		query:  single("enabled", strconv.FormatBool(enabled)),
	})
}

// ResetPassword sends the new password as a query parameter, which is how the
// backend endpoint takes it.
func (a *AdminUsers) ResetPassword(ctx context.Context, id int64, password string) error {
	return a.c.do(ctx, call{
		op:     "admin.users.password",
		method: http.MethodPut,
		path:   fmt.Sprintf("/admin/usuarios/%d/password", id),
		query:  single("password", password),
	}, nil)
}

func (a *AdminUsers) Delete(ctx context.Context, id int64) error {
	return a.c.do(ctx, call{op: "admin.users.delete", method: http.MethodDelete, path: fmt.Sprintf("/admin/usuarios/%d", id)}, nil)
}

type AdminOrders struct{ c *Client }

func (a *AdminOrders) List(ctx context.Context, pr entity.PageRequest) (entity.Page[entity.Order], error) {
	return send[entity.Page[entity.Order]](ctx, a.c, call{op: "admin.orders.list", method: http.MethodGet, path: "/admin/pedidos", query: pageQuery(pr)})
}

func (a *AdminOrders) All(ctx context.Context) ([]entity.Order, error) {
	return send[[]entity.Order](ctx, a.c, call{op: "admin.orders.all", method: http.MethodGet, path: "/admin/pedidos/all"})
}

func (a *AdminOrders) Get(ctx context.Context, id int64) (entity.Order, error) {
	return send[entity.Order](ctx, a.c, call{op: "admin.orders.get", method: http.MethodGet, path: fmt.Sprintf("/admin/pedidos/%d", id)})
}

func (a *AdminOrders) ByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error) {
	return send[[]entity.Order](ctx, a.c, call{op: "admin.orders.by_status", method: http.MethodGet, path: "/admin/pedidos/estado/" + url.PathEscape(string(status))})
}

func (a *AdminOrders) SetStatus(ctx context.Context, id int64, status entity.OrderStatus) (entity.Order, error) {
	return send[entity.Order](ctx, a.c, call{
		op:     "admin.orders.status",
		method: http.MethodPut,
		path:   fmt.Sprintf("/admin/pedidos/%d/estado", id),
		query:  single("estado", string(status)),
	})
}

func (a *AdminOrders) UpdateInfo(ctx context.Context, id int64, info entity.ShippingInfo) (entity.Order, error) {
	return send[entity.Order](ctx, a.c, call{op: "admin.orders.info", method: http.MethodPut, path: fmt.Sprintf("/admin/pedidos/%d/info", id), body: info})
}

func (a *AdminOrders) Delete(ctx context.Context, id int64) error {
	return a.c.do(ctx, call{op: "admin.orders.delete", method: http.MethodDelete, path: fmt.Sprintf("/admin/pedidos/%d", id)}, nil)
}

var (
	_ usecase.AdminCategoryAPI = (*AdminCategories)(nil)
	_ usecase.AdminProductAPI  = (*AdminProducts)(nil)
	_ usecase.AdminUserAPI     = (*AdminUsers)(nil)
	_ usecase.AdminOrderAPI    = (*AdminOrders)(nil)
)
