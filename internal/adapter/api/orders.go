package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

type Orders struct{ c *Client }

func (a *Orders) Checkout(ctx context.Context, req entity.CheckoutRequest) (entity.Order, error) {
	var out entity.Order
	err := a.c.do(ctx, call{op: "orders.checkout", method: http.MethodPost, path: "/pedidos/checkout", body: req}, &out)
	return out, err
}

func (a *Orders) Mine(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	err := a.c.do(ctx, call{op: "orders.mine", method: http.MethodGet, path: "/pedidos/all"}, &out)
	return out, err
}

func (a *Orders) Get(ctx context.Context, id int64) (entity.Order, error) {
	var out entity.Order
	err := a.c.do(ctx, call{op: "orders.get", method: http.MethodGet, path: fmt.Sprintf("/pedidos/%d", id)}, &out)
	return out, err
}

var _ usecase.OrderAPI = (*Orders)(nil)
