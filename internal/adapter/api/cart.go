package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

type Cart struct{ c *Client }

func (a *Cart) send(ctx context.Context, op, method, path string, body any) (entity.Cart, error) {
	var out entity.Cart
	err := a.c.do(ctx, call{op: op, method: method, path: path, body: body}, &out)
	return out, err
}

func (a *Cart) Get(ctx context.Context) (entity.Cart, error) {
	return a.send(ctx, "cart.get", http.MethodGet, "/carrito", nil)
}

func (a *Cart) AddItem(ctx context.Context, req entity.AddCartItemRequest) (entity.Cart, error) {
	return a.send(ctx, "cart.add", http.MethodPost, "/carrito/items", req)
}

func (a *Cart) UpdateItem(ctx context.Context, itemID int64, req entity.UpdateCartItemRequest) (entity.Cart, error) {
	return a.send(ctx, "cart.update", http.MethodPut, fmt.Sprintf("/carrito/items/%d", itemID), req)
}

func (a *Cart) RemoveItem(ctx context.Context, itemID int64) (entity.Cart, error) {
	return a.send(ctx, "cart.remove", http.MethodDelete, fmt.Sprintf("/carrito/items/%d", itemID), nil)
}

func (a *Cart) Clear(ctx context.Context) (entity.Cart, error) {
	return a.send(ctx, "cart.clear", http.MethodDelete, "/carrito", nil)
}

var _ usecase.CartAPI = (*Cart)(nil)
