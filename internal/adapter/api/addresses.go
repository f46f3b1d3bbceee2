package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

type Addresses struct{ c *Client }

func (a *Addresses) List(ctx context.Context) ([]entity.Address, error) {
	var out []entity.Address
	err := a.c.do(ctx, call{op: "addresses.list", method: http.MethodGet, path: "/direcciones"}, &out)
	return out, err
}

func (a *Addresses) Create(ctx context.Context, addr entity.Address) (entity.Address, error) {
	var out entity.Address
	err := a.c.do(ctx, call{op: "addresses.create", method: http.MethodPost, path: "/direcciones", body: addr}, &out)
	return out, err
}

func (a *Addresses) Update(ctx context.Context, id int64, addr entity.Address) (entity.Address, error) {
	var out entity.Address
	err := a.c.do(ctx, call{op: "addresses.update", method: http.MethodPut, path: fmt.Sprintf("/direcciones/%d", id), body: addr}, &out)
	return out, err
}

func (a *Addresses) Delete(ctx context.Context, id int64) error {
	return a.c.do(ctx, call{op: "addresses.delete", method: http.MethodDelete, path: fmt.Sprintf("/direcciones/%d", id)}, nil)
}

func (a *Addresses) SetDefault(ctx context.Context, id int64) (entity.Address, error) {
	var out entity.Address
	err := a.c.do(ctx, call{op: "addresses.set_default", method: http.MethodPut, path: fmt.Sprintf("/direcciones/%d/principal", id)}, &out)
	return out, err
}

// Default answers 404 when no address is marked principal.
func (a *Addresses) Default(ctx context.Context) (entity.Address, bool, error) {
	var out entity.Address
	err := a.c.do(ctx, call{op: "addresses.default", method: http.MethodGet, path: "/direcciones/principal"}, &out)
	if StatusOf(err) == http.StatusNotFound {
		return entity.Address{}, false, nil
	}
	if err != nil {
		return entity.Address{}, false, err
	}
	return out, true, nil
}

var _ usecase.AddressAPI = (*Addresses)(nil)
