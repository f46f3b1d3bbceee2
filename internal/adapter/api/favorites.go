package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/usecase"
)

type Favorites struct{ c *Client }

func (a *Favorites) List(ctx context.Context) ([]entity.Favorite, error) {
	var out []entity.Favorite
	err := a.c.do(ctx, call{op: "favorites.list", method: http.MethodGet, path: "/favoritos"}, &out)
	return out, err
}

func (a *Favorites) Add(ctx context.Context, productID int64) (entity.Favorite, error) {
	var out entity.Favorite
	err := a.c.do(ctx, call{op: "favorites.add", method: http.MethodPost, path: fmt.Sprintf("/favoritos/%d", productID)}, &out)
	return out, err
}

func (a *Favorites) Remove(ctx context.Context, productID int64) error {
	return a.c.do(ctx, call{op: "favorites.remove", method: http.MethodDelete, path: fmt.Sprintf("/favoritos/%d", productID)}, nil)
}

func (a *Favorites) Toggle(ctx context.Context, productID int64) (entity.FavoriteToggle, error) {
	var out entity.FavoriteToggle
	err := a.c.do(ctx, call{op: "favorites.toggle", method: http.MethodPost, path: fmt.Sprintf("/favoritos/%d/toggle", productID)}, &out)
	return out, err
}

func (a *Favorites) Check(ctx context.Context, productID int64) (bool, error) {
	var out struct {
		IsFavorite bool `json:"isFavorito"`
	}
	err := a.c.do(ctx, call{op: "favorites.check", method: http.MethodGet, path: fmt.Sprintf("/favoritos/%d/check", productID)}, &out)
	return out.IsFavorite, err
}

func (a *Favorites) CountFor(ctx context.Context, productID int64) (int64, error) {
	var out struct {
		Count int64 `json:"count" validate:"gte=0"`
	}
	err := a.c.do(ctx, call{op: "favorites.count", method: http.MethodGet, path: fmt.Sprintf("/favoritos/producto/%d/count", productID)}, &out)
	return out.Count, err
}

var _ usecase.FavoritesAPI = (*Favorites)(nil)
