package usecase

import (
	"context"
	"sort"

	"github.com/giovannicg/INMEDT/internal/entity"
)

// OrderHistory lists the user's own orders, newest first.
type OrderHistory struct {
	api OrderAPI
}

func NewOrderHistory(api OrderAPI) *OrderHistory {
	return &OrderHistory{api: api}
}

func (h *OrderHistory) List(ctx context.Context) ([]entity.Order, error) {
	list, err := h.api.Mine(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(list)
	return list, nil
}

func (h *OrderHistory) Get(ctx context.Context, id int64) (entity.Order, error) {
	return h.api.Get(ctx, id)
}

func sortNewestFirst(list []entity.Order) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt.Time)
	})
}
