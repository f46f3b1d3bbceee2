package usecase

import (
	"context"
	"sync"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/logging"
)

type authenticated interface {
	Authenticated() bool
}

// Favorites is the session user's set of favorite product ids.
type Favorites struct {
	mu      sync.RWMutex
	api     FavoritesAPI
	session authenticated
	items   []entity.Favorite
	ids     map[int64]struct{}
}

func NewFavorites(api FavoritesAPI, session authenticated) *Favorites {
	return &Favorites{api: api, session: session, ids: map[int64]struct{}{}}
}

func (f *Favorites) Fetch(ctx context.Context) {
	list, err := f.api.List(ctx)
	if err != nil {
		logging.FromCtx(ctx).Warn("favorites fetch failed", "err", err)
		return
	}
	f.mu.Lock()
	f.items = list
	f.ids = make(map[int64]struct{}, len(list))
	for _, fav := range list {
		f.ids[fav.ProductID] = struct{}{}
	}
	f.mu.Unlock()
}

func (f *Favorites) Reset() {
	f.mu.Lock()
	f.items = nil
	f.ids = map[int64]struct{}{}
	f.mu.Unlock()
}

func (f *Favorites) Contains(productID int64) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.ids[productID]
	return ok
}

func (f *Favorites) Count() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.ids)
}

func (f *Favorites) List() []entity.Favorite {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]entity.Favorite(nil), f.items...)
}

// Toggle flips membership in a single round trip.
func (f *Favorites) Toggle(ctx context.Context, productID int64) Result {
	if !f.session.Authenticated() {
		return rejected("Log in to save favorites")
	}
	res, err := f.api.Toggle(ctx, productID)
	if err != nil {
		return failed(err, "Could not update favorites")
	}
	if res.Action == entity.FavoriteAdded {
		fav := entity.Favorite{ProductID: productID}
		if res.Favorite != nil {
			fav = *res.Favorite
		}
		f.put(fav)
		return ok("Added to favorites")
	}
	f.drop(productID)
	return ok("Removed from favorites")
}

func (f *Favorites) Add(ctx context.Context, productID int64) Result {
	if !f.session.Authenticated() {
		return rejected("Log in to save favorites")
	}
	fav, err := f.api.Add(ctx, productID)
	if err != nil {
		return failed(err, "Could not add to favorites")
	}
	if fav.ProductID == 0 {
		fav.ProductID = productID
	}
	f.put(fav)
	return ok("Added to favorites")
}

func (f *Favorites) Remove(ctx context.Context, productID int64) Result {
	if !f.session.Authenticated() {
		return rejected("Log in to manage favorites")
	}
	if err := f.api.Remove(ctx, productID); err != nil {
		return failed(err, "Could not remove from favorites")
	}
	f.drop(productID)
	return ok("Removed from favorites")
}

func (f *Favorites) put(fav entity.Favorite) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.ids[fav.ProductID]; ok {
		return
	}
	f.ids[fav.ProductID] = struct{}{}
	f.items = append(f.items, fav)
}

func (f *Favorites) drop(productID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.ids, productID)
	kept := f.items[:0]
	for _, fav := range f.items {
		if fav.ProductID != productID {
			kept = append(kept, fav)
		}
	}
	f.items = kept
}
