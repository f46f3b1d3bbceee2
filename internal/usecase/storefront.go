package usecase

import (
	"context"

	"github.com/giovannicg/INMEDT/internal/entity"
)

// Deps are the collaborators of one browser session.
type Deps struct {
	Auth      AuthAPI
	Catalog   CatalogAPI
	Cart      CartAPI
	Favorites FavoritesAPI
	Addresses AddressAPI
	Orders    OrderAPI
	Admin     AdminDeps
	Tokens    TokenStore
	Nav       Navigator
	Events    EventPublisher
}

// Storefront is the set of stores behind one browser session. Stores only
// reach each other through what is injected here.
type Storefront struct {
	Session   *Session
	Cart      *Cart
	Favorites *Favorites
	Addresses *AddressBook
	Catalog   *Catalog
	Orders    *OrderHistory
	Checkout  *Checkout
	Admin     *Admin
}

func NewStorefront(d Deps) *Storefront {
	session := NewSession(d.Auth, d.Tokens, d.Nav)
	cart := NewCart(d.Cart)
	sf := &Storefront{
		Session:   session,
		Cart:      cart,
		Favorites: NewFavorites(d.Favorites, session),
		Addresses: NewAddressBook(d.Addresses),
		Catalog:   NewCatalog(d.Catalog),
		Orders:    NewOrderHistory(d.Orders),
		Checkout:  NewCheckout(d.Orders, cart, session, d.Nav, d.Events),
		Admin:     NewAdmin(d.Admin),
	}
	session.OnChange(sf.onIdentity)
	return sf
}

func (sf *Storefront) onIdentity(ctx context.Context, id *entity.Identity) {
	if id == nil {
		sf.Cart.Reset()
		sf.Favorites.Reset()
		sf.Addresses.Reset()
		sf.Checkout.Reset()
		return
	}
	sf.Cart.Fetch(ctx)
	sf.Favorites.Fetch(ctx)
	sf.Addresses.Fetch(ctx)
}

// Badges is the header summary shown on every page.
type Badges struct {
	User      *entity.Identity `json:"user,omitempty"`
	CartItems int              `json:"cartItems"`
	Favorites int              `json:"favorites"`
}

func (sf *Storefront) Badges() Badges {
	b := Badges{CartItems: sf.Cart.ItemCount(), Favorites: sf.Favorites.Count()}
	if id, ok := sf.Session.Identity(); ok {
		b.User = &id
	}
	return b
}
