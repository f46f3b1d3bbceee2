package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/logging"
)

var ErrUnknownSector = errors.New("sector is not a Quito sector")

// AddressBook caches the user's saved addresses. Mutations refetch the list.
type AddressBook struct {
	mu    sync.RWMutex
	api   AddressAPI
	items []entity.Address
}

func NewAddressBook(api AddressAPI) *AddressBook {
	return &AddressBook{api: api}
}

func (b *AddressBook) Fetch(ctx context.Context) {
	list, err := b.api.List(ctx)
	if err != nil {
		logging.FromCtx(ctx).Warn("address fetch failed", "err", err)
		return
	}
	b.mu.Lock()
	b.items = list
	b.mu.Unlock()
}

func (b *AddressBook) Reset() {
	b.mu.Lock()
	b.items = nil
	b.mu.Unlock()
}

func (b *AddressBook) Items() []entity.Address {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]entity.Address(nil), b.items...)
}

func (b *AddressBook) Find(id int64) (entity.Address, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, a := range b.items {
		if a.ID == id {
			return a, true
		}
	}
	return entity.Address{}, false
}

// Default is the address marked principal, if any.
func (b *AddressBook) Default() (entity.Address, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, a := range b.items {
		if a.Default {
			return a, true
		}
	}
	return entity.Address{}, false
}

// CheckAddress runs the same checks the backend applies, plus the sector
// catalog for the capital.
func CheckAddress(a entity.Address) error {
	if err := entity.Validate(a); err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(a.City), entity.Capital) && !entity.IsQuitoSector(a.Sector) {
		return ErrUnknownSector
	}
	return nil
}

// Save creates when a.ID is zero, updates otherwise.
func (b *AddressBook) Save(ctx context.Context, a entity.Address) Result {
	a.Label = strings.TrimSpace(a.Label)
	a.Line = strings.TrimSpace(a.Line)
	if a.City == "" {
		a.City = entity.Capital
	}
	if err := CheckAddress(a); err != nil {
		if errors.Is(err, ErrUnknownSector) {
			return rejected("Pick a sector from the list")
		}
		return invalid(err)
	}

	var err error
	if a.ID == 0 {
		a.Active = true
		_, err = b.api.Create(ctx, a)
	} else {
		_, err = b.api.Update(ctx, a.ID, a)
	}
	if err != nil {
		return failed(err, "Could not save the address")
	}
	b.Fetch(ctx)
	if a.ID == 0 {
		return ok("Address added")
	}
	return ok("Address updated")
}

func (b *AddressBook) Delete(ctx context.Context, id int64) Result {
	if err := b.api.Delete(ctx, id); err != nil {
		return failed(err, "Could not delete the address")
	}
	b.Fetch(ctx)
	return ok("Address deleted")
}

func (b *AddressBook) SetDefault(ctx context.Context, id int64) Result {
	if _, err := b.api.SetDefault(ctx, id); err != nil {
		return failed(err, "Could not set the default address")
	}
	b.Fetch(ctx)
	return ok("Default address updated")
}
