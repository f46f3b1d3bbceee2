package usecase

import (
	"context"
	"testing"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/giovannicg/INMEDT/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	srv     *serverCart
	cart    *Cart
	orders  *fakeOrders
	nav     *recNav
	events  *recEvents
	wizard  *Checkout
	session authed
}

func newCheckoutFixture(t *testing.T, loggedIn bool) *checkoutFixture {
	t.Helper()
	f := &checkoutFixture{
		srv:     newServerCart(),
		nav:     &recNav{},
		events:  &recEvents{},
		session: authed(loggedIn),
	}
	f.cart = NewCart(f.srv)
	f.orders = &fakeOrders{checkoutFn: func(r entity.CheckoutRequest) (entity.Order, error) {
		return entity.Order{ID: 77, Number: "PED-000001-ABCD", Status: entity.StatusPending,
			City: r.City, Sector: r.Sector, Total: money("23.00")}, nil
	}}
	f.wizard = NewCheckout(f.orders, f.cart, f.session, f.nav, f.events)
	return f
}

func (f *checkoutFixture) toPayment(t *testing.T) {
	t.Helper()
	require.True(t, f.wizard.SetDraft(Draft{Address: "Av. Amazonas N34-120", City: "Quito", Sector: "Iñaquito", Phone: "0999999999"}).Success)
	require.True(t, f.wizard.Next().Success)
	require.True(t, f.wizard.Next().Success)
	require.Equal(t, StepConfirmingPayment, f.wizard.Step())
}

func TestCheckoutStaysOnAddressStepWhenIncomplete(t *testing.T) {
	f := newCheckoutFixture(t, true)
	cases := []Draft{
		{Address: "", City: "Quito", Sector: ""},
		{Address: "Av. 6 de Diciembre", City: "Quito", Sector: "   "},
		{Address: "Av. 6 de Diciembre", City: "", Sector: "Iñaquito"},
	}
	for _, d := range cases {
		require.True(t, f.wizard.SetDraft(d).Success)
		res := f.wizard.Next()
		assert.False(t, res.Success)
		assert.Equal(t, StepCollectingAddress, f.wizard.Step())
	}
}

func TestCheckoutStepsForwardAndBack(t *testing.T) {
	f := newCheckoutFixture(t, true)
	assert.False(t, f.wizard.Back().Success)

	f.toPayment(t)
	assert.False(t, f.wizard.Next().Success)
	assert.False(t, f.wizard.SetDraft(Draft{}).Success)

	require.True(t, f.wizard.Back().Success)
	assert.Equal(t, StepReviewingOrder, f.wizard.Step())
	require.True(t, f.wizard.Back().Success)
	assert.Equal(t, StepCollectingAddress, f.wizard.Step())
}

func TestCheckoutGuard(t *testing.T) {
	assert.Equal(t, "/login", newCheckoutFixture(t, false).wizard.Guard())

	f := newCheckoutFixture(t, true)
	assert.Equal(t, "/carrito", f.wizard.Guard())

	require.True(t, f.cart.AddItem(context.Background(), 1, 1).Success)
	assert.Empty(t, f.wizard.Guard())
}

func TestCheckoutSubmitSuccess(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, true)
	require.True(t, f.cart.AddItem(ctx, 1, 2).Success)
	f.toPayment(t)

	res := f.wizard.Submit(ctx)

	require.True(t, res.Success)
	assert.Equal(t, StepSubmitted, f.wizard.Step())
	assert.True(t, f.cart.Empty())
	assert.Equal(t, "/pedidos", f.nav.last())
	require.Len(t, f.events.msgs, 1)
	assert.Equal(t, int64(77), f.events.msgs[0].OrderID)
	assert.Equal(t, 2, f.events.msgs[0].ItemCount)
	placed, ok := f.wizard.Placed()
	require.True(t, ok)
	assert.Equal(t, "PED-000001-ABCD", placed.Number)
	assert.False(t, f.wizard.Back().Success)
}

func TestCheckoutResumesAfterCartRefill(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, true)
	require.True(t, f.cart.AddItem(ctx, 1, 2).Success)
	f.toPayment(t)
	require.True(t, f.wizard.Submit(ctx).Success)

	assert.False(t, f.wizard.Resume())
	assert.Equal(t, StepSubmitted, f.wizard.Step())

	require.True(t, f.cart.AddItem(ctx, 1, 1).Success)
	assert.True(t, f.wizard.Resume())
	assert.Equal(t, StepCollectingAddress, f.wizard.Step())
	_, placed := f.wizard.Placed()
	assert.False(t, placed)
	f.toPayment(t)
}

func TestCheckoutSubmitFailureStaysOnPayment(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, true)
	require.True(t, f.cart.AddItem(ctx, 1, 2).Success)
	f.orders.checkoutFn = func(entity.CheckoutRequest) (entity.Order, error) {
		return entity.Order{}, apiErr{"El carrito está vacío"}
	}
	f.toPayment(t)

	res := f.wizard.Submit(ctx)

	assert.False(t, res.Success)
	assert.Equal(t, "El carrito está vacío", res.Message)
	assert.Equal(t, StepConfirmingPayment, f.wizard.Step())
	assert.False(t, f.cart.Empty())
	assert.Empty(t, f.nav.paths)
	assert.Empty(t, f.events.msgs)
}

func TestCheckoutSubmitOnlyFromPayment(t *testing.T) {
	f := newCheckoutFixture(t, true)
	assert.False(t, f.wizard.Submit(context.Background()).Success)
	assert.Zero(t, f.orders.calls)
}

func TestCheckoutQuoteUsesDraftDestination(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, true)
	require.True(t, f.cart.AddItem(ctx, 1, 1).Success) // 10.00

	require.True(t, f.wizard.SetDraft(Draft{Address: "Calle Larga 1-20", City: "Cuenca", Sector: "El Centro"}).Success)
	assert.True(t, f.wizard.Quote().Shipping.Equal(pricing.OutOfTownShipping))

	require.True(t, f.wizard.UseAddress(entity.Address{Line: "Av. Interoceánica", City: "Quito", Sector: "Cumbayá"}).Success)
	assert.True(t, f.wizard.Quote().Shipping.Equal(pricing.CapitalShipping))
	assert.Equal(t, "Cumbayá", f.wizard.Draft().Sector)
}
