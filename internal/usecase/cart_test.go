package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/giovannicg/INMEDT/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartTotalIsLastServerTotal(t *testing.T) {
	ctx := context.Background()
	api := &fakeCart{
		addFn: func(entity.AddCartItemRequest) (entity.Cart, error) {
			// server total deliberately differs from the sum of items
			return entity.Cart{Total: money("99.99"), Items: []entity.CartItem{{ID: 1, Quantity: 2, Subtotal: money("20.00")}}}, nil
		},
	}
	c := NewCart(api)

	res := c.AddItem(ctx, 7, 2)

	require.True(t, res.Success)
	assert.True(t, c.Total().Equal(money("99.99")))
	assert.Equal(t, 2, c.ItemCount())
}

func TestCartItemCountSumsQuantities(t *testing.T) {
	ctx := context.Background()
	srv := newServerCart()
	c := NewCart(srv)

	require.True(t, c.AddItem(ctx, 1, 3).Success)
	require.True(t, c.AddItem(ctx, 2, 4).Success)
	require.True(t, c.UpdateItem(ctx, 1, 1).Success)

	assert.Equal(t, 5, c.ItemCount())
	assert.True(t, c.Total().Equal(srv.state.Total))
}

func TestCartUpdateBelowOneMakesNoCall(t *testing.T) {
	srv := newServerCart()
	c := NewCart(srv)
	require.True(t, c.AddItem(context.Background(), 1, 2).Success)
	before := srv.calls

	for _, q := range []int{0, -3} {
		res := c.UpdateItem(context.Background(), 1, q)
		assert.False(t, res.Success)
		assert.Empty(t, res.Message)
	}

	assert.Equal(t, before, srv.calls)
	assert.Equal(t, 2, c.ItemCount())
}

func TestCartAddRejectsQuantityBelowOne(t *testing.T) {
	srv := newServerCart()
	c := NewCart(srv)

	res := c.AddItem(context.Background(), 1, 0)

	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Message)
	assert.Zero(t, srv.calls)
}

func TestCartFailureKeepsSnapshotAndSurfacesBackendMessage(t *testing.T) {
	ctx := context.Background()
	srv := newServerCart()
	c := NewCart(srv)
	require.True(t, c.AddItem(ctx, 1, 2).Success)
	total := c.Total()

	srv.addFn = func(entity.AddCartItemRequest) (entity.Cart, error) {
		return entity.Cart{}, apiErr{"Stock insuficiente"}
	}
	res := c.AddItem(ctx, 5, 50)

	assert.False(t, res.Success)
	assert.Equal(t, "Stock insuficiente", res.Message)
	assert.True(t, c.Total().Equal(total))
	assert.Equal(t, 2, c.ItemCount())
}

func TestCartTransportFailureGetsGenericMessage(t *testing.T) {
	api := &fakeCart{removeFn: func(int64) (entity.Cart, error) { return entity.Cart{}, errors.New("dial tcp: refused") }}
	c := NewCart(api)

	res := c.RemoveItem(context.Background(), 3)

	assert.False(t, res.Success)
	assert.Equal(t, "Could not remove the product", res.Message)
}

func TestCartFetchFailureIsSilent(t *testing.T) {
	api := &fakeCart{getFn: func() (entity.Cart, error) { return entity.Cart{}, errors.New("timeout") }}
	c := NewCart(api)

	c.Fetch(context.Background())

	assert.False(t, c.Loaded())
	assert.True(t, c.Total().IsZero())
	assert.Zero(t, c.ItemCount())
}

func TestCartRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	srv := newServerCart()
	c := NewCart(srv)
	require.True(t, c.AddItem(ctx, 1, 1).Success)
	require.True(t, c.AddItem(ctx, 2, 1).Success)

	require.True(t, c.RemoveItem(ctx, 1).Success)
	assert.Len(t, c.Items(), 1)

	require.True(t, c.Clear(ctx).Success)
	assert.True(t, c.Empty())
	assert.True(t, c.Total().IsZero())
}

func TestCartEstimateFollowsServerTotal(t *testing.T) {
	api := &fakeCart{getFn: func() (entity.Cart, error) {
		return entity.Cart{Total: money("35.00"), Items: []entity.CartItem{{ID: 1, Quantity: 1}}}, nil
	}}
	c := NewCart(api)
	c.Fetch(context.Background())

	est := c.Estimate()
	assert.True(t, est.FreeShippingGap.Equal(money("5.00")))
	assert.True(t, est.Estimated)
}
